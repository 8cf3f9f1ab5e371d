package game

import "fmt"

// Phase represents the current top-level mode of the session.
type Phase int

const (
	PhaseStart         Phase = iota // Title screen
	PhaseInstructions                // How-to-play overlay
	PhaseLevelAnnounce               // Level banner before the next wave
	PhasePlay                        // Active gameplay
	PhasePaused                      // Simulation frozen
	PhaseOver                        // Health ran out, show restart prompt
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseInstructions:
		return "instructions"
	case PhaseLevelAnnounce:
		return "levelAnnounce"
	case PhasePlay:
		return "play"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Session holds the per-session counters shown on the HUD.
type Session struct {
	Level  int
	Score  int
	Health int
	Best   int // Best score across sessions
	Phase  Phase

	Frame        int // Play frames simulated this session
	AnnounceLeft int // Frames left on the level banner
}
