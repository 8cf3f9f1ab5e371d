// Package input defines the per-frame input snapshot consumed by the game
// and decodes raw terminal bytes into it.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a movement or fire key is considered "held"
// after its last byte. Terminals only repeat held keys every ~30ms, so the
// window bridges the gap between repeats.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
//
// Left, Right and Fire are level-triggered: true for every frame the key is
// held. The remaining actions are edge-triggered: true only on the frame the
// key was pressed.
type Input struct {
	Left  bool
	Right bool
	Fire  bool

	// HasTarget is set while a pointer drag is active; TargetX is the
	// horizontal position the ship should converge on.
	HasTarget bool
	TargetX   float64

	Pause   bool
	Start   bool
	Dismiss bool
	Info    bool
	Back    bool
	Share   bool
	Quit    bool
}

// MoveToward sets a pointer-drag target for this frame.
func (in *Input) MoveToward(x float64) {
	in.HasTarget = true
	in.TargetX = x
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	fire  time.Time
}

// edges collects edge-triggered actions seen in one drain.
type edges struct {
	pause, start, dismiss, info, back, share, quit bool
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
func ReadInput(s *Stream) Input {
	var buf []byte

	// Drain all available bytes
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.decode(buf, time.Now())
}

// Reset forgets held keys, so a key pressed on one screen does not leak
// into the next.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// decode parses one drain of bytes and builds the frame's input.
func (s *Stream) decode(buf []byte, now time.Time) Input {
	var e edges

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.fire = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case 'B': // Down arrow, unused
				i += 2
				continue
			}
		}

		applyByte(&s.state, &e, b, now)
	}

	return Input{
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Fire:    now.Sub(s.state.fire) < keyHoldDuration,
		Pause:   e.pause,
		Start:   e.start,
		Dismiss: e.dismiss,
		Info:    e.info,
		Back:    e.back,
		Share:   e.share,
		Quit:    e.quit,
	}
}

// applyByte updates held-key timestamps and edge actions for a single byte.
func applyByte(state *keyState, e *edges, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		e.quit = true
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case ' ', 'w', 'W', 'k', 'K':
		state.fire = now
	case 'p', 'P':
		e.pause = true
	case '\n', '\r':
		e.start = true
		e.dismiss = true
	case 'r', 'R':
		e.start = true
	case 'i', 'I':
		e.info = true
	case 'b', 'B', '\x7f', '\b':
		e.back = true
	case '\x1b':
		e.back = true
		e.dismiss = true
	case 's', 'S':
		e.share = true
	}
}
