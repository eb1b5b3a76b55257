package input

import "github.com/veandco/go-sdl2/sdl"

// Key identifies a physical key.
type Key = sdl.Scancode

// Keys the scene binds.
const (
	KeyW        Key = sdl.SCANCODE_W
	KeyA        Key = sdl.SCANCODE_A
	KeyS        Key = sdl.SCANCODE_S
	KeyD        Key = sdl.SCANCODE_D
	KeyC        Key = sdl.SCANCODE_C
	KeyN        Key = sdl.SCANCODE_N
	KeyF        Key = sdl.SCANCODE_F
	KeyB        Key = sdl.SCANCODE_B
	KeyM        Key = sdl.SCANCODE_M
	KeyP        Key = sdl.SCANCODE_P
	KeyUp       Key = sdl.SCANCODE_UP
	KeyDown     Key = sdl.SCANCODE_DOWN
	KeyLeft     Key = sdl.SCANCODE_LEFT
	KeyRight    Key = sdl.SCANCODE_RIGHT
	KeyPageUp   Key = sdl.SCANCODE_PAGEUP
	KeyPageDown Key = sdl.SCANCODE_PAGEDOWN
	KeyEscape   Key = sdl.SCANCODE_ESCAPE
	KeyF5       Key = sdl.SCANCODE_F5
	KeyF11      Key = sdl.SCANCODE_F11
	KeyF12      Key = sdl.SCANCODE_F12
)

// State is the input snapshot handed to update functions each frame.
// Held keys persist across frames; presses and resizes are edges that
// BeginFrame clears.
type State struct {
	down    map[Key]bool
	pressed map[Key]bool

	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// NewState returns an empty state.
func NewState() *State {
	return &State{
		down:    make(map[Key]bool),
		pressed: make(map[Key]bool),
	}
}

// BeginFrame clears per-frame edges. Held keys and Quit are kept.
func (s *State) BeginFrame() {
	clear(s.pressed)
	s.Resized = false
}

// Apply folds one event into the state.
func (s *State) Apply(ev Event) {
	switch ev.Type {
	case EventQuit:
		s.Quit = true
	case EventWindowResize:
		s.Resized = true
		s.Width = ev.Width
		s.Height = ev.Height
	case EventKeyDown:
		if !ev.Repeat && !s.down[ev.Key] {
			s.pressed[ev.Key] = true
		}
		s.down[ev.Key] = true
		if ev.Key == KeyEscape {
			s.Quit = true
		}
	case EventKeyUp:
		delete(s.down, ev.Key)
	}
}

// Down reports whether key is held.
func (s *State) Down(key Key) bool {
	return s.down[key]
}

// Pressed reports whether key went down this frame.
func (s *State) Pressed(key Key) bool {
	return s.pressed[key]
}

// Axis returns +1 when pos is held, -1 when neg is held and 0 for both or
// neither.
func (s *State) Axis(pos, neg Key) float32 {
	var v float32
	if s.down[pos] {
		v++
	}
	if s.down[neg] {
		v--
	}
	return v
}
