package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonCount
)

// Key is the closed set of named keys the library interprets. The first
// block (through KeyScrollUp) is the set §4.3/§6 of the specification
// names explicitly. The remaining keys are extras from the wider host
// application surface (navigation keys, letter keys, function keys); the
// text editor reads KeyHome/KeyEnd, the scrollable container reads
// KeyPageUp/KeyPageDown/KeyHome/KeyEnd, and the text input widget uses
// letter keys from this block for its clipboard and undo shortcuts.
type Key int

const (
	KeyNone Key = iota
	KeyShift
	KeyCtrl
	KeyDel
	KeyEnter
	KeyTab
	KeyBackspace
	KeyCopy
	KeyCut
	KeyPaste
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTextInsertMode
	KeyTextReplaceMode
	KeyTextResetMode
	KeyTextLineStart
	KeyTextLineEnd
	KeyTextStart
	KeyTextEnd
	KeyTextUndo
	KeyTextRedo
	KeyTextSelectAll
	KeyTextWordLeft
	KeyTextWordRight
	KeyScrollStart
	KeyScrollEnd
	KeyScrollDown
	KeyScrollUp

	// Widget-hotkey extras, not part of the closed editor/scroll set above.
	KeyEscape
	KeySpace
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyA
	KeyC
	KeyS
	KeyT
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

// Key repeat timing constants.
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

// InputMaxChars bounds the UTF-8 text buffer accumulated between
// input_begin/input_end, per spec §6's "max input bytes per frame, default 16".
const InputMaxChars = 16

// InputState is the per-frame Input snapshot (§3, §4.3): mouse buttons with
// down/clicked-count/clicked-at, mouse position/prev/delta, scroll delta,
// grab state machine, a dense keyboard array, and a bounded text buffer.
type InputState struct {
	MouseX, MouseY         float32
	prevMouseX, prevMouseY float32

	mouseDown       [MouseButtonCount]bool
	mouseClickedCnt [MouseButtonCount]int
	mouseClickedAt  [MouseButtonCount]Vec2

	MouseWheelX float32
	MouseWheelY float32

	grabRequested bool
	ungrabRequested bool
	Grabbed       bool

	keyDown     [KeyCount]bool
	keyClicked  [KeyCount]int
	keyHoldTime [KeyCount]float32

	InputChars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool

	began bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, InputMaxChars),
	}
}

// Reset is kept for callers that drove the teacher's single-call-per-frame
// convention; it only calls InputBegin, clearing the per-frame state.
// InputEnd's work is not done.
func (s *InputState) Reset() {
	s.InputBegin()
}

// InputBegin zeroes clicked-counts and scroll delta; down-state persists.
// Mouse previous-position is latched here, per §4.3.
func (s *InputState) InputBegin() {
	s.prevMouseX, s.prevMouseY = s.MouseX, s.MouseY
	for i := range s.mouseClickedCnt {
		s.mouseClickedCnt[i] = 0
	}
	for i := range s.keyClicked {
		s.keyClicked[i] = 0
	}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
	s.began = true
}

// InputEnd advances the mouse-grab state machine: a requested grab takes
// effect, a requested ungrab clears both grabbed and the request.
func (s *InputState) InputEnd() {
	if s.grabRequested {
		s.Grabbed = true
		s.grabRequested = false
	}
	if s.ungrabRequested {
		s.Grabbed = false
		s.ungrabRequested = false
	}
	s.began = false
}

// RequestGrab sets the soft mouse-grab lock request (§5: "the host is
// expected to lock the OS cursor ... the library itself does not enforce
// the lock").
func (s *InputState) RequestGrab()   { s.grabRequested = true }
func (s *InputState) RequestUngrab() { s.ungrabRequested = true }

func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton records a button transition; current mouse position becomes
// the clicked-at position on a down transition.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down
	if down != wasDown {
		s.mouseClickedCnt[button]++
		if down {
			s.mouseClickedAt[button] = Vec2{X: s.MouseX, Y: s.MouseY}
		}
	}
}

// SetKey records a key transition, incrementing its clicked-count for edge
// detection per §4.3.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	wasDown := s.keyDown[key]
	s.keyDown[key] = down
	if down != wasDown {
		s.keyClicked[key]++
		s.keyHoldTime[key] = 0
	}
}

// UpdateKeyRepeat updates key hold times for repeat detection.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// AddInputChar appends a typed codepoint, bounded by InputMaxChars bytes
// of UTF-8; a codepoint that would cross the bound is dropped.
func (s *InputState) AddInputChar(ch rune) {
	if len(string(s.InputChars))+len(string(ch)) > InputMaxChars {
		return
	}
	s.InputChars = append(s.InputChars, ch)
}

func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// press is defined as (down && clicked>=1) || (!down && clicked>=2), to
// handle a down+up within a single frame (§4.3).
func (s *InputState) pressed(down bool, clicked int) bool {
	if down {
		return clicked >= 1
	}
	return clicked >= 2
}

func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.pressed(s.mouseDown[button], s.mouseClickedCnt[button])
}

func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return !s.mouseDown[button] && s.mouseClickedCnt[button] > 0
}

// MouseClickedAt returns the position a button transitioned down at.
func (s *InputState) MouseClickedAt(button MouseButton) Vec2 {
	if button < 0 || button >= MouseButtonCount {
		return Vec2{}
	}
	return s.mouseClickedAt[button]
}

// HasClickDownInRect reports down-state plus clicked-at containment.
func (s *InputState) HasClickDownInRect(button MouseButton, r Rect) bool {
	return s.MouseDown(button) && r.Contains(s.MouseClickedAt(button))
}

// ClickedInRect reports an edge transition whose clicked-at position and
// current position both fall inside r.
func (s *InputState) ClickedInRect(button MouseButton, r Rect) bool {
	return s.MouseClicked(button) && r.Contains(s.MouseClickedAt(button)) && r.Contains(Vec2{X: s.MouseX, Y: s.MouseY})
}

// HoveringRect tests containment by the current mouse position.
func (s *InputState) HoveringRect(r Rect) bool {
	return r.Contains(Vec2{X: s.MouseX, Y: s.MouseY})
}

// PrevHoveringRect tests containment by the previous mouse position.
func (s *InputState) PrevHoveringRect(r Rect) bool {
	return r.Contains(Vec2{X: s.prevMouseX, Y: s.prevMouseY})
}

func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.pressed(s.keyDown[key], s.keyClicked[key])
}

func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return !s.keyDown[key] && s.keyClicked[key] > 0
}

// KeyRepeated returns true on initial press, then after KeyRepeatDelay, then
// every KeyRepeatInterval.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	if s.pressed(s.keyDown[key], s.keyClicked[key]) && s.keyDown[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}
	holdTime := s.keyHoldTime[key]
	if holdTime < KeyRepeatDelay {
		return false
	}
	timeSinceDelay := holdTime - KeyRepeatDelay
	repeatCount := int(timeSinceDelay / KeyRepeatInterval)
	prevRepeatCount := int((timeSinceDelay - 0.016) / KeyRepeatInterval)
	return repeatCount > prevRepeatCount
}

func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone: "--", KeyShift: "Shift", KeyCtrl: "Ctrl", KeyDel: "Del",
		KeyEnter: "Enter", KeyTab: "Tab", KeyBackspace: "Backspace",
		KeyCopy: "Copy", KeyCut: "Cut", KeyPaste: "Paste",
		KeyUp: "Up", KeyDown: "Down", KeyLeft: "Left", KeyRight: "Right",
		KeyTextInsertMode: "Insert", KeyTextReplaceMode: "Replace", KeyTextResetMode: "View",
		KeyTextLineStart: "Home", KeyTextLineEnd: "End", KeyTextStart: "Ctrl+Home", KeyTextEnd: "Ctrl+End",
		KeyTextUndo: "Undo", KeyTextRedo: "Redo", KeyTextSelectAll: "Select All",
		KeyTextWordLeft: "Ctrl+Left", KeyTextWordRight: "Ctrl+Right",
		KeyScrollStart: "PgUp", KeyScrollEnd: "PgDn", KeyScrollDown: "Scroll Down", KeyScrollUp: "Scroll Up",
		KeyEscape: "Esc", KeySpace: "Space", KeyHome: "Home", KeyEnd: "End",
		KeyPageUp: "PgUp", KeyPageDown: "PgDn", KeyInsert: "Ins",
		KeyA: "A", KeyC: "C", KeyS: "S", KeyT: "T", KeyV: "V", KeyX: "X", KeyY: "Y", KeyZ: "Z",
		KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
		KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}
