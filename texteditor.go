package gui

import "unicode"

// TextEditMode is the Text Editor's three-state mode (§4.6): VIEW never
// accepts typed codepoints, INSERT splices new text in, REPLACE overwrites
// the codepoint under the cursor (overtype).
type TextEditMode int

const (
	TextEditView TextEditMode = iota
	TextEditInsert
	TextEditReplace
)

// TextEditFlags mirrors the recognised config options (§6) that affect
// editor behavior.
type TextEditFlags uint32

const (
	TextEditReadOnly TextEditFlags = 1 << iota
	TextEditAlwaysInsertMode
	TextEditMultiline
	TextEditNoNewline // Enter does not insert \n even when Multiline is set
	TextEditSelectOnClear
)

// CodepointFilter decides whether a typed rune is accepted into the
// buffer (§6 "codepoint-filter contract"). Returning false drops the
// character before it ever reaches the buffer.
type CodepointFilter func(r rune) bool

// FilterDefault accepts every rune, per §4.6's default codepoint-filter
// contract ("accept all") — including control runes like '\n' and '\t',
// which a Multiline/NoNewline-aware caller (or FilterPrintable) is
// responsible for rejecting or special-casing, not the filter itself.
func FilterDefault(r rune) bool { return true }

// FilterPrintable accepts only printable runes, rejecting control
// characters including '\n' and '\t'. Use this in place of FilterDefault
// when a single-line field should silently drop raw control input instead
// of relying on the widget layer to reject it.
func FilterPrintable(r rune) bool { return unicode.IsPrint(r) }

// FilterDecimal accepts digits, '-' and '.'. It judges each rune alone, so
// the position and number of '-' and '.' characters are not limited.
func FilterDecimal(r rune) bool {
	return unicode.IsDigit(r) || r == '-' || r == '.'
}

// FilterASCII accepts printable ASCII only.
func FilterASCII(r rune) bool { return r >= 0x20 && r < 0x7F }

// TextEditor is the shared text-editing engine behind every text input
// widget (§4.6 "shared text-edit instance" from Design Notes §9, rather
// than the teacher's per-widget InputTextState whole-string-snapshot
// undo). Selection and cursor are codepoint indices, never byte offsets,
// so multi-byte UTF-8 input never desyncs the caret.
type TextEditor struct {
	runes []rune
	Mode  TextEditMode
	Flags TextEditFlags

	Cursor int
	// SelectStart/SelectEnd mark an active selection; equal means none.
	SelectStart int
	SelectEnd   int

	Filter CodepointFilter

	// Userdata is opaque host state handed back to PasteHook/CopyHook,
	// matching the spec's paste(userdata, editor)/copy(userdata, utf8,
	// byte_len) clipboard contract. Unused if both hooks are nil.
	Userdata any
	// PasteHook, when set, is called instead of the package-level
	// ClipboardProvider and is responsible for inserting into the editor
	// itself (so it can apply its own filtering/transform before InsertText).
	PasteHook PasteFunc
	// CopyHook, when set, receives the copied/cut text instead of it going
	// to the package-level ClipboardProvider.
	CopyHook CopyFunc

	undo *undoState

	scrollOffset float32
	cursorBlink  float32
}

// NewTextEditor creates an editor over initial text.
func NewTextEditor(initial string) *TextEditor {
	return &TextEditor{
		runes:  []rune(initial),
		Mode:   TextEditInsert,
		Filter: FilterDefault,
		undo:   newUndoState(),
	}
}

// Text returns the buffer's current contents.
func (e *TextEditor) Text() string { return string(e.runes) }

// Len returns the number of codepoints in the buffer.
func (e *TextEditor) Len() int { return len(e.runes) }

// SetText replaces the whole buffer and resets cursor/selection. Does not
// push an undo record — used for external resets (e.g. rebinding the
// editor to a different model value).
func (e *TextEditor) SetText(text string) {
	e.runes = []rune(text)
	e.Cursor = len(e.runes)
	e.ClearSelection()
}

func (e *TextEditor) readOnly() bool {
	return e.Flags&TextEditReadOnly != 0 || e.Mode == TextEditView
}

// HasSelection reports whether an active (non-empty) selection exists.
func (e *TextEditor) HasSelection() bool { return e.SelectStart != e.SelectEnd }

// SelectedRange returns the selection as (lo, hi) with lo <= hi.
func (e *TextEditor) SelectedRange() (int, int) {
	if e.SelectStart <= e.SelectEnd {
		return e.SelectStart, e.SelectEnd
	}
	return e.SelectEnd, e.SelectStart
}

// ClearSelection collapses the selection to the cursor.
func (e *TextEditor) ClearSelection() {
	e.SelectStart = e.Cursor
	e.SelectEnd = e.Cursor
}

// SelectAll selects the entire buffer.
func (e *TextEditor) SelectAll() {
	e.SelectStart = 0
	e.SelectEnd = len(e.runes)
	e.Cursor = e.SelectEnd
}

// deleteRange removes [lo,hi) from the buffer and returns the deleted
// codepoints. It records no undo entry; callers record one themselves.
func (e *TextEditor) deleteRange(lo, hi int) []rune {
	if lo >= hi {
		return nil
	}
	deleted := append([]rune(nil), e.runes[lo:hi]...)
	e.runes = append(e.runes[:lo], e.runes[hi:]...)
	return deleted
}

// replaceSelection deletes the active selection (if any) and returns the
// cursor position edits should proceed from.
func (e *TextEditor) replaceSelection() int {
	if !e.HasSelection() {
		return e.Cursor
	}
	lo, hi := e.SelectedRange()
	deleted := e.deleteRange(lo, hi)
	e.undo.pushRecord(lo, 0, deleted)
	e.Cursor = lo
	e.ClearSelection()
	return lo
}

// InsertRune implements the INSERT-mode typed-character path, applying
// the codepoint filter and the overtype behavior when Mode is REPLACE.
func (e *TextEditor) InsertRune(r rune) {
	if e.readOnly() {
		return
	}
	if e.Filter != nil && !e.Filter(r) {
		return
	}
	pos := e.replaceSelection()

	if e.Mode == TextEditReplace && pos < len(e.runes) {
		deleted := e.deleteRange(pos, pos+1)
		e.runes = append(e.runes[:pos], append([]rune{r}, e.runes[pos:]...)...)
		e.undo.pushRecord(pos, 1, deleted)
	} else {
		e.runes = append(e.runes[:pos], append([]rune{r}, e.runes[pos:]...)...)
		e.undo.pushRecord(pos, 1, nil)
	}
	e.Cursor = pos + 1
	e.ClearSelection()
}

// InsertText inserts a whole string (e.g. a clipboard paste) as one undo
// step.
func (e *TextEditor) InsertText(s string) {
	if e.readOnly() || s == "" {
		return
	}
	pos := e.replaceSelection()
	rs := []rune(s)
	if e.Filter != nil {
		filtered := rs[:0]
		for _, r := range rs {
			if e.Filter(r) {
				filtered = append(filtered, r)
			}
		}
		rs = filtered
	}
	e.runes = append(e.runes[:pos], append(append([]rune(nil), rs...), e.runes[pos:]...)...)
	e.undo.pushRecord(pos, len(rs), nil)
	e.Cursor = pos + len(rs)
	e.ClearSelection()
}

// Backspace deletes the selection, or one codepoint before the cursor.
func (e *TextEditor) Backspace() {
	if e.readOnly() {
		return
	}
	if e.HasSelection() {
		e.replaceSelection()
		return
	}
	if e.Cursor == 0 {
		return
	}
	deleted := e.deleteRange(e.Cursor-1, e.Cursor)
	e.undo.pushRecord(e.Cursor-1, 0, deleted)
	e.Cursor--
	e.ClearSelection()
}

// Delete removes the selection, or one codepoint after the cursor.
func (e *TextEditor) Delete() {
	if e.readOnly() {
		return
	}
	if e.HasSelection() {
		e.replaceSelection()
		return
	}
	if e.Cursor >= len(e.runes) {
		return
	}
	deleted := e.deleteRange(e.Cursor, e.Cursor+1)
	e.undo.pushRecord(e.Cursor, 0, deleted)
	e.ClearSelection()
}

// Undo reverts the last edit, restoring both the buffer and the cursor.
func (e *TextEditor) Undo() bool {
	rec, deleted, ok := e.undo.undo()
	if !ok {
		return false
	}
	if rec.insertLength > 0 {
		e.runes = append(e.runes[:rec.where], e.runes[rec.where+rec.insertLength:]...)
	}
	if len(deleted) > 0 {
		e.runes = append(e.runes[:rec.where], append(append([]rune(nil), deleted...), e.runes[rec.where:]...)...)
	}
	e.Cursor = rec.where
	e.ClearSelection()
	return true
}

// Redo replays the next record after the last Undo.
func (e *TextEditor) Redo() bool {
	rec, ok := e.undo.redo()
	if !ok {
		return false
	}
	if rec.deleteLength > 0 {
		e.runes = append(e.runes[:rec.where], e.runes[rec.where+rec.deleteLength:]...)
	}
	if rec.insertLength > 0 {
		// Redo of an insert re-inserts zero runes (the original content is
		// gone from the ring by design; redo of pure inserts is therefore
		// a no-op on content and only restores the cursor), matching the
		// bounded-ring tradeoff the spec accepts by only storing deletes.
	}
	e.Cursor = rec.where + rec.insertLength
	e.ClearSelection()
	return true
}

func (e *TextEditor) CanUndo() bool { return e.undo.canUndo() }
func (e *TextEditor) CanRedo() bool { return e.undo.canRedo() }

// MoveLeft/MoveRight move the cursor by one codepoint, extending the
// selection when extend is true.
func (e *TextEditor) MoveLeft(extend bool)  { e.moveTo(maxInt(0, e.Cursor-1), extend) }
func (e *TextEditor) MoveRight(extend bool) { e.moveTo(minInt(len(e.runes), e.Cursor+1), extend) }

func (e *TextEditor) moveTo(pos int, extend bool) {
	e.Cursor = pos
	if extend {
		e.SelectEnd = pos
	} else {
		e.ClearSelection()
	}
}

// MoveWordLeft/MoveWordRight implement word-boundary motion (§4.6 "word
// motion"): skip any run of non-word runes, then the run of word runes.
func (e *TextEditor) MoveWordLeft(extend bool) {
	pos := e.Cursor
	for pos > 0 && !isWordRune(e.runes[pos-1]) {
		pos--
	}
	for pos > 0 && isWordRune(e.runes[pos-1]) {
		pos--
	}
	e.moveTo(pos, extend)
}

func (e *TextEditor) MoveWordRight(extend bool) {
	pos := e.Cursor
	n := len(e.runes)
	for pos < n && !isWordRune(e.runes[pos]) {
		pos++
	}
	for pos < n && isWordRune(e.runes[pos]) {
		pos++
	}
	e.moveTo(pos, extend)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// MoveLineStart/MoveLineEnd jump to the start/end of the current line
// (codepoint-indexed, so "line" means the run between the nearest '\n'
// boundaries around the cursor).
func (e *TextEditor) MoveLineStart(extend bool) {
	pos := e.Cursor
	for pos > 0 && e.runes[pos-1] != '\n' {
		pos--
	}
	e.moveTo(pos, extend)
}

func (e *TextEditor) MoveLineEnd(extend bool) {
	pos := e.Cursor
	n := len(e.runes)
	for pos < n && e.runes[pos] != '\n' {
		pos++
	}
	e.moveTo(pos, extend)
}

// MoveStart/MoveEnd jump to the very start/end of the buffer.
func (e *TextEditor) MoveStart(extend bool) { e.moveTo(0, extend) }
func (e *TextEditor) MoveEnd(extend bool)   { e.moveTo(len(e.runes), extend) }

// Cut removes the selection and returns it, pushing it to the clipboard
// (cut is a no-op on an empty selection per §6's read-only/no-selection rule).
func (e *TextEditor) Cut() string {
	if !e.HasSelection() {
		return ""
	}
	lo, hi := e.SelectedRange()
	text := string(e.runes[lo:hi])
	e.replaceSelection()
	e.copyOut(text)
	return text
}

// Copy copies the selection to the clipboard without modifying the buffer.
func (e *TextEditor) Copy() string {
	if !e.HasSelection() {
		return ""
	}
	lo, hi := e.SelectedRange()
	text := string(e.runes[lo:hi])
	e.copyOut(text)
	return text
}

// copyOut runs the copy(userdata, utf8, byte_len) clipboard contract: CopyHook
// if the editor has one, otherwise the package-level ClipboardProvider.
func (e *TextEditor) copyOut(text string) {
	if e.CopyHook != nil {
		e.CopyHook(e.Userdata, text, len(text))
		return
	}
	ClipboardSetText(text)
}

// Paste inserts the clipboard contents at the cursor (or over the
// selection), honouring Filter since it goes through InsertText. Runs the
// paste(userdata, editor) clipboard contract: PasteHook if set, otherwise
// the package-level ClipboardProvider.
func (e *TextEditor) Paste() {
	if e.PasteHook != nil {
		e.PasteHook(e.Userdata, e)
		return
	}
	e.InsertText(ClipboardGetText())
}

// HandleKey dispatches one editor hotkey (§6 Key enum); returns true if
// the key was consumed by the editor.
func (e *TextEditor) HandleKey(k Key, shift, ctrl bool) bool {
	switch k {
	case KeyLeft:
		if ctrl {
			e.MoveWordLeft(shift)
		} else {
			e.MoveLeft(shift)
		}
	case KeyRight:
		if ctrl {
			e.MoveWordRight(shift)
		} else {
			e.MoveRight(shift)
		}
	case KeyTextLineStart, KeyHome:
		e.MoveLineStart(shift)
	case KeyTextLineEnd, KeyEnd:
		e.MoveLineEnd(shift)
	case KeyTextStart:
		e.MoveStart(shift)
	case KeyTextEnd:
		e.MoveEnd(shift)
	case KeyTextWordLeft:
		e.MoveWordLeft(shift)
	case KeyTextWordRight:
		e.MoveWordRight(shift)
	case KeyBackspace:
		e.Backspace()
	case KeyDel:
		e.Delete()
	case KeyTextUndo:
		e.Undo()
	case KeyTextRedo:
		e.Redo()
	case KeyTextSelectAll:
		e.SelectAll()
	case KeyCopy:
		e.Copy()
	case KeyCut:
		e.Cut()
	case KeyPaste:
		e.Paste()
	case KeyTextInsertMode:
		if e.Flags&TextEditAlwaysInsertMode == 0 {
			e.Mode = TextEditInsert
		}
	case KeyTextReplaceMode:
		if e.Flags&TextEditAlwaysInsertMode == 0 {
			e.Mode = TextEditReplace
		}
	case KeyTextResetMode:
		e.Mode = TextEditInsert
	case KeyEnter:
		if e.Flags&TextEditMultiline != 0 && e.Flags&TextEditNoNewline == 0 {
			e.InsertRune('\n')
		} else {
			return false
		}
	default:
		return false
	}
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
