package gui

var textEditorStore = NewFrameStore[*TextEditor]()

// TextEditOption configures a TextEdit widget call.
type TextEditOption func(*TextEditor)

// WithTextEditFlags sets the editor's behavior flags.
func WithTextEditFlags(flags TextEditFlags) TextEditOption {
	return func(e *TextEditor) { e.Flags = flags }
}

// WithTextEditFilter installs a codepoint filter.
func WithTextEditFilter(f CodepointFilter) TextEditOption {
	return func(e *TextEditor) { e.Filter = f }
}

// TextEdit draws the full Text Editor widget (§4.6): a bordered field
// backed by a *TextEditor that owns cursor/selection/undo state across
// frames, as opposed to InputText's simpler single-line InputTextState.
// value is read once to seed a new editor and ignored afterward — callers
// read the live text back via TextEditValue.
func (ctx *Context) TextEdit(label string, value *string, height float32, opts ...TextEditOption) bool {
	id := ctx.GetID(label)
	slot := textEditorStore.Get(id, nil)
	first := *slot == nil
	if first {
		e := NewTextEditor(*value)
		e.Flags = TextEditMultiline
		for _, o := range opts {
			o(e)
		}
		*slot = e
	}
	editor := *slot

	pos := ctx.ItemPos()
	w := ctx.currentLayoutWidth()
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: height}

	bg := ctx.style.InputBgColor
	modified := false
	readOnly := ctx.IsReadOnly()

	if ctx.Input != nil && !readOnly {
		hovered := rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
		if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			ctx.SetFocused(id)
			ctx.WantCaptureMouse = true
		}
		if ctx.IsFocused(id) {
			bg = ctx.style.InputFocusedBgColor
			ctx.WantCaptureKeyboard = true

			shift := ctx.Input.ModShift
			ctrlDown := ctx.Input.ModCtrl

			for _, r := range ctx.Input.InputChars {
				editor.InsertRune(r)
				modified = true
			}
			for k := KeyNone + 1; k < KeyCount; k++ {
				if ctx.Input.KeyPressed(k) || ctx.Input.KeyRepeated(k) {
					if editor.HandleKey(k, shift, ctrlDown) {
						modified = true
					}
				}
			}
		}
	}

	ctx.DrawList.FillRect(rect, bg)
	if ctx.style.BorderSize > 0 {
		ctx.DrawList.StrokeRect(rect, ctx.style.InputBorderColor, ctx.style.BorderSize)
	}
	ctx.DrawList.PushScissor(rect)
	ctx.addText(rect.X+4, rect.Y+4, editor.Text(), ctx.style.TextColor)
	ctx.DrawList.PopScissor()

	ctx.AdvanceCursor(Vec2{X: w, Y: height})

	if modified {
		*value = editor.Text()
	}
	return modified
}

// TextEditValue returns the live text of a previously-drawn TextEdit
// widget, or "" if it has never been drawn.
func (ctx *Context) TextEditValue(label string) string {
	id := ctx.GetID(label)
	if e := textEditorStore.GetIfExists(id); e != nil && *e != nil {
		return (*e).Text()
	}
	return ""
}
