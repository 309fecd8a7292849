package gui

// colorPickerStore is the persistent per-widget state for ColorPicker,
// tracking which of the matrix/hue/alpha regions (if any) owns the current
// drag. Grounded on the slider widget's Dragging/DragStartX idiom
// (widget_slider.go) and the combo box's Open flag (widget_combobox.go) for
// the compact swatch form.
var colorPickerStore = NewFrameStore[ColorPickerState]()

const (
	colorPickerMatrixSize = 120
	colorPickerBarWidth   = 16
	colorPickerBarGap     = 8
)

// colorPickerBody draws the saturation/value matrix, hue bar, and (if
// withAlpha) alpha bar anchored at origin into dl, and updates *color from
// mouse interaction against state. It does not touch the layout cursor —
// callers position it via an explicit rect, the same way ComboBox's
// dropdown draws its items directly into a foreground DrawList instead of
// going through ItemPos/AdvanceCursor.
func (ctx *Context) colorPickerBody(dl *DrawList, origin Vec2, color *uint32, withAlpha bool, state *ColorPickerState) bool {
	h, s, v, a := RGBAToHSV(*color)

	matrixRect := Rect{X: origin.X, Y: origin.Y, W: colorPickerMatrixSize, H: colorPickerMatrixSize}

	hueX := matrixRect.X + colorPickerMatrixSize + colorPickerBarGap
	hueRect := Rect{X: hueX, Y: matrixRect.Y, W: colorPickerBarWidth, H: colorPickerMatrixSize}

	alphaRect := Rect{}
	if withAlpha {
		alphaX := hueX + colorPickerBarWidth + colorPickerBarGap
		alphaRect = Rect{X: alphaX, Y: matrixRect.Y, W: colorPickerBarWidth, H: colorPickerMatrixSize}
	}

	changed := false

	if ctx.Input != nil {
		mx, my := ctx.Input.MouseX, ctx.Input.MouseY
		down := ctx.Input.MouseDown(MouseButtonLeft)
		clicked := ctx.Input.MouseClicked(MouseButtonLeft)

		insideMatrix := mx >= matrixRect.X && mx <= matrixRect.X+matrixRect.W && my >= matrixRect.Y && my <= matrixRect.Y+matrixRect.H
		insideHue := mx >= hueRect.X && mx <= hueRect.X+hueRect.W && my >= hueRect.Y && my <= hueRect.Y+hueRect.H
		insideAlpha := withAlpha && mx >= alphaRect.X && mx <= alphaRect.X+alphaRect.W && my >= alphaRect.Y && my <= alphaRect.Y+alphaRect.H

		if clicked {
			state.DraggingMatrix = insideMatrix
			state.DraggingHue = insideHue && !insideMatrix
			state.DraggingAlpha = insideAlpha && !insideMatrix && !insideHue
		}
		if !down {
			state.DraggingMatrix = false
			state.DraggingHue = false
			state.DraggingAlpha = false
		}

		if state.DraggingMatrix {
			ns := clampf((mx-matrixRect.X)/matrixRect.W, 0, 1)
			nv := clampf(1-(my-matrixRect.Y)/matrixRect.H, 0, 1)
			if ns != s || nv != v {
				s, v = ns, nv
				changed = true
			}
		}
		if state.DraggingHue {
			nh := clampf((my-hueRect.Y)/hueRect.H, 0, 1)
			if nh != h {
				h = nh
				changed = true
			}
		}
		if state.DraggingAlpha {
			na := clampf(1-(my-alphaRect.Y)/alphaRect.H, 0, 1)
			if na != a {
				a = na
				changed = true
			}
		}
	}

	if changed {
		*color = HSVToRGBA(h, s, v, a)
	}

	// Matrix: full-saturation/value hue quad overlaid with a white-to-hue
	// horizontal ramp and a transparent-to-black vertical ramp, per §4.6
	// ("{white, hue, hue, white}" over "{transparent-black x2, black x2}").
	hueColor := HSVToRGBA(h, 1, 1, 1)
	dl.FillRectMultiColor(matrixRect, ColorWhite, hueColor, ColorWhite, hueColor)
	dl.FillRectMultiColor(matrixRect, RGBA(0, 0, 0, 0), RGBA(0, 0, 0, 0), ColorBlack, ColorBlack)
	dl.AddRectOutline(matrixRect.X, matrixRect.Y, matrixRect.W, matrixRect.H, ctx.style.InputBorderColor, 1)

	cursorX := matrixRect.X + s*matrixRect.W
	cursorY := matrixRect.Y + (1-v)*matrixRect.H
	dl.StrokeCircle(Vec2{X: cursorX, Y: cursorY}, 4, ColorWhite, 1.5, 12)

	// Hue bar: six vertical gradient sub-rectangles between the six
	// primary/secondary RGB corners (red/yellow/green/cyan/blue/magenta).
	corners := [7]uint32{ColorRed, ColorYellow, ColorGreen, ColorCyan, ColorBlue, ColorMagenta, ColorRed}
	segH := hueRect.H / 6
	for i := 0; i < 6; i++ {
		seg := Rect{X: hueRect.X, Y: hueRect.Y + float32(i)*segH, W: hueRect.W, H: segH}
		dl.FillRectMultiColor(seg, corners[i], corners[i], corners[i+1], corners[i+1])
	}
	dl.AddRectOutline(hueRect.X, hueRect.Y, hueRect.W, hueRect.H, ctx.style.InputBorderColor, 1)
	hueMarkerY := hueRect.Y + h*hueRect.H
	dl.AddLine(hueRect.X-2, hueMarkerY, hueRect.X+hueRect.W+2, hueMarkerY, ColorWhite, 1.5)

	if withAlpha {
		opaque := HSVToRGBA(h, s, v, 1)
		transparent := HSVToRGBA(h, s, v, 0)
		dl.FillRectMultiColor(alphaRect, opaque, opaque, transparent, transparent)
		dl.AddRectOutline(alphaRect.X, alphaRect.Y, alphaRect.W, alphaRect.H, ctx.style.InputBorderColor, 1)
		alphaMarkerY := alphaRect.Y + (1-a)*alphaRect.H
		dl.AddLine(alphaRect.X-2, alphaMarkerY, alphaRect.X+alphaRect.W+2, alphaMarkerY, ColorWhite, 1.5)
	}

	return changed
}

func colorPickerTotalWidth(withAlpha bool) float32 {
	w := float32(colorPickerMatrixSize + colorPickerBarGap + colorPickerBarWidth)
	if withAlpha {
		w += colorPickerBarGap + colorPickerBarWidth
	}
	return w
}

// ColorPicker draws the saturation/value matrix, a hue bar, and (if
// WithColorAlpha is set) an alpha bar, per §4.6's Color picker primitive.
// color is packed RGBA; the widget edits it in place via HSVA and returns
// true on any change.
//
// Usage:
//
//	if ctx.ColorPicker("Tint", &tintColor) {
//	    applyTint(tintColor)
//	}
func (ctx *Context) ColorPicker(label string, color *uint32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	state := colorPickerStore.Get(id, ColorPickerState{})
	withAlpha := GetOpt(o, OptColorAlpha)

	labelHeight := float32(0)
	if label != "" {
		labelHeight = ctx.lineHeight() + ctx.style.ItemSpacing
		ctx.addText(pos.X, pos.Y, label, ctx.style.TextColor)
	}

	origin := Vec2{X: pos.X, Y: pos.Y + labelHeight}
	changed := ctx.colorPickerBody(ctx.DrawList, origin, color, withAlpha, state)

	ctx.advanceCursor(Vec2{X: colorPickerTotalWidth(withAlpha), Y: labelHeight + colorPickerMatrixSize})

	return changed
}

// ColorButton draws a compact color swatch that opens a ColorPicker popup
// when clicked — the SPEC_FULL combobox-specialization form of the color
// picker (a swatch + popup sharing the same popup lifetime rule as
// ComboBox's dropdown, including closing on outside click or Escape).
// Returns true on any change to *color.
func (ctx *Context) ColorButton(label string, color *uint32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	state := colorPickerStore.Get(id, ColorPickerState{})
	withAlpha := GetOpt(o, OptColorAlpha)

	labelWidth := float32(0)
	if label != "" {
		labelWidth = ctx.MeasureText(label).X + ctx.style.ItemSpacing
		ctx.addText(pos.X, pos.Y, label, ctx.style.TextColor)
	}

	lh := ctx.lineHeight()
	swatchRect := Rect{X: pos.X + labelWidth, Y: pos.Y, W: lh * 2, H: lh}

	ctx.RegisterFocusable(id, label, swatchRect, FocusTypeLeaf)
	ctx.DrawList.FillRect(swatchRect, *color)
	ctx.DrawList.AddRectOutline(swatchRect.X, swatchRect.Y, swatchRect.W, swatchRect.H, ctx.style.InputBorderColor, 1)

	if !ctx.IsReadOnly() && ctx.isClicked(id, swatchRect) {
		state.Open = !state.Open
		if state.Open {
			ctx.SetActivePopup(id)
		} else {
			ctx.SetActivePopup(0)
		}
	}

	changed := false
	if state.Open {
		ctx.SetActivePopup(id)
		ctx.markPopupOwnerReadOnly()
		ctx.WantCaptureKeyboard = true

		fg := ctx.ForegroundDrawList
		if fg == nil {
			fg = ctx.DrawList
		}

		const popupPad = 8
		popupRect := Rect{
			X: swatchRect.X,
			Y: swatchRect.Y + lh,
			W: colorPickerTotalWidth(withAlpha) + popupPad*2,
			H: colorPickerMatrixSize + popupPad*2,
		}
		fg.FillRect(popupRect, ctx.style.DropdownBgColor)
		fg.AddRectOutline(popupRect.X, popupRect.Y, popupRect.W, popupRect.H, ctx.style.InputBorderColor, 1)

		origin := Vec2{X: popupRect.X + popupPad, Y: popupRect.Y + popupPad}
		changed = ctx.colorPickerBody(fg, origin, color, withAlpha, state)

		if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
			mx, my := ctx.Input.MouseX, ctx.Input.MouseY
			insidePopup := mx >= popupRect.X && mx <= popupRect.X+popupRect.W && my >= popupRect.Y && my <= popupRect.Y+popupRect.H
			insideSwatch := mx >= swatchRect.X && mx <= swatchRect.X+swatchRect.W && my >= swatchRect.Y && my <= swatchRect.Y+swatchRect.H
			if !insidePopup && !insideSwatch {
				state.Open = false
				ctx.SetActivePopup(0)
			}
		}
		if ctx.Input != nil && ctx.Input.KeyPressed(KeyEscape) {
			state.Open = false
			ctx.SetActivePopup(0)
		}
	} else if ctx.ActivePopupID() == id {
		ctx.SetActivePopup(0)
	}

	ctx.advanceCursor(Vec2{X: labelWidth + swatchRect.W, Y: lh})

	return changed
}
