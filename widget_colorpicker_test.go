package gui_test

import (
	"testing"

	"github.com/coreui-go/gui"
)

func TestColorPickerNoInteractionNoChange(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	color := gui.ColorRed
	changed := ctx.ColorPicker("Tint", &color)
	_ = ui.End()

	if changed {
		t.Error("ColorPicker should not report a change without mouse input")
	}
	if color != gui.ColorRed {
		t.Errorf("color should be unchanged, got %#x", color)
	}
}

func TestColorPickerMatrixDragUpdatesSaturationValue(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()

	color := gui.HSVToRGBA(0, 1, 1, 1) // pure red, full saturation/value

	// First frame: click inside the matrix's top-left corner (low S, high V).
	// Empty label keeps the matrix anchored at the frame's (0,0) cursor.
	input.SetMousePos(0, 0)
	input.SetMouseButton(gui.MouseButtonLeft, true)
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.ColorPicker("", &color)
	_ = ui.End()

	h, s, v, _ := gui.RGBAToHSV(color)
	if s > 0.1 {
		t.Errorf("clicking the matrix's left edge should drive saturation toward 0, got s=%v", s)
	}
	if v < 0.9 {
		t.Errorf("clicking the matrix's top edge should drive value toward 1, got v=%v", v)
	}
	if h < -0.01 || h > 1.01 {
		t.Errorf("hue should remain in [0,1], got %v", h)
	}
}

func TestColorPickerReleaseStopsDragging(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()
	color := gui.ColorWhite

	input.SetMousePos(0, 0)
	input.SetMouseButton(gui.MouseButtonLeft, true)
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.ColorPicker("", &color)
	_ = ui.End()

	afterDrag := color

	// Next frame: mouse moves far away but button is released; color must
	// not keep tracking the mouse once the drag has ended.
	input.SetMouseButton(gui.MouseButtonLeft, false)
	input.SetMousePos(400, 400)
	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.ColorPicker("", &color)
	_ = ui.End()

	if color != afterDrag {
		t.Errorf("color should not change after mouse release, before=%#x after=%#x", afterDrag, color)
	}
}

func TestColorButtonTogglesPopup(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()
	color := gui.ColorBlue

	// Click the swatch at its draw origin (empty label keeps it anchored at
	// the frame's (0,0) cursor) to open the popup.
	input.SetMousePos(0, 0)
	input.SetMouseButton(gui.MouseButtonLeft, true)
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.ColorButton("", &color)
	_ = ui.End()

	// Each frame's Reset clears the active popup ID, so the swatch has to be
	// drawn again in the next frame for its open popup to be registered.
	input.InputBegin()
	input.SetMouseButton(gui.MouseButtonLeft, false)
	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.ColorButton("", &color)
	if ctx.ActivePopupID() == 0 {
		t.Error("clicking the swatch should register an active popup")
	}
	_ = ui.End()
}

func TestHSVRGBARoundTrip(t *testing.T) {
	cases := []uint32{gui.ColorRed, gui.ColorGreen, gui.ColorBlue, gui.ColorYellow, gui.ColorCyan, gui.ColorMagenta, gui.ColorWhite}
	for _, c := range cases {
		h, s, v, a := gui.RGBAToHSV(c)
		back := gui.HSVToRGBA(h, s, v, a)
		r1, g1, b1, a1 := gui.UnpackRGBA(c)
		r2, g2, b2, a2 := gui.UnpackRGBA(back)
		const tol = 2
		if absInt(int(r1)-int(r2)) > tol || absInt(int(g1)-int(g2)) > tol || absInt(int(b1)-int(b2)) > tol || a1 != a2 {
			t.Errorf("round-trip mismatch for %#x: got %#x (h=%v s=%v v=%v a=%v)", c, back, h, s, v, a)
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
