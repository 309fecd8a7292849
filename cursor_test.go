package gui_test

import (
	"testing"

	"github.com/coreui-go/gui"
)

type fakeCursorSource struct {
	textureID uint32
	lastKind  gui.CursorKind
}

func (f *fakeCursorSource) TextureID() uint32 { return f.textureID }

func (f *fakeCursorSource) UV(kind gui.CursorKind) (u0, v0, u1, v1, w, h, hotX, hotY float32) {
	f.lastKind = kind
	return 0.1, 0.2, 0.3, 0.4, 16, 16, 0, 0
}

// Render is only called a second time for ForegroundDrawList when it has
// at least one command (see GUI.End), so renderCalls == 2 is the signal
// that drawCursor actually emitted something.

func TestDrawCursorEmitsCommandWhenVisible(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.DefaultStyle()))
	input := gui.NewInputState()
	input.SetMousePos(42, 77)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.SetCursorSource(&fakeCursorSource{textureID: 7})
	if err := ui.End(); err != nil {
		t.Fatalf("End returned error: %v", err)
	}
	if renderer.renderCalls != 2 {
		t.Fatalf("expected main + foreground render calls (2), got %d", renderer.renderCalls)
	}
}

func TestCursorHiddenWhenStyleSaysSo(t *testing.T) {
	renderer := &mockRenderer{}
	style := gui.DefaultStyle()
	style.CursorVisible = false
	ui := gui.New(renderer, gui.WithStyle(style))

	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.SetCursorSource(&fakeCursorSource{textureID: 7})
	_ = ui.End()
	if renderer.renderCalls != 1 {
		t.Fatalf("expected no cursor command when CursorVisible is false, got %d render calls", renderer.renderCalls)
	}
}

func TestCursorSuppressedWhenMouseGrabbed(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.DefaultStyle()))
	input := gui.NewInputState()
	input.RequestGrab()
	input.InputEnd()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.SetCursorSource(&fakeCursorSource{textureID: 7})
	_ = ui.End()
	if renderer.renderCalls != 1 {
		t.Fatalf("expected no cursor command while the mouse is grabbed, got %d render calls", renderer.renderCalls)
	}
}

func TestSetCursorResetsToArrowEachFrame(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.DefaultStyle()))

	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.SetCursorSource(&fakeCursorSource{textureID: 7})
	ctx.SetCursor(gui.CursorResizeNWSE)
	_ = ui.End()

	// A fresh frame's Reset must have put it back to CursorArrow; drawCursor
	// should still fire without anyone calling SetCursor again this frame.
	ctx2 := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	src2 := &fakeCursorSource{textureID: 7, lastKind: gui.CursorResizeNWSE}
	ctx2.SetCursorSource(src2)
	_ = ui.End()
	if renderer.renderCalls != 4 {
		t.Fatalf("expected 2 render calls per frame across 2 frames, got %d", renderer.renderCalls)
	}
	if src2.lastKind != gui.CursorArrow {
		t.Fatalf("expected the second frame to draw CursorArrow, got %v", src2.lastKind)
	}
}
