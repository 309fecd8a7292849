package gui_test

import (
	"testing"

	"github.com/coreui-go/gui"
)

func TestPopupOpenCloseLifecycle(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.PopupIsOpen("menu") {
		t.Fatal("popup should start closed")
	}
	ctx.PopupOpen("menu")
	if !ctx.PopupIsOpen("menu") {
		t.Fatal("PopupOpen should mark the popup open immediately")
	}
	_ = ui.End()

	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if !ctx.PopupIsOpen("menu") {
		t.Fatal("popup open state should persist across frames")
	}
	if !ctx.PopupBeginStatic("menu", gui.Rect{X: 10, Y: 10, W: 100, H: 60}) {
		t.Fatal("PopupBeginStatic should return true while the popup is open")
	}
	ctx.PopupEnd()
	ctx.PopupClose("menu")
	_ = ui.End()

	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.PopupIsOpen("menu") {
		t.Fatal("PopupClose should close the popup")
	}
	if ctx.PopupBeginStatic("menu", gui.Rect{X: 10, Y: 10, W: 100, H: 60}) {
		t.Fatal("PopupBeginStatic should return false once closed")
	}
	_ = ui.End()
}

func TestPopupClosesOnOutsideClick(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.PopupOpen("menu")
	_ = ui.End()

	// Click far outside the popup's bounds.
	input.SetMousePos(500, 500)
	input.SetMouseButton(gui.MouseButtonLeft, true)
	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.PopupBeginStatic("menu", gui.Rect{X: 10, Y: 10, W: 100, H: 60})
	ctx.PopupEnd()
	_ = ui.End()

	input.SetMouseButton(gui.MouseButtonLeft, false)
	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.PopupIsOpen("menu") {
		t.Error("clicking outside the popup body should close it")
	}
	_ = ui.End()
}

func TestPopupPropagatesReadOnlyToLaterWidgets(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()

	// Position the mouse over where button B2 will be drawn, and press.
	input.SetMousePos(10, 10)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.BeginWindow("W", gui.WindowMovable, gui.Rect{X: 0, Y: 0, W: 400, H: 300})
	ctx.PopupOpen("ctxmenu")
	ctx.PopupBeginStatic("ctxmenu", gui.Rect{X: 200, Y: 200, W: 100, H: 60})
	ctx.PopupEnd()

	clicked := ctx.Button("B2")
	ctx.EndWindow()
	_ = ui.End()

	if clicked {
		t.Error("a widget drawn after an active popup in the same window should not register clicks")
	}
}

func TestContextualOpensOnRightClickInsideTrigger(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	input := gui.NewInputState()

	trigger := gui.Rect{X: 0, Y: 0, W: 100, H: 100}

	input.SetMousePos(50, 50)
	input.SetMouseButton(gui.MouseButtonRight, true)
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	opened := ctx.ContextualBegin("ctx", trigger, gui.Vec2{X: 80, Y: 40})
	if opened {
		ctx.ContextualEnd()
	}
	_ = ui.End()

	if !ctx.PopupIsOpen("ctx") {
		t.Error("right-clicking inside the trigger rect should open the contextual menu")
	}

	input.SetMouseButton(gui.MouseButtonRight, false)
	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	opened = ctx.ContextualBegin("ctx", trigger, gui.Vec2{X: 80, Y: 40})
	if !opened {
		t.Error("the contextual menu should remain open on the following frame")
	}
	if opened {
		ctx.ContextualEnd()
	}
	_ = ui.End()
}
