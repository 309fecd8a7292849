package gui_test

import (
	"testing"

	"github.com/coreui-go/gui"
)

func TestStyleStackColorIndependentOfFloat(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.DefaultStyle()))
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)

	origText := ctx.Style().TextColor
	origSpacing := ctx.Style().ItemSpacing

	if !ctx.PushStyleColor(gui.StyleColorText, gui.ColorRed) {
		t.Fatal("expected PushStyleColor to succeed")
	}
	if !ctx.PushStyleVarFloat(gui.StyleVarItemSpacing, 99) {
		t.Fatal("expected PushStyleVarFloat to succeed")
	}

	if ctx.Style().TextColor != gui.ColorRed {
		t.Fatalf("expected text color override, got %x", ctx.Style().TextColor)
	}
	if ctx.Style().ItemSpacing != 99 {
		t.Fatalf("expected spacing override, got %v", ctx.Style().ItemSpacing)
	}

	// Popping the float stack must not disturb the color stack.
	ctx.PopStyleVarFloat()
	if ctx.Style().TextColor != gui.ColorRed {
		t.Fatal("popping float stack should not restore color")
	}
	if ctx.Style().ItemSpacing != origSpacing {
		t.Fatalf("expected spacing restored to %v, got %v", origSpacing, ctx.Style().ItemSpacing)
	}

	ctx.PopStyleColor()
	if ctx.Style().TextColor != origText {
		t.Fatalf("expected text color restored to %x, got %x", origText, ctx.Style().TextColor)
	}
}

func TestStyleStackOverflowReportsFailure(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.DefaultStyle()))
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)

	for i := 0; i < gui.StyleStackCap; i++ {
		if !ctx.PushStyleFlags(gui.StyleFlagCompact) {
			t.Fatalf("push %d should have succeeded under cap", i)
		}
	}
	if ctx.PushStyleFlags(gui.StyleFlagCompact) {
		t.Fatal("push past StyleStackCap should fail, not grow unbounded")
	}
	for i := 0; i < gui.StyleStackCap; i++ {
		ctx.PopStyleFlags()
	}
	// Popping past empty is a no-op, not a panic.
	ctx.PopStyleFlags()
}

func TestPushFontRestoresPrevious(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.GTAStyle()))
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)

	orig := ctx.Style().FontName
	ctx.PushFont("plate")
	if ctx.Style().FontName != "plate" {
		t.Fatalf("expected active font name 'plate', got %q", ctx.Style().FontName)
	}
	ctx.PopFont()
	if ctx.Style().FontName != orig {
		t.Fatalf("expected font name restored to %q, got %q", orig, ctx.Style().FontName)
	}
}

func TestButtonRepeatFiresWhileHeld(t *testing.T) {
	renderer := &mockRenderer{}
	style := gui.DefaultStyle()
	style.ButtonRepeat = true
	ui := gui.New(renderer, gui.WithStyle(style))
	input := gui.NewInputState()

	input.SetMousePos(5, 5)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if !ctx.Button("Hold") {
		t.Fatal("expected initial click on press")
	}
	_ = ui.End()

	fired := false
	for i := 0; i < 40 && !fired; i++ {
		input.InputBegin()
		ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
		if ctx.Button("Hold") {
			fired = true
		}
		_ = ui.End()
	}
	if !fired {
		t.Fatal("expected held button with ButtonRepeat to fire again before 40 frames")
	}
}

func TestPushButtonRepeatRestoresPrevious(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.DefaultStyle()))
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)

	if ctx.Style().ButtonRepeat {
		t.Fatal("expected ButtonRepeat false by default")
	}
	ctx.PushButtonRepeat(true)
	if !ctx.Style().ButtonRepeat {
		t.Fatal("expected ButtonRepeat true after push")
	}
	ctx.PopButtonRepeat()
	if ctx.Style().ButtonRepeat {
		t.Fatal("expected ButtonRepeat restored to false")
	}
}
