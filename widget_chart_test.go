package gui_test

import (
	"testing"

	"github.com/coreui-go/gui"
)

func setupChartTest() (*gui.GUI, *gui.InputState) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.GTAStyle()))
	input := gui.NewInputState()
	return ui, input
}

func TestChartSingleSlotLines(t *testing.T) {
	ui, input := setupChartTest()
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	values := []float32{1, 3, 2, 5, 4}
	if !ctx.ChartBegin("cpu", gui.ChartLines, len(values), 0, 5) {
		t.Fatal("ChartBegin returned false for a valid-size chart")
	}
	for _, v := range values {
		ctx.ChartPush(v)
	}
	ctx.ChartEnd()

	if err := ui.End(); err != nil {
		t.Fatalf("End returned error: %v", err)
	}
}

func TestChartMultipleSlots(t *testing.T) {
	ui, input := setupChartTest()
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	if !ctx.ChartBegin("multi", gui.ChartLines, 3, 0, 10, gui.WithChartLabel("fps"), gui.WithChartColor(gui.ColorGreen)) {
		t.Fatal("ChartBegin returned false")
	}
	slot := ctx.ChartAddSlot(gui.ChartColumn, 3, 0, 10, gui.WithChartLabel("frame time"), gui.WithChartColor(gui.ColorYellow))
	if slot != 1 {
		t.Fatalf("expected second slot index 1, got %d", slot)
	}

	for i := 0; i < 3; i++ {
		ctx.ChartPushSlot(float32(i), 0)
		ctx.ChartPushSlot(float32(3-i), slot)
	}
	ctx.ChartEnd()

	if err := ui.End(); err != nil {
		t.Fatalf("End returned error: %v", err)
	}
}

func TestChartAddSlotBeyondCapacityReturnsNegativeOne(t *testing.T) {
	ui, input := setupChartTest()
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	ctx.ChartBegin("full", gui.ChartLines, 1, 0, 1) // slot 0
	ctx.ChartAddSlot(gui.ChartLines, 1, 0, 1)       // slot 1
	ctx.ChartAddSlot(gui.ChartLines, 1, 0, 1)       // slot 2
	ctx.ChartAddSlot(gui.ChartLines, 1, 0, 1)       // slot 3, at capacity now

	overflow := ctx.ChartAddSlot(gui.ChartLines, 1, 0, 1)
	if overflow != -1 {
		t.Fatalf("expected -1 once the 4-slot cap is hit, got %d", overflow)
	}
	ctx.ChartEnd()

	if err := ui.End(); err != nil {
		t.Fatalf("End returned error: %v", err)
	}
}

func TestChartPushSlotOutsideOpenBlockIsNoop(t *testing.T) {
	ui, input := setupChartTest()
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	flags := ctx.ChartPushSlot(1, 0)
	if flags != 0 {
		t.Fatalf("expected no flags when no chart is open, got %v", flags)
	}

	if err := ui.End(); err != nil {
		t.Fatalf("End returned error: %v", err)
	}
}

func TestChartHoveringFlag(t *testing.T) {
	ui, input := setupChartTest()
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	ctx.ChartBegin("hover", gui.ChartLines, 1, 0, 10)
	pos := ctx.ItemPos()
	// Hovering state is computed against the live Input during push, so
	// aim the mouse at the chart's single point location: (pos.X, mid-height).
	input.MouseX = pos.X
	input.MouseY = pos.Y + 50
	flags := ctx.ChartPush(5)
	ctx.ChartEnd()

	if flags&gui.ChartHovering == 0 {
		t.Error("expected HOVERING flag when the mouse sits on the pushed point")
	}

	if err := ui.End(); err != nil {
		t.Fatalf("End returned error: %v", err)
	}
}
