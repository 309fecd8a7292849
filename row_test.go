package gui_test

import (
	"testing"

	"github.com/coreui-go/gui"
)

func setupRowTest() *gui.Context {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.GTAStyle()))
	input := gui.NewInputState()
	return ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
}

func TestRowDynamicFixedSplitsWidthEqually(t *testing.T) {
	ctx := setupRowTest()
	row := ctx.NewRowDynamicFixed(30, 4)

	var rects []gui.Rect
	for i := 0; i < 4; i++ {
		r, state := row.Widget()
		if state != gui.WidgetValid {
			t.Fatalf("column %d: expected WidgetValid, got %v", i, state)
		}
		rects = append(rects, r)
	}

	want := rects[0].W
	for i, r := range rects {
		if r.W != want {
			t.Errorf("column %d width = %v, want %v", i, r.W, want)
		}
		if r.H != 30 {
			t.Errorf("column %d height = %v, want 30", i, r.H)
		}
	}
	// columns should tile left to right with no gap or overlap
	for i := 1; i < len(rects); i++ {
		if rects[i].X != rects[i-1].X+rects[i-1].W {
			t.Errorf("column %d starts at %v, expected %v", i, rects[i].X, rects[i-1].X+rects[i-1].W)
		}
	}
}

func TestRowStaticFixedUsesFixedPixelWidth(t *testing.T) {
	ctx := setupRowTest()
	row := ctx.NewRowStaticFixed(24, 80, 3)

	for i := 0; i < 3; i++ {
		r, state := row.Widget()
		if state != gui.WidgetValid {
			t.Fatalf("column %d: expected WidgetValid", i)
		}
		if r.W != 80 {
			t.Errorf("column %d width = %v, want 80", i, r.W)
		}
	}
}

func TestRowDynamicRatiosSumToBoundsWidth(t *testing.T) {
	ctx := setupRowTest()
	row := ctx.NewRowDynamic(20, []float32{0.2, 0.3, 0.5})

	total := float32(0)
	for i := 0; i < 3; i++ {
		r, state := row.Widget()
		if state != gui.WidgetValid {
			t.Fatalf("column %d: expected WidgetValid", i)
		}
		total += r.W
	}

	// fourth call exceeds the declared ratio count
	if _, state := row.Widget(); state != gui.WidgetInvalid {
		t.Error("expected WidgetInvalid once all declared ratio columns are consumed")
	}

	if diff := total - row.Bounds.W; diff > 0.01 || diff < -0.01 {
		t.Errorf("ratio columns summed to %v, want %v", total, row.Bounds.W)
	}
}

func TestRowDynamicNegativeRatiosSplitRemainingEqually(t *testing.T) {
	ctx := setupRowTest()
	row := ctx.NewRowDynamic(20, []float32{0.2, -1, -1})

	first, _ := row.Widget()
	second, _ := row.Widget()
	third, _ := row.Widget()

	if first.W/row.Bounds.W < 0.19 || first.W/row.Bounds.W > 0.21 {
		t.Errorf("positive ratio column width = %v, want ~20%% of %v", first.W, row.Bounds.W)
	}
	if second.W != third.W {
		t.Errorf("negative-ratio columns should split the remainder equally: %v vs %v", second.W, third.W)
	}
	if diff := (first.W + second.W + third.W) - row.Bounds.W; diff > 0.01 || diff < -0.01 {
		t.Errorf("ratio columns summed to %v, want %v", first.W+second.W+third.W, row.Bounds.W)
	}
}

func TestRowStaticExplicitWidths(t *testing.T) {
	ctx := setupRowTest()
	row := ctx.NewRowStatic(20, []float32{40, 60, 80})

	widths := []float32{40, 60, 80}
	for i, want := range widths {
		r, state := row.Widget()
		if state != gui.WidgetValid {
			t.Fatalf("column %d: expected WidgetValid", i)
		}
		if r.W != want {
			t.Errorf("column %d width = %v, want %v", i, r.W, want)
		}
	}
}

func TestRowTemplateStaticColumnsTakePriorityOverVariable(t *testing.T) {
	ctx := setupRowTest()
	row := ctx.NewRowTemplate(20, []gui.TemplateColumn{
		{Kind: gui.TemplateStatic, Width: 100},
		{Kind: gui.TemplateVariable, Width: 50},
		{Kind: gui.TemplateVariable, Width: 50},
	})

	static, state := row.Widget()
	if state != gui.WidgetValid || static.W != 100 {
		t.Fatalf("static column: got W=%v state=%v, want W=100 valid", static.W, state)
	}

	varA, _ := row.Widget()
	varB, _ := row.Widget()
	if varA.W != varB.W {
		t.Errorf("equal-minimum variable columns with no dynamic competitor should split remaining width equally: %v vs %v", varA.W, varB.W)
	}
	if diff := (static.W + varA.W + varB.W) - row.Bounds.W; diff > 0.01 || diff < -0.01 {
		t.Errorf("template columns summed to %v, want %v", static.W+varA.W+varB.W, row.Bounds.W)
	}
}

func TestRowTemplateDynamicColumnGetsNonzeroWidth(t *testing.T) {
	ctx := setupRowTest()
	row := ctx.NewRowTemplate(20, []gui.TemplateColumn{
		{Kind: gui.TemplateStatic, Width: 100},
		{Kind: gui.TemplateVariable, Width: 50},
		{Kind: gui.TemplateDynamic},
	})

	static, _ := row.Widget()
	variable, _ := row.Widget()
	dynamic, _ := row.Widget()

	if dynamic.W <= 0 {
		t.Fatalf("dynamic column should absorb the leftover space, got W=%v", dynamic.W)
	}
	if variable.W != 50 {
		t.Errorf("variable column should get exactly its minimum when a dynamic column is present, got W=%v", variable.W)
	}
	if diff := (static.W + variable.W + dynamic.W) - row.Bounds.W; diff > 0.01 || diff < -0.01 {
		t.Errorf("template columns summed to %v, want %v", static.W+variable.W+dynamic.W, row.Bounds.W)
	}
}

func TestRowTemplateVariableSqueezedWhenNotEnoughRoom(t *testing.T) {
	ctx := setupRowTest()
	row := ctx.NewRowTemplate(20, []gui.TemplateColumn{
		{Kind: gui.TemplateStatic, Width: row0Width(ctx) - 10},
		{Kind: gui.TemplateVariable, Width: 50}, // minimum doesn't fit in the 10px left over
		{Kind: gui.TemplateDynamic},
	})

	_, _ = row.Widget()
	variable, _ := row.Widget()
	dynamic, _ := row.Widget()

	if variable.W != 0 {
		t.Errorf("variable column should be squeezed to 0 when its minimum can't be honored, got W=%v", variable.W)
	}
	if dynamic.W != 10 {
		t.Errorf("dynamic column should take the entire (insufficient) remainder, got W=%v, want 10", dynamic.W)
	}
}

func row0Width(ctx *gui.Context) float32 {
	row := ctx.NewRowDynamicFree(1)
	return row.Bounds.W
}

func TestRowDynamicFreePlacesByRatio(t *testing.T) {
	ctx := setupRowTest()
	row := ctx.NewRowDynamicFree(50)

	r, state := row.WidgetAt(0.25, 0.5, 0.5, 0.5)
	if state != gui.WidgetValid {
		t.Fatal("expected WidgetValid for a free-placed widget inside bounds")
	}
	wantX := row.Bounds.X + 0.25*row.Bounds.W
	if r.X != wantX {
		t.Errorf("X = %v, want %v", r.X, wantX)
	}
	if r.W != 0.5*row.Bounds.W {
		t.Errorf("W = %v, want %v", r.W, 0.5*row.Bounds.W)
	}
}

func TestRowStaticFreeUsesAbsolutePixels(t *testing.T) {
	ctx := setupRowTest()
	row := ctx.NewRowStaticFree(50)

	r, state := row.WidgetAt(10, 5, 40, 20)
	if state != gui.WidgetValid {
		t.Fatal("expected WidgetValid")
	}
	if r.X != row.Bounds.X+10 || r.Y != row.Bounds.Y+5 {
		t.Errorf("position = (%v, %v), want (%v, %v)", r.X, r.Y, row.Bounds.X+10, row.Bounds.Y+5)
	}
	if r.W != 40 || r.H != 20 {
		t.Errorf("size = (%v, %v), want (40, 20)", r.W, r.H)
	}
}

func TestRowDynamicRowAndStaticRowOccupyFullRowEachCall(t *testing.T) {
	ctx := setupRowTest()
	dynRow := ctx.NewRowDynamicRow(20)
	r, state := dynRow.Widget()
	if state != gui.WidgetValid || r.W != dynRow.Bounds.W {
		t.Errorf("RowDynamicRow width = %v, want %v", r.W, dynRow.Bounds.W)
	}

	ctx2 := setupRowTest()
	statRow := ctx2.NewRowStaticRow(20, 120)
	r2, state2 := statRow.Widget()
	if state2 != gui.WidgetValid || r2.W != 120 {
		t.Errorf("RowStaticRow width = %v, want 120", r2.W)
	}
}

func TestRowZeroSizeRectIsInvalid(t *testing.T) {
	ctx := setupRowTest()
	row := ctx.NewRowStaticFree(50)
	_, state := row.WidgetAt(0, 0, 0, 0)
	if state != gui.WidgetInvalid {
		t.Error("a zero-area rect should report WidgetInvalid")
	}
}

func TestRowWidgetFullyOutsideClipIsInvalid(t *testing.T) {
	ctx := setupRowTest()
	ctx.DrawList.PushClipRect(0, 0, 50, 50)
	row := ctx.NewRowStaticFree(20)

	_, state := row.WidgetAt(200, 200, 30, 30)
	if state != gui.WidgetInvalid {
		t.Errorf("a rect entirely outside the clip should report WidgetInvalid, got %v", state)
	}
}

func TestRowWidgetPartiallyClippedIsROM(t *testing.T) {
	ctx := setupRowTest()
	ctx.DrawList.PushClipRect(0, 0, 50, 50)
	row := ctx.NewRowStaticFree(20)

	_, state := row.WidgetAt(40, 0, 30, 30)
	if state != gui.WidgetROM {
		t.Errorf("a rect straddling the clip edge should report WidgetROM, got %v", state)
	}
}

func TestRowWidgetFullyInsideClipIsValid(t *testing.T) {
	ctx := setupRowTest()
	ctx.DrawList.PushClipRect(0, 0, 200, 200)
	row := ctx.NewRowStaticFree(20)

	_, state := row.WidgetAt(10, 10, 30, 30)
	if state != gui.WidgetValid {
		t.Errorf("a rect fully inside the clip should report WidgetValid, got %v", state)
	}
}
