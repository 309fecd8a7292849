package gui

import "fmt"

// ChartKind selects how a chart slot renders its pushed values (§4.6 Chart).
type ChartKind int

const (
	ChartLines ChartKind = iota
	ChartColumn
)

// ChartFlags is the bit mask chart_push[_slot] returns for the pushed point.
type ChartFlags uint32

const (
	ChartHovering ChartFlags = 1 << iota
	ChartClicked
)

const maxChartSlots = 4

// chartSlotState tracks one data series across the chart_push calls inside
// a single ChartBegin/ChartEnd block. Grounded on the teacher's GraphData/
// GraphState split, collapsed into one struct since a chart slot's range
// and cursor are both transient, scoped to the current frame's block.
type chartSlotState struct {
	kind       ChartKind
	color      uint32
	label      string
	min, max   float32
	count      int // expected number of points; below 1 is treated as 1 when spacing X
	index      int // points pushed so far
	lastX      float32
	lastY      float32
	hasLast    bool
}

// chartState is the transient per-frame block opened by ChartBegin and
// closed by ChartEnd; ctx.chart is nil outside a chart block.
type chartState struct {
	id        ID
	bounds    Rect
	gridLines int
	legend    bool
	slots     [maxChartSlots]chartSlotState
	slotCount int
}

// ChartBegin opens a chart block with one slot (§4.6 chart_begin) and draws
// its background, optional grid lines and border. count is the number of
// points the caller intends to push this frame: point i sits at i/count of
// the chart width. A count below 1 is treated as 1, so every point after
// the first lands at or past the right edge; there is no fallback spacing.
// Returns false if the chart has no usable area (caller should still call
// ChartEnd to keep the begin/end pairing symmetric, matching row.tree_depth
// style invariants elsewhere in the panel engine).
func (ctx *Context) ChartBegin(id string, kind ChartKind, count int, minVal, maxVal float32, opts ...Option) bool {
	o := applyOptions(opts)

	pos := ctx.ItemPos()
	w := ctx.currentLayoutWidth()
	if width := GetOpt(o, OptWidth); width > 0 {
		w = width
	}
	h := GetOpt(o, OptHeight)
	if h <= 0 {
		h = 100
	}

	ctx.chart = &chartState{
		id:        ctx.GetID(id),
		bounds:    Rect{X: pos.X, Y: pos.Y, W: w, H: h},
		gridLines: GetOpt(o, OptChartGridLines),
		legend:    GetOpt(o, OptChartLegend),
	}

	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.InputBgColor)
	if ctx.chart.gridLines > 0 {
		gridColor := RGBA(80, 80, 80, 100)
		for i := 0; i <= ctx.chart.gridLines; i++ {
			y := pos.Y + h*float32(i)/float32(ctx.chart.gridLines)
			ctx.DrawList.AddLine(pos.X, y, pos.X+w, y, gridColor, 1)
		}
	}

	ctx.ChartAddSlot(kind, count, minVal, maxVal, opts...)
	return w > 0 && h > 0
}

// ChartAddSlot adds an additional data series to the current chart block
// (§4.6 chart_add_slot), up to maxChartSlots. Returns the slot index to
// pass to ChartPushSlot, or -1 if the chart isn't open or is full.
func (ctx *Context) ChartAddSlot(kind ChartKind, count int, minVal, maxVal float32, opts ...Option) int {
	if ctx.chart == nil || ctx.chart.slotCount >= maxChartSlots {
		return -1
	}
	o := applyOptions(opts)
	color := GetOpt(o, OptChartColor)
	if color == 0 {
		color = defaultChartColor(ctx.chart.slotCount)
	}

	idx := ctx.chart.slotCount
	ctx.chart.slotCount++
	ctx.chart.slots[idx] = chartSlotState{
		kind:  kind,
		color: color,
		label: GetOpt(o, OptChartLabel),
		min:   minVal,
		max:   maxVal,
		count: count,
	}
	if ctx.chart.legend && ctx.chart.slots[idx].label != "" {
		ctx.drawChartLegendEntry(idx)
	}
	return idx
}

// ChartPush pushes one value into slot 0 of the current chart block
// (§4.6 chart_push) and returns HOVERING/CLICKED for the plotted point.
func (ctx *Context) ChartPush(value float32) ChartFlags {
	return ctx.ChartPushSlot(value, 0)
}

// ChartPushSlot pushes one value into the given slot (§4.6 chart_push_slot),
// drawing the incremental line segment or column and testing the point
// against the mouse for hover/click.
func (ctx *Context) ChartPushSlot(value float32, slot int) ChartFlags {
	if ctx.chart == nil || slot < 0 || slot >= ctx.chart.slotCount {
		return 0
	}
	s := &ctx.chart.slots[slot]
	b := ctx.chart.bounds

	span := s.count
	if span < 1 {
		span = 1
	}
	x := b.X + b.W*float32(s.index)/float32(span)

	valRange := s.max - s.min
	if valRange == 0 {
		valRange = 1
	}
	t := (value - s.min) / valRange
	y := b.Y + b.H*(1-clamp01(t))

	var flags ChartFlags
	pointRect := Rect{X: x - 3, Y: y - 3, W: 6, H: 6}
	if ctx.Input != nil && !ctx.IsReadOnly() && pointRect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
		flags |= ChartHovering
		if ctx.Input.MouseClicked(MouseButtonLeft) {
			flags |= ChartClicked
		}
		ctx.DrawList.AddLine(x, b.Y, x, b.Y+b.H, RGBA(255, 255, 255, 100), 1)
		tooltip := s.label
		if tooltip == "" {
			tooltip = fmt.Sprintf("slot %d", slot)
		}
		ctx.drawChartTooltip(ctx.Input.MouseX+10, ctx.Input.MouseY-20, fmt.Sprintf("%s: %.2f", tooltip, value))
	}

	switch s.kind {
	case ChartColumn:
		colW := b.W / float32(span)
		ctx.DrawList.AddRect(x-colW/2, y, colW*0.8, b.Y+b.H-y, s.color)
	default: // ChartLines
		if s.hasLast {
			ctx.DrawList.AddLine(s.lastX, s.lastY, x, y, s.color, 1.5)
		}
	}
	s.lastX, s.lastY = x, y
	s.hasLast = true
	s.index++

	return flags
}

// ChartEnd closes the current chart block (§4.6 chart_end), draws the
// outer border and advances the layout cursor past the chart's bounds.
func (ctx *Context) ChartEnd() {
	if ctx.chart == nil {
		return
	}
	b := ctx.chart.bounds
	ctx.DrawList.AddRectOutline(b.X, b.Y, b.W, b.H, ctx.style.BorderColor, 1)
	ctx.chart = nil
	ctx.advanceCursor(Vec2{b.W, b.H})
}

func (ctx *Context) drawChartLegendEntry(slot int) {
	s := &ctx.chart.slots[slot]
	b := ctx.chart.bounds
	y := b.Y + 4 + float32(slot)*ctx.lineHeight()
	ctx.DrawList.AddRect(b.X+4, y+2, 8, 8, s.color)
	ctx.addText(b.X+16, y, s.label, ctx.style.TextColor)
}

func (ctx *Context) drawChartTooltip(x, y float32, line string) {
	w := ctx.MeasureText(line).X
	padding := float32(4)
	tw := w + padding*2
	th := ctx.lineHeight() + padding*2
	if x+tw > ctx.DisplaySize.X {
		x = ctx.DisplaySize.X - tw
	}
	if y < 0 {
		y = 0
	}
	ctx.DrawList.AddRect(x, y, tw, th, ctx.style.PanelColor)
	ctx.DrawList.AddRectOutline(x, y, tw, th, ctx.style.PanelBorderColor, 1)
	ctx.addText(x+padding, y+padding, line, ctx.style.TextColor)
}

func defaultChartColor(slot int) uint32 {
	palette := [maxChartSlots]uint32{
		RGBA(100, 200, 100, 255),
		RGBA(100, 150, 240, 255),
		RGBA(240, 200, 80, 255),
		RGBA(220, 100, 100, 255),
	}
	return palette[slot%len(palette)]
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
