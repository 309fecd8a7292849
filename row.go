package gui

// RowKind is the closed set of panel row layouts (§4.5's nine row-layout
// kinds table). Each kind answers the same question — "given the next
// widget call, what Rect does it get?" — with a different geometry rule.
// This generalizes layout.go's two-mode (Vertical/Horizontal) Layout into
// the full row-layout table the panel engine needs; VStack/HStack/Panel
// keep using the simpler Layout for their own bookkeeping; RowLayout is
// the spec-faithful engine new widget code should call into directly.
type RowKind int

const (
	RowDynamicFixed RowKind = iota // N equal-ratio columns, fixed column count
	RowDynamicRow                  // one ratio-sized item per call; every call returns the same rect
	RowDynamicFree                 // free placement, position/size given as 0..1 ratios of row bounds
	RowDynamic                     // per-column explicit ratios supplied up front
	RowStaticFixed                 // N equal fixed-pixel-width columns, fixed column count
	RowStaticRow                   // one fixed-pixel-width item per call; every call returns the same rect
	RowStaticFree                  // free placement, position/size given as absolute pixels
	RowStatic                      // per-column explicit pixel widths supplied up front
	RowTemplate                    // per-column TemplateColumn list (static/variable/dynamic), engine resolves widths
)

// TemplateColumnKind is one of §4.5's three TEMPLATE column kinds: dynamic
// (ratio -1 in the spec's encoding), variable (negative pixel min-width),
// or static (positive pixel width). Modeled as an explicit field rather
// than a sentinel-encoded float, since Go has no reason to pack three
// kinds into one number the way the spec's underlying C array does.
type TemplateColumnKind int

const (
	TemplateStatic   TemplateColumnKind = iota // fixed pixel width, taken off the top
	TemplateVariable                           // minimum pixel width; stretches to fill when nothing else claims the leftover
	TemplateDynamic                            // no minimum; splits whatever's left equally among dynamic columns
)

// TemplateColumn is one column's sizing rule for RowTemplate (§4.5's
// "template array" row kind).
type TemplateColumn struct {
	Kind TemplateColumnKind
	// Width is the exact pixel width for TemplateStatic, or the minimum
	// pixel width for TemplateVariable. Unused for TemplateDynamic.
	Width float32
}

// WidgetLayoutState is the tri-state result of the widget(out_rect)
// operation (§4.5): whether the caller should draw at all, and if so,
// whether it is visible-but-non-interactive.
type WidgetLayoutState int

const (
	WidgetInvalid WidgetLayoutState = iota // fully clipped; skip drawing
	WidgetROM                              // visible but read-only: the rect lies only partly inside the clip
	WidgetValid                            // visible and interactive
)

// RowLayout drives one "row" of a panel: a sequence of widget(out_rect)
// calls that hand back rectangles according to the active RowKind, the
// index-based successor to layout.go's Layout for widgets that need the
// spec's exact column math (ratio columns, template columns, free
// placement) rather than the simpler VStack/HStack gap-and-stack model.
type RowLayout struct {
	Kind   RowKind
	Bounds Rect // full row bounds: X,Y is the row's top-left, W is available width, H is row height
	Clip   Rect // the panel's active clip rect at the time the row was started, for state()'s INVALID/ROM/VALID test

	ratios   []float32        // RowDynamic / one ratio per column
	widths   []float32        // RowStatic / one pixel width per column
	template []TemplateColumn // RowTemplate columns

	columns  int     // RowDynamicFixed / RowStaticFixed column count
	itemSize float32 // RowDynamicRow / RowStaticRow: ratio or pixel width per item

	col    int     // current column index within the row
	cursor float32 // running X offset from Bounds.X
}

// NewRowDynamicFixed starts a row of `columns` equal-width columns that
// share the row's width proportionally (§4.5 "row_dynamic"), and makes it
// the active row: the next `columns` widget submissions on ctx (Button,
// Checkbox, ...) take their rect from this row instead of the cursor
// layout, until a fresh NewRow* call replaces it.
func (ctx *Context) NewRowDynamicFixed(height float32, columns int) *RowLayout {
	rl := &RowLayout{Kind: RowDynamicFixed, Bounds: ctx.rowBounds(height), Clip: ctx.rowClip(), columns: columns}
	ctx.currentRow = rl
	return rl
}

// NewRowStaticFixed starts a row of `columns` equal fixed-pixel-width
// columns (§4.5 "row_static") and makes it the active row.
func (ctx *Context) NewRowStaticFixed(height float32, itemWidth float32, columns int) *RowLayout {
	rl := &RowLayout{Kind: RowStaticFixed, Bounds: ctx.rowBounds(height), Clip: ctx.rowClip(), columns: columns, itemSize: itemWidth}
	ctx.currentRow = rl
	return rl
}

// NewRowDynamicRow starts a row where every widget() call occupies the
// full row width (§4.5 "row_dynamic single-item" mode, ratio 1.0 implied),
// and makes it the active row. Every call returns the same rect; the row
// does not move down to a fresh row.
func (ctx *Context) NewRowDynamicRow(height float32) *RowLayout {
	rl := &RowLayout{Kind: RowDynamicRow, Bounds: ctx.rowBounds(height), Clip: ctx.rowClip(), itemSize: 1.0}
	ctx.currentRow = rl
	return rl
}

// NewRowStaticRow starts a row where every widget() call is itemWidth
// pixels wide, and makes it the active row. Every call returns the same
// rect at the row's left edge; the row does not advance.
func (ctx *Context) NewRowStaticRow(height, itemWidth float32) *RowLayout {
	rl := &RowLayout{Kind: RowStaticRow, Bounds: ctx.rowBounds(height), Clip: ctx.rowClip(), itemSize: itemWidth}
	ctx.currentRow = rl
	return rl
}

// NewRowDynamic starts a row with explicit per-column ratios (§4.5
// "row(array-based)" dynamic variant) and makes it the active row. A
// negative entry does not give its column a negative width; per §4.5's
// DYNAMIC rule, every negative entry is resolved up front into an equal
// share of whatever fraction of the row the positive entries didn't claim
// (1.0 minus their sum, split evenly across the negative entries).
func (ctx *Context) NewRowDynamic(height float32, ratios []float32) *RowLayout {
	rl := &RowLayout{Kind: RowDynamic, Bounds: ctx.rowBounds(height), Clip: ctx.rowClip(), ratios: append([]float32(nil), ratios...)}
	rl.resolveNegativeRatios()
	ctx.currentRow = rl
	return rl
}

// resolveNegativeRatios implements §4.5 DYNAMIC's "a negative ratio in the
// array means split remaining space equally among negative entries":
// overwrite every negative entry with (1 - sum of the positive entries) /
// (count of negative entries), once, at construction time.
func (rl *RowLayout) resolveNegativeRatios() {
	var posSum float32
	var negCount int
	for _, r := range rl.ratios {
		if r < 0 {
			negCount++
		} else {
			posSum += r
		}
	}
	if negCount == 0 {
		return
	}
	share := maxf(0, 1-posSum) / float32(negCount)
	for i, r := range rl.ratios {
		if r < 0 {
			rl.ratios[i] = share
		}
	}
}

// NewRowStatic starts a row with explicit per-column pixel widths and
// makes it the active row.
func (ctx *Context) NewRowStatic(height float32, widths []float32) *RowLayout {
	rl := &RowLayout{Kind: RowStatic, Bounds: ctx.rowBounds(height), Clip: ctx.rowClip(), widths: append([]float32(nil), widths...)}
	ctx.currentRow = rl
	return rl
}

// NewRowTemplate starts a row using the template column resolver (§4.5
// "row(template)") and makes it the active row: static columns get their
// exact width off the top, variable columns are guaranteed at least their
// minimum, and dynamic columns split whatever's left. See resolveTemplate
// for the exact two-branch rule.
func (ctx *Context) NewRowTemplate(height float32, cols []TemplateColumn) *RowLayout {
	rl := &RowLayout{Kind: RowTemplate, Bounds: ctx.rowBounds(height), Clip: ctx.rowClip(), template: append([]TemplateColumn(nil), cols...)}
	ctx.currentRow = rl
	return rl
}

// NewRowDynamicFree starts a row for absolute (ratio-positioned) widget
// placement and makes it the active row; callers pass position/size as
// 0..1 fractions of Bounds to Widget (via WidgetAt) rather than calling
// the column-advancing Widget.
func (ctx *Context) NewRowDynamicFree(height float32) *RowLayout {
	rl := &RowLayout{Kind: RowDynamicFree, Bounds: ctx.rowBounds(height), Clip: ctx.rowClip()}
	ctx.currentRow = rl
	return rl
}

// NewRowStaticFree is the pixel-coordinate counterpart of
// NewRowDynamicFree, and likewise makes itself the active row.
func (ctx *Context) NewRowStaticFree(height float32) *RowLayout {
	rl := &RowLayout{Kind: RowStaticFree, Bounds: ctx.rowBounds(height), Clip: ctx.rowClip()}
	ctx.currentRow = rl
	return rl
}

func (ctx *Context) rowBounds(height float32) Rect {
	return Rect{X: ctx.cursor.X, Y: ctx.cursor.Y, W: ctx.currentLayoutWidth(), H: height}
}

// rowClip returns the panel's active clip rect, for state()'s
// INVALID/ROM/VALID test against the row's widgets.
func (ctx *Context) rowClip() Rect {
	if ctx.DrawList == nil {
		return Rect{X: -1e9, Y: -1e9, W: 2e9, H: 2e9}
	}
	return ctx.DrawList.CurrentClip()
}

// resolveTemplate computes each template column's resolved pixel width,
// implementing §4.5 template_end's two steps: "(a) summing fixed widths,
// (b) dividing remaining space among variables if there is enough for each
// variable's minimum, else dividing among dynamics-only."
//
// Static columns are taken off the top first. Then: if what's left covers
// every variable column's minimum, each variable gets exactly its minimum
// and dynamic columns split the leftover evenly (a variable's "stretches
// to fill" only kicks in when there are no dynamic columns to claim that
// leftover instead). If what's left does NOT cover every variable's
// minimum, variables are squeezed out entirely (width 0) and the leftover
// is divided evenly among dynamic columns only.
func (rl *RowLayout) resolveTemplate() []float32 {
	widths := make([]float32, len(rl.template))

	var staticSum, variableMinSum float32
	var dynamicCount, variableCount int
	for _, c := range rl.template {
		switch c.Kind {
		case TemplateStatic:
			staticSum += c.Width
		case TemplateVariable:
			variableMinSum += c.Width
			variableCount++
		case TemplateDynamic:
			dynamicCount++
		}
	}

	remaining := maxf(0, rl.Bounds.W-staticSum)

	if variableCount > 0 && remaining >= variableMinSum {
		leftover := remaining - variableMinSum
		dynamicWidth := float32(0)
		switch {
		case dynamicCount > 0:
			dynamicWidth = leftover / float32(dynamicCount)
		case variableCount > 0:
			// No dynamic columns to claim the leftover: variables stretch
			// to fill it, proportional to their own minimum.
			for i, c := range rl.template {
				if c.Kind == TemplateVariable {
					widths[i] = c.Width + leftover*(c.Width/variableMinSum)
				}
			}
		}
		for i, c := range rl.template {
			switch c.Kind {
			case TemplateStatic:
				widths[i] = c.Width
			case TemplateVariable:
				if dynamicCount > 0 {
					widths[i] = c.Width
				}
			case TemplateDynamic:
				widths[i] = dynamicWidth
			}
		}
		return widths
	}

	// Not enough room for every variable's minimum: variables get nothing,
	// dynamics split the (insufficient) remainder among themselves.
	dynamicWidth := float32(0)
	if dynamicCount > 0 {
		dynamicWidth = remaining / float32(dynamicCount)
	}
	for i, c := range rl.template {
		switch c.Kind {
		case TemplateStatic:
			widths[i] = c.Width
		case TemplateDynamic:
			widths[i] = dynamicWidth
		}
	}
	return widths
}

// Widget implements §4.5's widget(out_rect) operation for column-advancing
// row kinds: it returns the rect for the next widget and advances the
// internal column cursor. It never wraps to a new row: RowDynamicFixed and
// RowStaticFixed keep placing rects further right past their column count,
// RowDynamic, RowStatic and RowTemplate return WidgetInvalid once their
// columns are used up, and RowDynamicRow/RowStaticRow return the same rect
// on every call.
func (rl *RowLayout) Widget() (Rect, WidgetLayoutState) {
	switch rl.Kind {
	case RowDynamicFixed:
		if rl.columns <= 0 {
			return Rect{}, WidgetInvalid
		}
		w := rl.Bounds.W / float32(rl.columns)
		r := Rect{X: rl.Bounds.X + rl.cursor, Y: rl.Bounds.Y, W: w, H: rl.Bounds.H}
		rl.cursor += w
		rl.col++
		return r, rl.state(r)
	case RowStaticFixed:
		r := Rect{X: rl.Bounds.X + rl.cursor, Y: rl.Bounds.Y, W: rl.itemSize, H: rl.Bounds.H}
		rl.cursor += rl.itemSize
		rl.col++
		return r, rl.state(r)
	case RowDynamicRow:
		r := Rect{X: rl.Bounds.X, Y: rl.Bounds.Y, W: rl.Bounds.W * rl.itemSize, H: rl.Bounds.H}
		return r, rl.state(r)
	case RowStaticRow:
		r := Rect{X: rl.Bounds.X, Y: rl.Bounds.Y, W: rl.itemSize, H: rl.Bounds.H}
		return r, rl.state(r)
	case RowDynamic:
		if rl.col >= len(rl.ratios) {
			return Rect{}, WidgetInvalid
		}
		w := rl.Bounds.W * rl.ratios[rl.col]
		r := Rect{X: rl.Bounds.X + rl.cursor, Y: rl.Bounds.Y, W: w, H: rl.Bounds.H}
		rl.cursor += w
		rl.col++
		return r, rl.state(r)
	case RowStatic:
		if rl.col >= len(rl.widths) {
			return Rect{}, WidgetInvalid
		}
		w := rl.widths[rl.col]
		r := Rect{X: rl.Bounds.X + rl.cursor, Y: rl.Bounds.Y, W: w, H: rl.Bounds.H}
		rl.cursor += w
		rl.col++
		return r, rl.state(r)
	case RowTemplate:
		widths := rl.resolveTemplate()
		if rl.col >= len(widths) {
			return Rect{}, WidgetInvalid
		}
		w := widths[rl.col]
		r := Rect{X: rl.Bounds.X + rl.cursor, Y: rl.Bounds.Y, W: w, H: rl.Bounds.H}
		rl.cursor += w
		rl.col++
		return r, rl.state(r)
	default:
		return Rect{}, WidgetInvalid
	}
}

// WidgetAt implements widget(out_rect) for the two free-placement row
// kinds: x,y,w,h are 0..1 ratios of Bounds for RowDynamicFree, or absolute
// pixels relative to Bounds.X/Y for RowStaticFree.
func (rl *RowLayout) WidgetAt(x, y, w, h float32) (Rect, WidgetLayoutState) {
	var r Rect
	switch rl.Kind {
	case RowDynamicFree:
		r = Rect{
			X: rl.Bounds.X + x*rl.Bounds.W,
			Y: rl.Bounds.Y + y*rl.Bounds.H,
			W: w * rl.Bounds.W,
			H: h * rl.Bounds.H,
		}
	case RowStaticFree:
		r = Rect{X: rl.Bounds.X + x, Y: rl.Bounds.Y + y, W: w, H: h}
	default:
		return Rect{}, WidgetInvalid
	}
	return r, rl.state(r)
}

// nextRowRect is how widget code (Button, and any future widget that wants
// §4.5 row geometry instead of the cursor/text-measurement path) asks "is
// there an active row, and if so what's my rect?" It returns ok=false when
// no NewRow* call is active, so the caller can fall back to its own
// ItemPos()-based sizing unchanged. RowDynamicFree/RowStaticFree are
// excluded because those kinds need explicit x/y/w/h from the caller via
// WidgetAt, not an auto-advancing Widget() call.
func (ctx *Context) nextRowRect() (Rect, WidgetLayoutState, bool) {
	rl := ctx.currentRow
	if rl == nil || rl.Kind == RowDynamicFree || rl.Kind == RowStaticFree {
		return Rect{}, WidgetInvalid, false
	}
	r, state := rl.Widget()
	return r, state, true
}

// state implements §4.5's widget(out_rect) tri-state against rl.Clip (the
// panel's clip rect at row-start): a zero-area rect, or one that doesn't
// overlap the clip at all, is INVALID (completely outside clip, skip
// drawing); one that overlaps only partially is ROM (partially visible —
// may be drawn but not updated, so §4.6's widgets must treat it as
// read-only); one fully contained in the clip is VALID. ReadOnly windows
// separately downgrade VALID to read-only via ctx.currentWindow in the
// widget layer (see window.go's WindowReadOnly flag) — that is a
// window-level policy, not a clipping fact, so it stays out of this rect
// math.
func (rl *RowLayout) state(r Rect) WidgetLayoutState {
	if r.W <= 0 || r.H <= 0 {
		return WidgetInvalid
	}
	if _, ok := r.Intersection(rl.Clip); !ok {
		return WidgetInvalid
	}
	c := rl.Clip
	if r.X < c.X || r.Y < c.Y || r.X+r.W > c.X+c.W || r.Y+r.H > c.Y+c.H {
		return WidgetROM
	}
	return WidgetValid
}
