package gui

import "sync"

// cmdBufferPool recycles CommandBuffer/DrawList instances across frames,
// the same sync.Pool idiom the teacher used for its fused DrawList.
var cmdBufferPool = sync.Pool{
	New: func() any {
		return &DrawList{
			Commands:  make([]Command, 0, 256),
			clipStack: make([]Rect, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList (== CommandBuffer + its vertex-converted
// output) from the pool. Call ReleaseDrawList when done.
func AcquireDrawList() *DrawList {
	dl := cmdBufferPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		cmdBufferPool.Put(dl)
	}
}

// DrawList is the per-window (or overlay) Command Buffer region (§3, §4.2):
// an ordered sequence of Command values built by widget primitives through
// the push_scissor/stroke_*/fill_*/draw_text/draw_image operations below.
// Finalize runs the Vertex Converter (§4.7, vertexconv.go) over Commands to
// populate VtxBuffer/IdxBuffer/CmdBuffer, which is what Renderer
// implementations actually consume — keeping the Command Buffer and the
// Vertex Converter two separately walkable artifacts, as the overview
// diagram in §2 requires, rather than the single fused emission step the
// teacher's original drawlist.go performed.
type DrawList struct {
	Commands []Command

	VtxBuffer []Vertex
	IdxBuffer []uint16
	CmdBuffer []DrawCmd

	clipStack   []Rect
	currentClip Rect
	fontTexture uint32
}

// Clear resets the DrawList for a new frame, retaining capacity.
func (dl *DrawList) Clear() {
	dl.Commands = dl.Commands[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = Rect{X: -1e9, Y: -1e9, W: 2e9, H: 2e9}
}

// SetFontTexture tells the vertex converter which texture handle to use for
// CmdText/CmdImage commands bound to the font atlas.
func (dl *DrawList) SetFontTexture(tex uint32) { dl.fontTexture = tex }

// clipOK applies §4.2's drop-at-source contract: clipping-on and the
// command's AABB doesn't overlap the current clip.
func (dl *DrawList) clipOK(r Rect) bool {
	return dl.currentClip.Intersects(r)
}

// CurrentClip returns the active clip rectangle, for callers (row.go's
// panel-layout engine) that need to classify a widget rect against it
// rather than just dropping commands at draw time.
func (dl *DrawList) CurrentClip() Rect {
	return dl.currentClip
}

func (dl *DrawList) append(c Command) {
	c.ClipRect = dl.currentClip
	dl.Commands = append(dl.Commands, c)
}

// PushScissor narrows the current clip rectangle.
func (dl *DrawList) PushScissor(r Rect) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = r
	dl.append(newCommand(CmdScissor))
}

// PopScissor restores the previous clip rectangle.
func (dl *DrawList) PopScissor() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.append(newCommand(CmdScissor))
}

// Legacy aliases kept for the teacher-derived call sites (context.go,
// layout.go, widget_*.go) that predate the Command Buffer split.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.PushScissor(Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}
func (dl *DrawList) PopClipRect() { dl.PopScissor() }

func (dl *DrawList) SetTexture(textureID uint32) { dl.fontTexture = textureID }

func rectBounds(x, y, w, h float32) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// AddRect emits a FILL_RECT command (kept name for teacher-derived callers).
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	dl.FillRect(rectBounds(x, y, w, h), color)
}

// FillRect is the §4.2 fill_rect primitive.
func (dl *DrawList) FillRect(r Rect, color uint32) {
	if isColorTransparent(color) || isZeroRect(r) || !dl.clipOK(r) {
		return
	}
	c := newCommand(CmdRectFilled)
	c.P0 = Vec2{X: r.X, Y: r.Y}
	c.P1 = Vec2{X: r.W, Y: r.H}
	c.Color = color
	dl.append(c)
}

// StrokeRect is the §4.2 stroke_rect primitive.
func (dl *DrawList) StrokeRect(r Rect, color uint32, thickness float32) {
	if isColorTransparent(color) || isZeroRect(r) || !dl.clipOK(r) {
		return
	}
	c := newCommand(CmdRect)
	c.P0 = Vec2{X: r.X, Y: r.Y}
	c.P1 = Vec2{X: r.W, Y: r.H}
	c.Color = color
	c.Thickness = thickness
	dl.append(c)
}

// AddRectOutline kept for teacher-derived call sites.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	dl.StrokeRect(rectBounds(x, y, w, h), color, thickness)
}

// FillRectMultiColor emits a RECT_MULTI_COLOR command (corner gradient),
// used by the color picker's saturation/value matrix (§4.6).
func (dl *DrawList) FillRectMultiColor(r Rect, tl, tr, bl, br uint32) {
	if isZeroRect(r) || !dl.clipOK(r) {
		return
	}
	c := newCommand(CmdRectMultiColor)
	c.P0 = Vec2{X: r.X, Y: r.Y}
	c.P1 = Vec2{X: r.W, Y: r.H}
	c.ColorTL, c.ColorTR, c.ColorBL, c.ColorBR = tl, tr, bl, br
	dl.append(c)
}

// StrokeLine is the §4.2 stroke_line primitive.
func (dl *DrawList) StrokeLine(p0, p1 Vec2, color uint32, thickness float32) {
	if isColorTransparent(color) {
		return
	}
	c := newCommand(CmdLine)
	c.P0, c.P1, c.Color, c.Thickness = p0, p1, color, thickness
	dl.append(c)
}

// AddLine kept for teacher-derived call sites.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	dl.StrokeLine(Vec2{X: x1, Y: y1}, Vec2{X: x2, Y: y2}, color, thickness)
}

// FillTriangle / StrokeTriangle are the §4.2 fill_triangle/stroke_triangle.
func (dl *DrawList) FillTriangle(p0, p1, p2 Vec2, color uint32) {
	if isColorTransparent(color) {
		return
	}
	c := newCommand(CmdTriangleFilled)
	c.P0, c.P1, c.P2, c.Color = p0, p1, p2, color
	dl.append(c)
}

func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	dl.FillTriangle(Vec2{X: x1, Y: y1}, Vec2{X: x2, Y: y2}, Vec2{X: x3, Y: y3}, color)
}

// FillCircle / StrokeCircle / FillArc / StrokeArc are the §4.2 circle/arc
// primitives.
func (dl *DrawList) FillCircle(center Vec2, radius float32, color uint32, segments int) {
	if isColorTransparent(color) || radius <= 0 {
		return
	}
	c := newCommand(CmdCircleFilled)
	c.P0, c.Radius, c.Color, c.Segmented = center, radius, color, segments
	dl.append(c)
}

func (dl *DrawList) StrokeCircle(center Vec2, radius float32, color uint32, thickness float32, segments int) {
	if isColorTransparent(color) || radius <= 0 {
		return
	}
	c := newCommand(CmdCircle)
	c.P0, c.Radius, c.Color, c.Thickness, c.Segmented = center, radius, color, thickness, segments
	dl.append(c)
}

func (dl *DrawList) FillArc(center Vec2, radius, aMin, aMax float32, color uint32) {
	if isColorTransparent(color) || radius <= 0 {
		return
	}
	c := newCommand(CmdArcFilled)
	c.P0, c.Radius, c.AngleMin, c.AngleMax, c.Color = center, radius, aMin, aMax, color
	dl.append(c)
}

func (dl *DrawList) StrokeArc(center Vec2, radius, aMin, aMax float32, color uint32, thickness float32) {
	if isColorTransparent(color) || radius <= 0 {
		return
	}
	c := newCommand(CmdArc)
	c.P0, c.Radius, c.AngleMin, c.AngleMax, c.Color, c.Thickness = center, radius, aMin, aMax, color, thickness
	dl.append(c)
}

// FillPolygon / StrokePolygon / StrokePolyline are the §4.2 polygon/polyline
// primitives.
func (dl *DrawList) FillPolygon(points []Vec2, color uint32) {
	if isColorTransparent(color) || len(points) < 3 {
		return
	}
	c := newCommand(CmdPolygonFilled)
	c.Points, c.Color = append([]Vec2(nil), points...), color
	dl.append(c)
}

func (dl *DrawList) StrokePolygon(points []Vec2, color uint32, thickness float32) {
	if isColorTransparent(color) || len(points) < 3 {
		return
	}
	c := newCommand(CmdPolygon)
	c.Points, c.Color, c.Thickness = append([]Vec2(nil), points...), color, thickness
	dl.append(c)
}

func (dl *DrawList) StrokePolyline(points []Vec2, color uint32, thickness float32) {
	if isColorTransparent(color) || len(points) < 2 {
		return
	}
	c := newCommand(CmdPolyline)
	c.Points, c.Color, c.Thickness = append([]Vec2(nil), points...), color, thickness
	dl.append(c)
}

// DrawImage is the §4.2 draw_image primitive.
func (dl *DrawList) DrawImage(r Rect, imageHandle uint32, tint uint32) {
	if isZeroRect(r) || !dl.clipOK(r) {
		return
	}
	c := newCommand(CmdImage)
	c.P0 = Vec2{X: r.X, Y: r.Y}
	c.P1 = Vec2{X: r.W, Y: r.H}
	c.Image, c.TintColor = imageHandle, tint
	dl.append(c)
}

// DrawText is the §4.2 draw_text primitive: pre-measures against the
// Font's width callback, truncates at a glyph boundary (not mid-codepoint)
// if it overflows the rect, and emits a NUL-terminated-by-convention string.
func (dl *DrawList) DrawText(r Rect, text string, font Font, bg, fg uint32) {
	if len(text) == 0 || !dl.clipOK(r) {
		return
	}
	text = truncateToWidth(text, font, r.W)
	c := newCommand(CmdText)
	c.P0 = Vec2{X: r.X, Y: r.Y}
	c.P1 = Vec2{X: r.W, Y: r.H}
	c.Text, c.Font, c.BgColor, c.FgColor = text, font, bg, fg
	dl.append(c)
}

// truncateToWidth drops trailing runes until the string measures within
// maxWidth, stopping at a rune boundary per §4.2.
func truncateToWidth(text string, font Font, maxWidth float32) string {
	if font == nil || maxWidth <= 0 {
		return text
	}
	if font.MeasureText(text, 1).X <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if font.MeasureText(string(runes), 1).X <= maxWidth {
			break
		}
	}
	return string(runes)
}

// AddText/AddGlyphQuads/InsertRect retained for teacher-derived call sites
// that drew directly rather than through a Font. AddText emits a CmdText
// with no Font and no UVs, which the vertex converter does not draw;
// AddGlyphQuads emits one CmdImage per glyph quad on the font texture, with
// its UVs in P2/P3; InsertRect emits a CmdRectFilled.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, fontScale float32, charWidth, charHeight float32) {
	if isColorTransparent(color) || len(text) == 0 {
		return
	}
	c := newCommand(CmdText)
	c.P0 = Vec2{X: x, Y: y}
	c.P1 = Vec2{X: charWidth * fontScale, Y: charHeight * fontScale}
	c.Text, c.FgColor = text, color
	dl.append(c)
}

func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if isColorTransparent(color) || len(quads) == 0 {
		return
	}
	for _, q := range quads {
		c := newCommand(CmdImage)
		c.P0 = Vec2{X: q.X0, Y: q.Y0}
		c.P1 = Vec2{X: q.X1 - q.X0, Y: q.Y1 - q.Y0}
		c.FgColor = color
		c.Image = dl.fontTexture
		c.TintColor = color
		// Carry raw UVs through P2/P3 for the vertex converter's glyph path.
		c.P2 = Vec2{X: q.U0, Y: q.V0}
		c.P3 = Vec2{X: q.U1, Y: q.V1}
		dl.append(c)
	}
}

// InsertRect is kept for the teacher's draw-background-after-content idiom;
// it puts the rect at the front of Commands, so it is drawn before every
// command recorded so far. It also sets Handle=1, which nothing reads.
func (dl *DrawList) InsertRect(x, y, w, h float32, color uint32) {
	if isColorTransparent(color) {
		return
	}
	c := newCommand(CmdRectFilled)
	c.P0 = Vec2{X: x, Y: y}
	c.P1 = Vec2{X: w, Y: h}
	c.Color = color
	c.Handle = 1
	c.ClipRect = dl.currentClip
	dl.Commands = append([]Command{c}, dl.Commands...)
}

// Finalize runs the Vertex Converter over the recorded Commands, producing
// VtxBuffer/IdxBuffer/CmdBuffer for the Renderer (§4.7).
func (dl *DrawList) Finalize() {
	conv := DefaultVertexConverter()
	conv.Convert(dl.Commands, dl)
}
