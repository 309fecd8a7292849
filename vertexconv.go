package gui

// GlyphQuad represents a single character's rendering quad, produced by a
// Font's GetGlyphQuads and consumed by the Vertex Converter's text path.
type GlyphQuad struct {
	X0, Y0 float32
	X1, Y1 float32
	U0, V0 float32
	U1, V1 float32
}

// VertexAttribute is one element of a configurable §4.7 vertex_layout.
type VertexAttribute int

const (
	AttrPosition VertexAttribute = iota
	AttrColor
	AttrTexCoord
)

// VertexFormat is the numeric encoding of one vertex_layout element.
type VertexFormat int

const (
	FormatFloat VertexFormat = iota
	FormatUChar
	FormatUShort
	FormatUInt
	FormatRGBA32Packed
)

// VertexLayoutElem is one {attribute, format, byte_offset} triple; a
// layout is a slice of them, delimited by the slice length (no sentinel).
type VertexLayoutElem struct {
	Attribute VertexAttribute
	Format    VertexFormat
	Offset    int
}

// DefaultVertexLayout matches the fixed Vertex struct in types.go: position
// (2 floats), texcoord (2 floats), color (packed RGBA32).
func DefaultVertexLayout() []VertexLayoutElem {
	return []VertexLayoutElem{
		{AttrPosition, FormatFloat, 0},
		{AttrTexCoord, FormatFloat, 8},
		{AttrColor, FormatRGBA32Packed, 16},
	}
}

const aaFringeSize float32 = 1.0

// VertexConverter walks a Command list and emits triangles into a
// vertex/index buffer, batching consecutive commands that share
// (clip-rect, texture) into one DrawCmd batch (§4.7). This is
// deliberately a separate pass from CommandBuffer/DrawList's recording
// API (commandbuffer.go) — the architectural split Design Notes §9 and
// the §2 overview diagram call for between "the command list" and "the
// triangle mesh".
type VertexConverter struct {
	VertexLayout       []VertexLayoutElem
	ShapeAA            bool
	LineAA             bool
	CircleSegments     int
	ArcSegments        int
	CurveSegments      int
	fallbackFontTex    uint32
}

// DefaultVertexConverter matches §4.7's stated defaults: AA on, 22 segments
// for circle/arc/curve.
func DefaultVertexConverter() *VertexConverter {
	return &VertexConverter{
		VertexLayout:   DefaultVertexLayout(),
		ShapeAA:        true,
		LineAA:         true,
		CircleSegments: 22,
		ArcSegments:    22,
		CurveSegments:  22,
	}
}

// batch accumulates vertices/indices for one (clip, texture) run.
type vcBatch struct {
	clip    Rect
	texture uint32
	vtx     []Vertex
	idx     []uint16
}

// Convert walks cmds in emission order and populates dl.VtxBuffer,
// dl.IdxBuffer and dl.CmdBuffer, consecutive-batching by (ClipRect,
// texture handle) per §4.7.
func (vc *VertexConverter) Convert(cmds []Command, dl *DrawList) {
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.CmdBuffer = dl.CmdBuffer[:0]

	var cur *vcBatch
	flush := func() {
		if cur == nil || len(cur.idx) == 0 {
			return
		}
		vOff := uint32(len(dl.VtxBuffer))
		iOff := uint32(len(dl.IdxBuffer))
		dl.VtxBuffer = append(dl.VtxBuffer, cur.vtx...)
		dl.IdxBuffer = append(dl.IdxBuffer, cur.idx...)
		dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
			ElemCount:    uint32(len(cur.idx)),
			ClipRect:     [4]float32{cur.clip.X, cur.clip.Y, cur.clip.X + cur.clip.W, cur.clip.Y + cur.clip.H},
			TextureID:    cur.texture,
			VertexOffset: vOff,
			IndexOffset:  iOff,
		})
	}

	for _, c := range cmds {
		tex := vc.textureOf(c)
		if cur == nil || cur.clip != c.ClipRect || cur.texture != tex {
			flush()
			cur = &vcBatch{clip: c.ClipRect, texture: tex}
		}
		vc.emit(cur, c)
	}
	flush()
}

func (vc *VertexConverter) textureOf(c Command) uint32 {
	switch c.Kind {
	case CmdImage:
		return c.Image
	case CmdText:
		if c.Font != nil {
			return c.Font.TextureID()
		}
		return vc.fallbackFontTex
	default:
		return 0
	}
}

func (b *vcBatch) quad(p0, p1, uv0, uv1 Vec2, color uint32) {
	start := uint16(len(b.vtx))
	b.vtx = append(b.vtx,
		Vertex{Pos: [2]float32{p0.X, p0.Y}, TexCoord: [2]float32{uv0.X, uv0.Y}, Color: color},
		Vertex{Pos: [2]float32{p1.X, p0.Y}, TexCoord: [2]float32{uv1.X, uv0.Y}, Color: color},
		Vertex{Pos: [2]float32{p1.X, p1.Y}, TexCoord: [2]float32{uv1.X, uv1.Y}, Color: color},
		Vertex{Pos: [2]float32{p0.X, p1.Y}, TexCoord: [2]float32{uv0.X, uv1.Y}, Color: color},
	)
	b.idx = append(b.idx, start, start+1, start+2, start, start+2, start+3)
}

func (b *vcBatch) triangle(p0, p1, p2 Vec2, color uint32) {
	start := uint16(len(b.vtx))
	b.vtx = append(b.vtx,
		Vertex{Pos: [2]float32{p0.X, p0.Y}, Color: color},
		Vertex{Pos: [2]float32{p1.X, p1.Y}, Color: color},
		Vertex{Pos: [2]float32{p2.X, p2.Y}, Color: color},
	)
	b.idx = append(b.idx, start, start+1, start+2)
}

func (vc *VertexConverter) emit(b *vcBatch, c Command) {
	switch c.Kind {
	case CmdNOP, CmdScissor:
		// no geometry
	case CmdRectFilled:
		b.quad(c.P0, c.P0.Add(c.P1), Vec2{}, Vec2{}, c.Color)
	case CmdRectMultiColor:
		vc.emitRectMultiColor(b, c)
	case CmdRect:
		vc.emitRectOutline(b, c)
	case CmdLine:
		vc.emitLine(b, c)
	case CmdTriangleFilled:
		b.triangle(c.P0, c.P1, c.P2, c.Color)
	case CmdTriangle:
		vc.emitPolylineStroke(b, []Vec2{c.P0, c.P1, c.P2, c.P0}, c.Color, c.Thickness)
	case CmdCircleFilled:
		vc.emitCircleFilled(b, c)
	case CmdCircle:
		vc.emitCircleStroke(b, c)
	case CmdArcFilled, CmdArc:
		vc.emitArc(b, c)
	case CmdPolygonFilled:
		vc.emitPolygonFilled(b, c)
	case CmdPolygon:
		pts := append(append([]Vec2(nil), c.Points...), c.Points[0])
		vc.emitPolylineStroke(b, pts, c.Color, c.Thickness)
	case CmdPolyline:
		vc.emitPolylineStroke(b, c.Points, c.Color, c.Thickness)
	case CmdText:
		vc.emitText(b, c)
	case CmdImage:
		uv0 := c.P2
		uv1 := c.P3
		if uv0 == (Vec2{}) && uv1 == (Vec2{}) {
			uv1 = Vec2{X: 1, Y: 1}
		}
		color := c.TintColor
		if color == 0 {
			color = ColorWhite
		}
		b.quad(c.P0, c.P0.Add(c.P1), uv0, uv1, color)
	}
}

func (vc *VertexConverter) emitRectMultiColor(b *vcBatch, c Command) {
	p0, p1 := c.P0, c.P0.Add(c.P1)
	start := uint16(len(b.vtx))
	b.vtx = append(b.vtx,
		Vertex{Pos: [2]float32{p0.X, p0.Y}, Color: c.ColorTL},
		Vertex{Pos: [2]float32{p1.X, p0.Y}, Color: c.ColorTR},
		Vertex{Pos: [2]float32{p1.X, p1.Y}, Color: c.ColorBR},
		Vertex{Pos: [2]float32{p0.X, p1.Y}, Color: c.ColorBL},
	)
	b.idx = append(b.idx, start, start+1, start+2, start, start+2, start+3)
}

func (vc *VertexConverter) emitRectOutline(b *vcBatch, c Command) {
	x, y, w, h := c.P0.X, c.P0.Y, c.P1.X, c.P1.Y
	t := c.Thickness
	if t <= 0 {
		t = 1
	}
	b.quad(Vec2{X: x, Y: y}, Vec2{X: x + w, Y: y + t}, Vec2{}, Vec2{}, c.Color)
	b.quad(Vec2{X: x, Y: y + h - t}, Vec2{X: x + w, Y: y + h}, Vec2{}, Vec2{}, c.Color)
	b.quad(Vec2{X: x, Y: y + t}, Vec2{X: x + t, Y: y + h - t}, Vec2{}, Vec2{}, c.Color)
	b.quad(Vec2{X: x + w - t, Y: y + t}, Vec2{X: x + w, Y: y + h - t}, Vec2{}, Vec2{}, c.Color)
	if vc.ShapeAA {
		vc.emitFringe(b, []Vec2{
			{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h},
		}, c.Color)
	}
}

// emitFringe draws a 1px transparent outer ring around a convex polygon,
// the "inner solid + outer fringe" AA technique of §4.7.
func (vc *VertexConverter) emitFringe(b *vcBatch, poly []Vec2, color uint32) {
	n := len(poly)
	if n < 3 {
		return
	}
	cx, cy := float32(0), float32(0)
	for _, p := range poly {
		cx += p.X
		cy += p.Y
	}
	cx /= float32(n)
	cy /= float32(n)
	transparent := color &^ 0xFF000000
	for i := 0; i < n; i++ {
		p0 := poly[i]
		p1 := poly[(i+1)%n]
		nx, ny := normalOf(p0, p1, Vec2{X: cx, Y: cy})
		outer0 := Vec2{X: p0.X + nx*aaFringeSize, Y: p0.Y + ny*aaFringeSize}
		outer1 := Vec2{X: p1.X + nx*aaFringeSize, Y: p1.Y + ny*aaFringeSize}
		start := uint16(len(b.vtx))
		b.vtx = append(b.vtx,
			Vertex{Pos: [2]float32{p0.X, p0.Y}, Color: color},
			Vertex{Pos: [2]float32{p1.X, p1.Y}, Color: color},
			Vertex{Pos: [2]float32{outer1.X, outer1.Y}, Color: transparent},
			Vertex{Pos: [2]float32{outer0.X, outer0.Y}, Color: transparent},
		)
		b.idx = append(b.idx, start, start+1, start+2, start, start+2, start+3)
	}
}

// normalOf returns the outward unit normal of edge p0->p1 relative to
// center, capped (scale cap of 100, §4.7) to avoid miter spikes.
func normalOf(p0, p1, center Vec2) (float32, float32) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	length := sqrtf32(dx*dx + dy*dy)
	if length == 0 {
		return 0, 0
	}
	nx, ny := -dy/length, dx/length
	midX, midY := (p0.X+p1.X)/2, (p0.Y+p1.Y)/2
	if (midX-center.X)*nx+(midY-center.Y)*ny < 0 {
		nx, ny = -nx, -ny
	}
	const cap = 100.0
	if nx > cap {
		nx = cap
	}
	if ny > cap {
		ny = cap
	}
	return nx, ny
}

func (vc *VertexConverter) emitLine(b *vcBatch, c Command) {
	dx, dy := c.P1.X-c.P0.X, c.P1.Y-c.P0.Y
	length := sqrtf32(dx*dx + dy*dy)
	if length == 0 {
		return
	}
	half := c.Thickness / 2
	if half <= 0 {
		half = 0.5
	}
	nx, ny := -dy/length*half, dx/length*half
	if vc.LineAA && c.Thickness <= 1 {
		// One 4-vertex quad per segment: solid edge + transparent fringe offset by the normal, per §4.7.
		transparent := c.Color &^ 0xFF000000
		start := uint16(len(b.vtx))
		b.vtx = append(b.vtx,
			Vertex{Pos: [2]float32{c.P0.X, c.P0.Y}, Color: c.Color},
			Vertex{Pos: [2]float32{c.P1.X, c.P1.Y}, Color: c.Color},
			Vertex{Pos: [2]float32{c.P1.X + nx, c.P1.Y + ny}, Color: transparent},
			Vertex{Pos: [2]float32{c.P0.X + nx, c.P0.Y + ny}, Color: transparent},
		)
		b.idx = append(b.idx, start, start+1, start+2, start, start+2, start+3)
		return
	}
	p0a := Vec2{X: c.P0.X + nx, Y: c.P0.Y + ny}
	p0b := Vec2{X: c.P0.X - nx, Y: c.P0.Y - ny}
	p1a := Vec2{X: c.P1.X + nx, Y: c.P1.Y + ny}
	p1b := Vec2{X: c.P1.X - nx, Y: c.P1.Y - ny}
	start := uint16(len(b.vtx))
	b.vtx = append(b.vtx,
		Vertex{Pos: [2]float32{p0a.X, p0a.Y}, Color: c.Color},
		Vertex{Pos: [2]float32{p1a.X, p1a.Y}, Color: c.Color},
		Vertex{Pos: [2]float32{p1b.X, p1b.Y}, Color: c.Color},
		Vertex{Pos: [2]float32{p0b.X, p0b.Y}, Color: c.Color},
	)
	b.idx = append(b.idx, start, start+1, start+2, start, start+2, start+3)
}

func (vc *VertexConverter) emitPolylineStroke(b *vcBatch, pts []Vec2, color uint32, thickness float32) {
	if thickness <= 0 {
		thickness = 1
	}
	for i := 0; i+1 < len(pts); i++ {
		vc.emitLine(b, Command{Kind: CmdLine, P0: pts[i], P1: pts[i+1], Color: color, Thickness: thickness})
	}
}

func (vc *VertexConverter) emitPolygonFilled(b *vcBatch, c Command) {
	pts := c.Points
	if len(pts) < 3 {
		return
	}
	start := uint16(len(b.vtx))
	for _, p := range pts {
		b.vtx = append(b.vtx, Vertex{Pos: [2]float32{p.X, p.Y}, Color: c.Color})
	}
	for i := 1; i+1 < len(pts); i++ {
		b.idx = append(b.idx, start, start+uint16(i), start+uint16(i+1))
	}
	if vc.ShapeAA {
		var cx, cy float32
		for _, p := range pts {
			cx += p.X
			cy += p.Y
		}
		vc.emitFringe(b, pts, c.Color)
	}
}

func circlePoints(center Vec2, radius float32, segments int) []Vec2 {
	if segments <= 0 {
		segments = 22
	}
	pts := make([]Vec2, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * piF32 * float32(i) / float32(segments)
		pts[i] = Vec2{X: center.X + radius*cosApprox(theta), Y: center.Y + radius*sinApprox(theta)}
	}
	return pts
}

func (vc *VertexConverter) emitCircleFilled(b *vcBatch, c Command) {
	segs := c.Segmented
	if segs == 0 {
		segs = vc.CircleSegments
	}
	pts := circlePoints(c.P0, c.Radius, segs)
	start := uint16(len(b.vtx))
	b.vtx = append(b.vtx, Vertex{Pos: [2]float32{c.P0.X, c.P0.Y}, Color: c.Color})
	for _, p := range pts {
		b.vtx = append(b.vtx, Vertex{Pos: [2]float32{p.X, p.Y}, Color: c.Color})
	}
	for i := 0; i < len(pts); i++ {
		next := uint16((i+1)%len(pts)) + 1
		b.idx = append(b.idx, start, start+uint16(i)+1, start+next)
	}
	if vc.ShapeAA {
		vc.emitFringe(b, pts, c.Color)
	}
}

func (vc *VertexConverter) emitCircleStroke(b *vcBatch, c Command) {
	segs := c.Segmented
	if segs == 0 {
		segs = vc.CircleSegments
	}
	pts := circlePoints(c.P0, c.Radius, segs)
	pts = append(pts, pts[0])
	vc.emitPolylineStroke(b, pts, c.Color, c.Thickness)
}

func (vc *VertexConverter) emitArc(b *vcBatch, c Command) {
	segs := c.Segmented
	if segs == 0 {
		segs = vc.ArcSegments
	}
	if segs <= 0 {
		segs = 22
	}
	pts := make([]Vec2, segs+1)
	span := c.AngleMax - c.AngleMin
	for i := 0; i <= segs; i++ {
		theta := c.AngleMin + span*float32(i)/float32(segs)
		pts[i] = Vec2{X: c.P0.X + c.Radius*cosApprox(theta), Y: c.P0.Y + c.Radius*sinApprox(theta)}
	}
	if c.Kind == CmdArcFilled {
		start := uint16(len(b.vtx))
		b.vtx = append(b.vtx, Vertex{Pos: [2]float32{c.P0.X, c.P0.Y}, Color: c.Color})
		for _, p := range pts {
			b.vtx = append(b.vtx, Vertex{Pos: [2]float32{p.X, p.Y}, Color: c.Color})
		}
		for i := 0; i+1 < len(pts); i++ {
			b.idx = append(b.idx, start, start+uint16(i)+1, start+uint16(i+2))
		}
		return
	}
	vc.emitPolylineStroke(b, pts, c.Color, c.Thickness)
}

func (vc *VertexConverter) emitText(b *vcBatch, c Command) {
	if c.Font == nil {
		// a Font-less CmdText is drawn only when it carries UVs in P2/P3;
		// AddText sets none, so its text is not drawn
		if c.P2 != (Vec2{}) || c.P3 != (Vec2{}) {
			b.quad(c.P0, c.P0.Add(c.P1), c.P2, c.P3, c.FgColor)
		}
		return
	}
	quads := c.Font.GetGlyphQuads(c.Text, c.P0.X, c.P0.Y, 1)
	color := c.FgColor
	if color == 0 {
		color = ColorWhite
	}
	if !isColorTransparent(c.BgColor) {
		b.quad(c.P0, c.P0.Add(c.P1), Vec2{}, Vec2{}, c.BgColor)
	}
	for _, q := range quads {
		b.quad(Vec2{X: q.X0, Y: q.Y0}, Vec2{X: q.X1, Y: q.Y1}, Vec2{X: q.U0, Y: q.V0}, Vec2{X: q.U1, Y: q.V1}, color)
	}
}

// --- Path API (§4.7) ---------------------------------------------------

// Path accumulates points for the line_to/arc_to/curve_to/fill/stroke
// sequence the spec describes as an alternative entry point into the
// Vertex Converter, independent of the Command layer.
type Path struct {
	points []Vec2
}

func NewPath() *Path { return &Path{} }

func (p *Path) Clear() { p.points = p.points[:0] }

func (p *Path) LineTo(pt Vec2) { p.points = append(p.points, pt) }

// ArcToFast approximates arc_to_fast(center, r, a_min_sixth, a_max_sixth):
// angles are expressed in sixths of a circle, matching the source's table
// of precomputed sin/cos samples.
func (p *Path) ArcToFast(center Vec2, radius float32, aMinSixth, aMaxSixth float32) {
	p.ArcTo(center, radius, aMinSixth*piF32/3, aMaxSixth*piF32/3, 22)
}

func (p *Path) ArcTo(center Vec2, radius, aMin, aMax float32, segments int) {
	if segments <= 0 {
		segments = 22
	}
	span := aMax - aMin
	for i := 0; i <= segments; i++ {
		theta := aMin + span*float32(i)/float32(segments)
		p.points = append(p.points, Vec2{X: center.X + radius*cosApprox(theta), Y: center.Y + radius*sinApprox(theta)})
	}
}

func (p *Path) RectTo(r Rect, rounding float32) {
	if rounding <= 0 {
		p.points = append(p.points,
			Vec2{X: r.X, Y: r.Y}, Vec2{X: r.X + r.W, Y: r.Y},
			Vec2{X: r.X + r.W, Y: r.Y + r.H}, Vec2{X: r.X, Y: r.Y + r.H})
		return
	}
	p.ArcTo(Vec2{X: r.X + r.W - rounding, Y: r.Y + rounding}, rounding, -piF32/2, 0, 6)
	p.ArcTo(Vec2{X: r.X + r.W - rounding, Y: r.Y + r.H - rounding}, rounding, 0, piF32/2, 6)
	p.ArcTo(Vec2{X: r.X + rounding, Y: r.Y + r.H - rounding}, rounding, piF32/2, piF32, 6)
	p.ArcTo(Vec2{X: r.X + rounding, Y: r.Y + rounding}, rounding, piF32, 3*piF32/2, 6)
}

// CurveTo appends a cubic Bezier flattened into line segments.
func (p *Path) CurveTo(p1, p2, p3 Vec2, segments int) {
	if segments <= 0 {
		segments = 22
	}
	p0 := Vec2{}
	if len(p.points) > 0 {
		p0 = p.points[len(p.points)-1]
	}
	for i := 1; i <= segments; i++ {
		t := float32(i) / float32(segments)
		mt := 1 - t
		x := mt*mt*mt*p0.X + 3*mt*mt*t*p1.X + 3*mt*t*t*p2.X + t*t*t*p3.X
		y := mt*mt*mt*p0.Y + 3*mt*mt*t*p1.Y + 3*mt*t*t*p2.Y + t*t*t*p3.Y
		p.points = append(p.points, Vec2{X: x, Y: y})
	}
}

func (p *Path) Fill(dl *DrawList, color uint32) {
	dl.FillPolygon(p.points, color)
}

func (p *Path) Stroke(dl *DrawList, closed bool, thickness float32, color uint32) {
	pts := p.points
	if closed && len(pts) > 0 {
		pts = append(append([]Vec2(nil), pts...), pts[0])
		dl.StrokePolyline(pts, color, thickness)
		return
	}
	dl.StrokePolyline(pts, color, thickness)
}

// --- small math helpers, no trig table dependency in the pack ---------

const piF32 = 3.14159265358979323846

func sqrtf32(x float32) float32 {
	if x <= 0 {
		return 0
	}
	guess := x / 2
	for i := 0; i < 4; i++ {
		guess = (guess + x/guess) / 2
	}
	return guess
}

// cosApprox/sinApprox use the parabolic approximation 4/π·x − 4/π²·x|x|, good
// enough for UI geometry (path curvature, circle tessellation) without
// pulling in the standard math package's float64 trig for a float32 caller.
func sinApprox(x float32) float32 {
	for x > piF32 {
		x -= 2 * piF32
	}
	for x < -piF32 {
		x += 2 * piF32
	}
	b := float32(4) / piF32
	c := float32(-4) / (piF32 * piF32)
	y := b*x + c*x*absf32(x)
	return y
}

func cosApprox(x float32) float32 {
	return sinApprox(x + piF32/2)
}

