package gui

// CommandKind is the closed set of drawing-command kinds the Command
// Buffer emits (§6 "Command stream"). Coordinates are logical pixels;
// geometry is integer-quantised in the source (short/ushort) — kept as
// float32 here since Go has no reason to hand-roll fixed-point, matching
// the wider pack's convention of using native float types for 2D geometry
// (types.go's Vec2/Rect already do this).
type CommandKind int

const (
	CmdNOP CommandKind = iota
	CmdScissor
	CmdLine
	CmdCurve
	CmdRect
	CmdRectFilled
	CmdRectMultiColor
	CmdCircle
	CmdCircleFilled
	CmdArc
	CmdArcFilled
	CmdTriangle
	CmdTriangleFilled
	CmdPolygon
	CmdPolygonFilled
	CmdPolyline
	CmdText
	CmdImage
)

// Command is a tagged-variant (sum type) record — the Go-native
// realization of Design Notes §9's "Commands become a tagged variant
// (sum type) rather than a header + open-ended byte layout." Exactly one
// payload field is meaningful per Kind; the rest are zero.
//
// This is the layer the teacher's drawlist.go fuses directly into vertex
// emission. Splitting Command out from vertex production is the one
// architectural change this module makes relative to the teacher: the
// spec treats "the command list" and "the triangle mesh the Vertex
// Converter derives from it" as two different consumable artifacts (§2
// overview diagram shows Command Buffer feeding the host renderer
// directly, with the Vertex Converter as an optional second consumer).
type Command struct {
	Kind CommandKind

	// Clip/identity
	ClipRect Rect
	Handle   uint32 // optional command userdata handle (§6 config option)

	// Geometric payload (meaning depends on Kind)
	P0, P1, P2, P3 Vec2
	Radius         float32
	AngleMin       float32 // sixth-of-a-circle units, per arc_to_fast
	AngleMax       float32
	Rounding       float32
	Thickness      float32
	Points         []Vec2 // POLYGON/POLYLINE vertex list
	Segmented      int    // circle/arc/curve segment count override, 0 = default

	Color       uint32
	ColorTL, ColorTR, ColorBL, ColorBR uint32 // RECT_MULTI_COLOR corners

	// Text payload
	Text    string
	Font    Font
	BgColor uint32
	FgColor uint32

	// Image payload
	Image     uint32
	TintColor uint32
}

// zeroCommandMemory mirrors the §4.2 compile-time toggle "Command memory
// may be memset to zero before writing so that binary command-buffer
// comparison across frames is valid." Default off; SetZeroCommandMemory
// turns it on for deterministic-diff test harnesses.
var zeroCommandMemory = false

// SetZeroCommandMemory toggles the zero-before-write behavior.
func SetZeroCommandMemory(on bool) { zeroCommandMemory = on }

func newCommand(kind CommandKind) Command {
	var c Command
	if zeroCommandMemory {
		c = Command{}
	}
	c.Kind = kind
	return c
}

// isColorTransparent reports whether a packed RGBA color's alpha is zero.
func isColorTransparent(c uint32) bool {
	_, _, _, a := UnpackRGBA(c)
	return a == 0
}

// isZeroRect reports a degenerate width or height, the other drop
// condition named in §4.2's contract.
func isZeroRect(r Rect) bool {
	return r.W <= 0 || r.H <= 0
}
