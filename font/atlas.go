// Package font implements the font atlas baker and glyph provider named
// in the GUI toolkit's component design: it rasterizes TrueType/OpenType
// glyphs into a single packed RGBA atlas texture and exposes a BakedFont
// implementing the gui.Font interface the renderer and layout code expect.
//
// Grounded on golang.org/x/image/font/sfnt (outline + metrics extraction,
// the closest ecosystem equivalent to stb_truetype) and
// golang.org/x/image/vector (scanline rasterization, the closest
// ecosystem equivalent to stb_truetype's own rasterizer), both already
// present in the retrieval pack's go.mod set (goki-gi, danielgatis-go-headless-term).
package font

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/coreui-go/gui"
)

// Config mirrors a single "font config" entry from §3's data model: one
// TTF source plus the size and codepoint ranges to bake from it.
type Config struct {
	Name      string
	Data      []byte
	SizePx    float32
	Ranges    []Range // codepoints to bake; nil means LatinBasicRange
	Oversample int     // supersampling factor for rasterization quality, 0 = 1 (no oversampling)
}

// Range is an inclusive codepoint range.
type Range struct{ Lo, Hi rune }

// LatinBasicRange covers printable ASCII, the default bake range when a
// Config specifies none.
var LatinBasicRange = []Range{{Lo: 0x20, Hi: 0x7E}}

// glyphInfo is one baked glyph's atlas placement and layout metrics.
type glyphInfo struct {
	advance            float32
	x0, y0, x1, y1     float32 // layout-space offsets from the pen position
	u0, v0, u1, v1     float32 // atlas UVs
}

// BakedFont is one sized, packed font — the §3 "Baked Font" entity. It
// implements gui.Font directly so it can be handed to
// gui.Context.SetFontProvider via a Manager (see manager.go).
type BakedFont struct {
	name      string
	sizePx    float32
	ascent    float32
	descent   float32
	lineGap   float32
	glyphs    map[rune]glyphInfo
	textureID uint32 // set by the host renderer after uploading Atlas.Pixels
}

func (f *BakedFont) TextureID() uint32 { return f.textureID }

// SetTextureID is called by the host renderer once it has uploaded the
// atlas this font was baked into.
func (f *BakedFont) SetTextureID(id uint32) { f.textureID = id }

func (f *BakedFont) HasGlyph(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

func (f *BakedFont) LineHeight(scale float32) float32 {
	return (f.ascent + f.descent + f.lineGap) * scale
}

func (f *BakedFont) MeasureText(text string, scale float32) gui.FontVec2 {
	var w float32
	lines := 1
	for _, r := range text {
		if r == '\n' {
			lines++
			continue
		}
		if g, ok := f.glyphs[r]; ok {
			w += g.advance * scale
		}
	}
	return gui.FontVec2{X: w, Y: f.LineHeight(scale) * float32(lines)}
}

func (f *BakedFont) GetGlyphQuads(text string, x, y, scale float32) []gui.FontGlyphQuad {
	quads := make([]gui.FontGlyphQuad, 0, len(text))
	penX, penY := x, y
	for _, r := range text {
		if r == '\n' {
			penX = x
			penY += f.LineHeight(scale)
			continue
		}
		g, ok := f.glyphs[r]
		if !ok {
			continue
		}
		quads = append(quads, gui.FontGlyphQuad{
			X0: penX + g.x0*scale, Y0: penY + g.y0*scale,
			X1: penX + g.x1*scale, Y1: penY + g.y1*scale,
			U0: g.u0, V0: g.v0,
			U1: g.u1, V1: g.v1,
		})
		penX += g.advance * scale
	}
	return quads
}

// Atlas is the mutable bake target for one or more Configs (§4.7's
// atlas_init/atlas_begin/atlas_add/atlas_bake/atlas_end pipeline,
// collapsed into a builder since Go has no reason to split allocation
// from configuration the way the C API does).
type Atlas struct {
	width, height   int
	packer          *skylinePacker
	Pixels          []byte // RGBA8, width*height*4 bytes after Bake
	pending         []Config
	baked           []*BakedFont
	cursorsPending  bool
	cursorSizePx    float32
	bakedCursors    *BakedCursors
}

// cursorUV is one baked cursor's atlas placement, in the same u0/v0/u1/v1
// + pixel-size shape as a glyph, but indexed by gui.CursorKind instead of
// rune.
type cursorUV struct {
	u0, v0, u1, v1 float32
	w, h           float32
	hotX, hotY     float32
}

// BakedCursors is the packed set of seven cursor images, the atlas-side
// counterpart to BakedFont. It implements gui.CursorSource so it can be
// handed to gui.Context.SetCursorSource.
type BakedCursors struct {
	images    [gui.CursorCount]cursorUV
	textureID uint32
}

func (c *BakedCursors) TextureID() uint32     { return c.textureID }
func (c *BakedCursors) SetTextureID(id uint32) { c.textureID = id }

// UV returns the atlas rect, pixel size, and hotspot offset for kind,
// satisfying gui.CursorSource.
func (c *BakedCursors) UV(kind gui.CursorKind) (u0, v0, u1, v1, w, h, hotX, hotY float32) {
	img := c.images[kind]
	return img.u0, img.v0, img.u1, img.v1, img.w, img.h, img.hotX, img.hotY
}

// NewAtlas starts a bake session with an initial atlas size; Bake grows it
// (doubling) and re-packs from scratch if the configs do not fit.
func NewAtlas(width, height int) *Atlas {
	return &Atlas{width: width, height: height}
}

// AddFont queues a font config to be baked; returns a *BakedFont handle
// that becomes valid once Bake succeeds.
func (a *Atlas) AddFont(cfg Config) *BakedFont {
	bf := &BakedFont{name: cfg.Name, sizePx: cfg.SizePx, glyphs: make(map[rune]glyphInfo)}
	a.pending = append(a.pending, cfg)
	a.baked = append(a.baked, bf)
	return bf
}

// AddCursors queues the seven procedural cursor shapes to be packed into
// the atlas at sizePx, returning the handle that becomes valid once Bake
// succeeds. There is at most one cursor set per atlas.
func (a *Atlas) AddCursors(sizePx float32) *BakedCursors {
	a.cursorsPending = true
	a.cursorSizePx = sizePx
	a.bakedCursors = &BakedCursors{}
	return a.bakedCursors
}

// Bake rasterizes every queued Config's glyphs, packs them into the
// atlas, and fills in each BakedFont's glyph table and UVs. Grows the
// atlas and retries (§4.7 "grow on overflow") up to a handful of times
// before giving up.
func (a *Atlas) Bake() error {
	for attempt := 0; attempt < 6; attempt++ {
		a.packer = newSkylinePacker(a.width, a.height)
		img := image.NewRGBA(image.Rect(0, 0, a.width, a.height))

		ok, err := a.bakeInto(img)
		if err != nil {
			return err
		}
		if ok {
			a.Pixels = img.Pix
			return nil
		}
		a.width *= 2
		a.height *= 2
	}
	return fmt.Errorf("font: atlas could not fit all glyphs after growing")
}

func (a *Atlas) bakeInto(dst *image.RGBA) (bool, error) {
	for i, cfg := range a.pending {
		f, err := sfnt.Parse(cfg.Data)
		if err != nil {
			return false, fmt.Errorf("font: parse %s: %w", cfg.Name, err)
		}
		ranges := cfg.Ranges
		if ranges == nil {
			ranges = LatinBasicRange
		}
		oversample := cfg.Oversample
		if oversample < 1 {
			oversample = 1
		}

		var buf sfnt.Buffer
		ppem := fixed.Int26_6(cfg.SizePx * 64)
		metrics, err := f.Metrics(&buf, ppem, font.HintingNone)
		if err != nil {
			return false, err
		}
		bf := a.baked[i]
		bf.ascent = fixedToFloat(metrics.Ascent)
		bf.descent = fixedToFloat(metrics.Descent)
		bf.lineGap = fixedToFloat(metrics.Height) - bf.ascent - bf.descent

		for _, rg := range ranges {
			for r := rg.Lo; r <= rg.Hi; r++ {
				gi, err := f.GlyphIndex(&buf, r)
				if err != nil || gi == 0 {
					continue
				}
				adv, err := f.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
				if err != nil {
					continue
				}
				segs, err := f.LoadGlyph(&buf, gi, ppem, nil)
				if err != nil {
					continue
				}
				bounds, _ := f.Bounds(&buf, ppem, font.HintingNone)
				w := int(fixedToFloat(bounds.Max.X-bounds.Min.X)) + 2
				h := int(fixedToFloat(bounds.Max.Y-bounds.Min.Y)) + 2
				if w <= 0 || h <= 0 {
					bf.glyphs[r] = glyphInfo{advance: fixedToFloat(adv)}
					continue
				}

				mask := rasterizeGlyph(segs, bounds, w, h, oversample)
				px, py, fits := a.packer.Pack(w, h)
				if !fits {
					return false, nil
				}
				draw.Draw(dst, image.Rect(px, py, px+w, py+h), mask, image.Point{}, draw.Src)

				bf.glyphs[r] = glyphInfo{
					advance: fixedToFloat(adv),
					x0:      fixedToFloat(bounds.Min.X) - 1,
					y0:      -fixedToFloat(bounds.Max.Y) - 1,
					x1:      fixedToFloat(bounds.Min.X) - 1 + float32(w),
					y1:      -fixedToFloat(bounds.Max.Y) - 1 + float32(h),
					u0:      float32(px) / float32(a.width),
					v0:      float32(py) / float32(a.height),
					u1:      float32(px+w) / float32(a.width),
					v1:      float32(py+h) / float32(a.height),
				}
			}
		}
	}

	if a.cursorsPending {
		if ok, err := a.bakeCursorsInto(dst); err != nil || !ok {
			return ok, err
		}
	}
	return true, nil
}

// bakeCursorsInto packs the seven procedural cursor shapes (drawn as
// filled polygons, not glyph outlines — there is no font data to source
// them from) into the atlas at the same spot the glyph loop just used.
func (a *Atlas) bakeCursorsInto(dst *image.RGBA) (bool, error) {
	size := int(a.cursorSizePx)
	if size < 8 {
		size = 8
	}
	for kind := gui.CursorKind(0); kind < gui.CursorCount; kind++ {
		polys, hotX, hotY := cursorShape(kind, size)
		mask := rasterizePolygons(polys, size, size)
		px, py, fits := a.packer.Pack(size, size)
		if !fits {
			return false, nil
		}
		draw.Draw(dst, image.Rect(px, py, px+size, py+size), mask, image.Point{}, draw.Src)
		a.bakedCursors.images[kind] = cursorUV{
			u0: float32(px) / float32(a.width),
			v0: float32(py) / float32(a.height),
			u1: float32(px+size) / float32(a.width),
			v1: float32(py+size) / float32(a.height),
			w:  float32(size),
			h:  float32(size),
			hotX: hotX,
			hotY: hotY,
		}
	}
	return true, nil
}

// cursorShape returns the filled-polygon outline(s) for one cursor kind in
// an n x n cell, plus its hotspot (the point under the actual mouse
// position). Shapes are deliberately simple: this is a programmer's-art
// fallback atlas, not a themed cursor pack — a host wanting real cursor
// art supplies its own BakedCursors-equivalent via SetCursorSource.
func cursorShape(kind gui.CursorKind, n int) (polys [][][2]float32, hotX, hotY float32) {
	f := float32(n)
	switch kind {
	case gui.CursorArrow:
		return [][][2]float32{{{0, 0}, {0, f * 0.75}, {f * 0.25, f * 0.55}, {f * 0.4, f}, {f * 0.55, f * 0.9}, {f * 0.38, f * 0.5}, {f * 0.65, f * 0.5}}}, 0, 0
	case gui.CursorText:
		bar := f * 0.12
		return [][][2]float32{
			{{f*0.5 - bar, 0}, {f*0.5 + bar, 0}, {f*0.5 + bar, f}, {f*0.5 - bar, f}},
			{{f * 0.2, 0}, {f * 0.8, 0}, {f * 0.8, bar}, {f * 0.2, bar}},
			{{f * 0.2, f - bar}, {f * 0.8, f - bar}, {f * 0.8, f}, {f * 0.2, f}},
		}, f / 2, f / 2
	case gui.CursorMove:
		arm := f * 0.12
		return [][][2]float32{
			{{f*0.5 - arm, 0}, {f*0.5 + arm, 0}, {f*0.5 + arm, f}, {f*0.5 - arm, f}},
			{{0, f*0.5 - arm}, {f, f*0.5 - arm}, {f, f*0.5 + arm}, {0, f*0.5 + arm}},
		}, f / 2, f / 2
	case gui.CursorResizeNS:
		arm := f * 0.15
		return [][][2]float32{{{f*0.5 - arm, 0}, {f*0.5 + arm, 0}, {f*0.5 + arm, f}, {f*0.5 - arm, f}}}, f / 2, f / 2
	case gui.CursorResizeEW:
		arm := f * 0.15
		return [][][2]float32{{{0, f*0.5 - arm}, {f, f*0.5 - arm}, {f, f*0.5 + arm}, {0, f*0.5 + arm}}}, f / 2, f / 2
	case gui.CursorResizeNESW:
		arm := f * 0.15
		return [][][2]float32{{{f - arm, 0}, {f, 0}, {f, arm}, {arm, f}, {0, f}, {0, f - arm}}}, f / 2, f / 2
	case gui.CursorResizeNWSE:
		arm := f * 0.15
		return [][][2]float32{{{0, 0}, {arm, 0}, {f, f - arm}, {f, f}, {f - arm, f}, {0, arm}}}, f / 2, f / 2
	default:
		return nil, 0, 0
	}
}

// rasterizePolygons fills a w x h RGBA mask (white with polygon coverage
// as alpha) from a set of closed point lists, mirroring rasterizeGlyph's
// use of x/image/vector but for straight-edge polygons instead of sfnt
// outline segments.
func rasterizePolygons(polys [][][2]float32, w, h int) *image.RGBA {
	rast := vector.NewRasterizer(w, h)
	for _, poly := range polys {
		if len(poly) == 0 {
			continue
		}
		rast.MoveTo(poly[0][0], poly[0][1])
		for _, p := range poly[1:] {
			rast.LineTo(p[0], p[1])
		}
		rast.ClosePath()
	}
	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	rast.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetRGBA(x, y, colorWhiteAlpha(alpha.AlphaAt(x, y).A))
		}
	}
	return out
}

// rasterizeGlyph fills a w x h RGBA mask (white with the glyph's coverage
// as alpha) from sfnt outline segments, using x/image/vector's scanline
// rasterizer. oversample supersamples by rendering into a larger buffer
// and box-filtering down, the Go-native stand-in for stb_truetype's
// subpixel oversampling knob (§6 config option).
func rasterizeGlyph(segs []sfnt.Segment, bounds fixed.Rectangle26_6, w, h, oversample int) *image.RGBA {
	ow, oh := w*oversample, h*oversample
	rast := vector.NewRasterizer(ow, oh)
	originX := fixedToFloat(bounds.Min.X)
	originY := fixedToFloat(bounds.Max.Y)

	toPt := func(p fixed.Point26_6) (float32, float32) {
		x := (fixedToFloat(p.X) - originX + 1) * float32(oversample)
		y := (originY - fixedToFloat(p.Y) + 1) * float32(oversample)
		return x, y
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := toPt(seg.Args[0])
			rast.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := toPt(seg.Args[0])
			rast.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := toPt(seg.Args[0])
			x, y := toPt(seg.Args[1])
			rast.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := toPt(seg.Args[0])
			c2x, c2y := toPt(seg.Args[1])
			x, y := toPt(seg.Args[2])
			rast.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}

	alpha := image.NewAlpha(image.Rect(0, 0, ow, oh))
	rast.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	if oversample == 1 {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				a := alpha.AlphaAt(x, y).A
				out.SetRGBA(x, y, colorWhiteAlpha(a))
			}
		}
		return out
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum int
			for sy := 0; sy < oversample; sy++ {
				for sx := 0; sx < oversample; sx++ {
					sum += int(alpha.AlphaAt(x*oversample+sx, y*oversample+sy).A)
				}
			}
			a := uint8(sum / (oversample * oversample))
			out.SetRGBA(x, y, colorWhiteAlpha(a))
		}
	}
	return out
}

func colorWhiteAlpha(a uint8) color.RGBA {
	return color.RGBA{R: 255, G: 255, B: 255, A: a}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Clear releases the pending configuration, keeping already-baked fonts
// valid. Mirrors §4.7's atlas_clear.
func (a *Atlas) Clear() {
	a.pending = nil
}

// Cleanup releases everything, including baked glyph tables — mirrors
// atlas_cleanup, the full teardown used when an application is shutting
// down its font system entirely.
func (a *Atlas) Cleanup() {
	a.pending = nil
	a.baked = nil
	a.Pixels = nil
}
