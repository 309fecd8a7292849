package font

// skylinePacker is a hand-written rectangle packer for the atlas bake pass
// (§4.7 "pack" phase). No example repo in the pack carries a rect-packing
// dependency (stb_rect_pack has no idiomatic Go equivalent in the corpus),
// so this is the one deliberately stdlib-only component of the baker —
// see DESIGN.md for the justification. It implements the classic skyline
// (bottom-left) heuristic: track the height profile across the atlas
// width as a sequence of horizontal segments, and place each rect at the
// lowest-height position it fits.
type skylinePacker struct {
	width, height int
	// skyline segments, kept sorted by x and covering [0,width) with no gaps.
	segX []int
	segY []int
}

func newSkylinePacker(width, height int) *skylinePacker {
	return &skylinePacker{
		width:  width,
		height: height,
		segX:   []int{0},
		segY:   []int{0},
	}
}

// fitAt reports where a rect of width w placed starting at segment index i
// would land: y is the height of the highest skyline segment it spans and
// usedWidth is w. ok is false if it would overflow the atlas width or
// height.
func (p *skylinePacker) fitAt(i, w int) (y, usedWidth int, ok bool) {
	x := p.segX[i]
	if x+w > p.width {
		return 0, 0, false
	}
	maxY := p.segY[i]
	covered := 0
	for j := i; j < len(p.segX) && covered < w; j++ {
		segStart := p.segX[j]
		segEnd := p.width
		if j+1 < len(p.segX) {
			segEnd = p.segX[j+1]
		}
		if p.segY[j] > maxY {
			maxY = p.segY[j]
		}
		covered += segEnd - segStart
		if segStart > x+w {
			break
		}
	}
	if maxY >= p.height {
		return 0, 0, false
	}
	return maxY, w, true
}

// Pack finds the lowest-height, then leftmost, placement for a w x h rect
// and updates the skyline, returning its top-left corner. ok is false if
// the atlas is out of room — the caller (atlas.go's bake pass) grows the
// atlas and retries the whole bake, per §4.7's "grow on overflow" rule.
func (p *skylinePacker) Pack(w, h int) (x, y int, ok bool) {
	bestY := p.height + 1
	bestI := -1
	for i := range p.segX {
		y, _, fits := p.fitAt(i, w)
		if fits && y < bestY {
			bestY = y
			bestI = i
		}
	}
	if bestI < 0 {
		return 0, 0, false
	}
	x = p.segX[bestI]
	if bestY+h > p.height {
		return 0, 0, false
	}
	p.insert(x, bestY+h, w)
	return x, bestY, true
}

// insert splices a new flat segment of the given width and height at x
// into the skyline, merging/removing the segments it covers.
func (p *skylinePacker) insert(x, newY, w int) {
	end := x + w
	var newX, newYs []int
	inserted := false
	for i := range p.segX {
		segStart := p.segX[i]
		segEnd := p.width
		if i+1 < len(p.segX) {
			segEnd = p.segX[i+1]
		}
		if segEnd <= x || segStart >= end {
			newX = append(newX, segStart)
			newYs = append(newYs, p.segY[i])
			continue
		}
		if segStart < x {
			newX = append(newX, segStart)
			newYs = append(newYs, p.segY[i])
		}
		if !inserted {
			newX = append(newX, x)
			newYs = append(newYs, newY)
			inserted = true
		}
		if segEnd > end {
			newX = append(newX, end)
			newYs = append(newYs, p.segY[i])
		}
	}
	if !inserted {
		newX = append(newX, x)
		newYs = append(newYs, newY)
	}
	p.segX, p.segY = newX, newYs
}
