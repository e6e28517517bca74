package atlaspack

// horizonOldInitialSize is the extent of the region the packer starts with, before any
// growth. Clamped to the packer extents for small packers.
const horizonOldInitialSize = 512

// horizonOldPacker is a legacy bump allocator that places rectangles left to right, top
// to bottom within a region that grows by doubling one dimension at a time. Fastest of
// the algorithms, only good for rectangles that have similar heights.
type horizonOldPacker struct {
	packerBase
	posX int
	posY int
	// lineHeight is the max height of the current line.
	lineHeight int
	currWidth  int
	currHeight int
	// splitX is the left edge of the region lines currently wrap to: 0 for a
	// full-width region, or the old width after growing into a right half.
	splitX int
}

func newHorizonOld(width, height int) *horizonOldPacker {
	return &horizonOldPacker{packerBase: newPackerBase(width, height)}
}

func (p *horizonOldPacker) Clear() {
	p.area = 0
	p.posX = 0
	p.posY = 0
	p.lineHeight = 0
	p.currWidth = 0
	p.currHeight = 0
	p.splitX = 0
}

func (p *horizonOldPacker) AddRect(rect *Rect) bool {
	width, height := rect.Width, rect.Height
	checkSize(width, height)
	if width > p.width || height > p.height {
		return false
	}
	if p.currWidth == 0 {
		p.grow() // first init
	}
	if p.posX+width >= p.currWidth {
		// wrap to the left edge of the current region
		p.posX = p.splitX
		p.posY += p.lineHeight
		p.lineHeight = 0
	}
	if p.posY+height >= p.currHeight {
		if p.currWidth != p.currHeight {
			// continue in the right half created by the next width growth
			p.splitX = p.currWidth
			p.posX = p.currWidth
			p.posY = 0
		}
		if !p.grow() {
			return false
		}
	}
	// The region may still not cover a rectangle wider than its fresh half; keep
	// growing rather than spill past the region edge.
	for p.posX+width > p.currWidth || p.posY+height > p.currHeight {
		if !p.grow() {
			return false
		}
	}
	rect.OffsetTo(p.posX, p.posY)

	p.posX += width
	p.lineHeight = max(p.lineHeight, height)
	p.area += width * height
	return true
}

// grow doubles one dimension of the region, height first from a square, clamped to the
// packer extents. Returns false once the region has reached the maximum size.
func (p *horizonOldPacker) grow() bool {
	if p.currWidth == 0 {
		size := min(horizonOldInitialSize, min(p.width, p.height))
		p.currWidth, p.currHeight = size, size
		return true
	}
	if p.currWidth == p.width && p.currHeight == p.height {
		return false
	}
	if p.currHeight != p.currWidth {
		p.currWidth = min(p.currWidth<<1, p.width)
	} else {
		p.currHeight = min(p.currHeight<<1, p.height)
		// the new bottom strip spans the full width
		p.splitX = 0
	}
	return true
}

// vim: ts=4
