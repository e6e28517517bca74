package atlaspack

import "math/bits"

// power2Row is a horizontal strip whose height is a power of two, filled left to right.
type power2Row struct {
	x      int
	y      int
	height int
}

func (r *power2Row) canAddWidth(width, containerWidth int) bool {
	return r.x+width <= containerWidth
}

// power2LinePacker buckets rectangle heights to the next power of two and appends to one
// current row per height class, starting a fresh strip when a row fills up.
type power2LinePacker struct {
	packerBase
	nextStripY int
	rows       [16]power2Row
}

func newPower2Line(width, height int) *power2LinePacker {
	return &power2LinePacker{packerBase: newPackerBase(width, height)}
}

func (p *power2LinePacker) Clear() {
	p.area = 0
	p.nextStripY = 0
	p.rows = [16]power2Row{}
}

func (p *power2LinePacker) AddRect(rect *Rect) bool {
	width, height := rect.Width, rect.Height
	checkSize(width, height)
	if width > p.width || height > p.height {
		return false
	}

	area := width * height // computed here since height is rounded below

	height = max(ceilPow2(height), 2)
	row := &p.rows[power2RowIndex(height)]

	if row.height == 0 {
		if p.nextStripY+height > p.height {
			return false
		}
		p.initRow(row, height)
	} else if !row.canAddWidth(width, p.width) {
		if p.nextStripY+height > p.height {
			return false
		}
		// that row is now "full", so retarget the slot at a fresh strip
		p.initRow(row, height)
	}

	rect.OffsetTo(row.x, row.y)
	row.x += width

	p.area += area
	return true
}

func (p *power2LinePacker) initRow(row *power2Row, rowHeight int) {
	row.x = 0
	row.y = p.nextStripY
	row.height = rowHeight
	p.nextStripY += rowHeight
}

// ceilPow2 returns the next power of two greater than or equal to x.
func ceilPow2(x int) int {
	return 1 << bits.Len32(uint32(x-1))
}

// power2RowIndex maps a power-of-two height (>= 2) to its row slot in [1, 15].
func power2RowIndex(height int) int {
	return bits.Len32(uint32(height - 1))
}

// vim: ts=4
