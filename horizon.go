package atlaspack

import "slices"

const (
	// horizonMinHeight is the minimum height of a level.
	horizonMinHeight = 8
	// horizonRoundUp quantizes level heights to multiples of 4, so that rectangles of
	// similar heights share a level.
	horizonRoundUp = 4
)

// horizonLevel is a horizontal strip of fixed height, filled left to right from its
// x cursor.
type horizonLevel struct {
	y      int
	height int
	x      int
}

// add tries to place the given rectangle at the end of this level.
func (l *horizonLevel) add(rect *Rect, levelWidth, width, height int) bool {
	if l.x+width <= levelWidth && height <= l.height {
		rect.OffsetTo(l.x, l.y)
		l.x += width
		return true
	}
	return false
}

// horizonPacker maintains levels sorted by increasing height, binary-searching for the
// best fit level on each insertion. Faster than skyline but less efficient.
type horizonPacker struct {
	packerBase
	levels       []horizonLevel
	recentIndex  int
	heightOffset int
}

func newHorizon(width, height int) *horizonPacker {
	return &horizonPacker{packerBase: newPackerBase(width, height)}
}

func (p *horizonPacker) Clear() {
	p.area = 0
	p.levels = p.levels[:0]
	p.heightOffset = 0
	p.recentIndex = 0
}

func (p *horizonPacker) AddRect(rect *Rect) bool {
	width, height := rect.Width, rect.Height
	checkSize(width, height)
	if width > p.width || height > p.height {
		return false
	}

	newHeight := alignUp(max(horizonMinHeight, height), horizonRoundUp)

	// Runs of same-height insertions hit the most recently used level; fall back to a
	// binary search otherwise.
	newIndex := p.recentIndex
	if newIndex < len(p.levels) && p.levels[newIndex].height != newHeight {
		newIndex = searchLevels(p.levels, newHeight)
	}

	// Whether a new level of newHeight can still be opened.
	newLevelOK := p.heightOffset+newHeight <= p.height

	// Go through the levels and check whether one can satisfy the request.
	for i := newIndex; i < len(p.levels); i++ {
		level := &p.levels[i]
		// A level much taller than the request wastes vertical space; while room for a
		// tighter level remains, prefer opening one. The threshold is a tuning
		// constant.
		if level.height > newHeight+horizonRoundUp*2 && newLevelOK {
			break
		}
		if level.add(rect, p.width, width, height) {
			p.recentIndex = i
			p.area += width * height
			return true
		}
	}

	if !newLevelOK {
		return false
	}

	newLevel := horizonLevel{y: p.heightOffset, height: newHeight}
	p.heightOffset += newHeight

	// Insert the new level after existing levels of the same height, keeping the list
	// ordered.
	if newIndex < len(p.levels) && p.levels[newIndex].height <= newHeight {
		newIndex++
	}
	p.levels = slices.Insert(p.levels, newIndex, newLevel)
	p.recentIndex = newIndex

	if p.levels[newIndex].add(rect, p.width, width, height) {
		p.area += width * height
		return true
	}
	return false
}

// searchLevels finds the last index of the best fit level for height k, where k is a
// quantized value.
//
// k+1 is used as the search key: because level heights are quantized, k+1 never appears
// in the list, so the search lands in the gap between the run of levels with height k
// and the next quantum, yielding the last index among equal heights.
func searchLevels(levels []horizonLevel, k int) int {
	key := k + 1
	from, to := 0, len(levels)-1
	var mid, midSize int

	if to < 0 {
		return 0
	}

	for from <= to {
		mid = (from + to) / 2
		midSize = levels[mid].height
		if key < midSize {
			to = mid - 1
		} else {
			from = mid + 1
		}
	}

	switch {
	case midSize < k:
		return mid + 1
	case midSize > k:
		return max(mid-1, 0)
	default:
		return mid
	}
}

// alignUp rounds x up to a multiple of align, which must be a power of two.
func alignUp(x, align int) int {
	return (x + align - 1) &^ (align - 1)
}

// vim: ts=4
