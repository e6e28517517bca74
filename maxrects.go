package atlaspack

import "math"

// maxRectsPacker tracks the set of maximal free rectangles, scoring candidate
// placements by best short side fit. The bookkeeping is heavier than the other
// strategies, but the coverage is typically the best of all of them.
type maxRectsPacker struct {
	packerBase
	freeRects []Rect
	// newFreeRects collects the rectangles produced by splitting during a single
	// placement, deduplicated before being merged back into freeRects.
	newFreeRects []Rect
	newLastSize  int
}

func newMaxRects(width, height int) *maxRectsPacker {
	p := &maxRectsPacker{packerBase: newPackerBase(width, height)}
	p.freeRects = append(p.freeRects, NewRect(0, 0, width, height))
	return p
}

func (p *maxRectsPacker) Clear() {
	p.area = 0
	p.freeRects = p.freeRects[:0]
	p.freeRects = append(p.freeRects, NewRect(0, 0, p.width, p.height))
	p.newFreeRects = p.newFreeRects[:0]
}

func (p *maxRectsPacker) AddRect(rect *Rect) bool {
	width, height := rect.Width, rect.Height
	checkSize(width, height)
	if width > p.width || height > p.height {
		return false
	}

	node, ok := p.findBestShortSideFit(width, height)
	if !ok {
		return false
	}

	p.placeRect(node)
	rect.OffsetTo(node.X, node.Y)
	p.area += width * height
	return true
}

// findBestShortSideFit chooses the free rectangle where the placement leaves the
// smallest leftover on its shorter side, breaking ties by the longer side.
func (p *maxRectsPacker) findBestShortSideFit(width, height int) (Rect, bool) {
	var bestNode Rect
	bestShortSideFit := math.MaxInt
	bestLongSideFit := math.MaxInt
	found := false

	for _, freeRect := range p.freeRects {
		if freeRect.Width < width || freeRect.Height < height {
			continue
		}

		leftoverHoriz := freeRect.Width - width
		leftoverVert := freeRect.Height - height
		shortSideFit := min(leftoverHoriz, leftoverVert)
		longSideFit := max(leftoverHoriz, leftoverVert)

		if shortSideFit < bestShortSideFit ||
			(shortSideFit == bestShortSideFit && longSideFit < bestLongSideFit) {
			bestNode = NewRect(freeRect.X, freeRect.Y, width, height)
			bestShortSideFit = shortSideFit
			bestLongSideFit = longSideFit
			found = true
		}
	}
	return bestNode, found
}

// placeRect splits every free rectangle the node overlaps and prunes the results.
func (p *maxRectsPacker) placeRect(node Rect) {
	for i := 0; i < len(p.freeRects); {
		if p.splitFreeNode(&p.freeRects[i], &node) {
			last := len(p.freeRects) - 1
			p.freeRects[i] = p.freeRects[last]
			p.freeRects = p.freeRects[:last]
		} else {
			i++
		}
	}
	p.pruneFreeList()
}

// splitFreeNode reports whether the used node overlaps the free node and, if so,
// collects the up-to-four maximal remainders.
func (p *maxRectsPacker) splitFreeNode(freeNode, usedNode *Rect) bool {
	if usedNode.X >= freeNode.X+freeNode.Width || usedNode.X+usedNode.Width <= freeNode.X ||
		usedNode.Y >= freeNode.Y+freeNode.Height || usedNode.Y+usedNode.Height <= freeNode.Y {
		return false
	}

	p.newLastSize = len(p.newFreeRects)

	// remainders above and below the used node
	if usedNode.Y > freeNode.Y && usedNode.Y < freeNode.Y+freeNode.Height {
		newNode := *freeNode
		newNode.Height = usedNode.Y - newNode.Y
		p.insertNewFreeRect(newNode)
	}
	if usedNode.Y+usedNode.Height < freeNode.Y+freeNode.Height {
		newNode := *freeNode
		newNode.Y = usedNode.Y + usedNode.Height
		newNode.Height = freeNode.Y + freeNode.Height - newNode.Y
		p.insertNewFreeRect(newNode)
	}

	// remainders left and right of the used node
	if usedNode.X > freeNode.X && usedNode.X < freeNode.X+freeNode.Width {
		newNode := *freeNode
		newNode.Width = usedNode.X - newNode.X
		p.insertNewFreeRect(newNode)
	}
	if usedNode.X+usedNode.Width < freeNode.X+freeNode.Width {
		newNode := *freeNode
		newNode.X = usedNode.X + usedNode.Width
		newNode.Width = freeNode.X + freeNode.Width - newNode.X
		p.insertNewFreeRect(newNode)
	}

	return true
}

// insertNewFreeRect adds a remainder unless an equal-or-larger one from this placement
// already covers it, evicting any it covers itself.
func (p *maxRectsPacker) insertNewFreeRect(newFreeRect Rect) {
	for i := 0; i < p.newLastSize; {
		if p.newFreeRects[i].ContainsRect(newFreeRect) {
			return
		}
		if newFreeRect.ContainsRect(p.newFreeRects[i]) {
			// Remove the obsolete rect while keeping the older entries, which the
			// caller is still iterating, in front of the newest ones.
			p.newLastSize--
			p.newFreeRects[i] = p.newFreeRects[p.newLastSize]

			last := len(p.newFreeRects) - 1
			p.newFreeRects[p.newLastSize] = p.newFreeRects[last]
			p.newFreeRects = p.newFreeRects[:last]
			continue
		}
		i++
	}
	p.newFreeRects = append(p.newFreeRects, newFreeRect)
}

// pruneFreeList drops new remainders contained by surviving free rectangles, then
// merges the rest into the free list.
func (p *maxRectsPacker) pruneFreeList() {
	for i := 0; i < len(p.freeRects); i++ {
		for j := 0; j < len(p.newFreeRects); {
			if p.freeRects[i].ContainsRect(p.newFreeRects[j]) {
				last := len(p.newFreeRects) - 1
				p.newFreeRects[j] = p.newFreeRects[last]
				p.newFreeRects = p.newFreeRects[:last]
				continue
			}
			j++
		}
	}
	p.freeRects = append(p.freeRects, p.newFreeRects...)
	p.newFreeRects = p.newFreeRects[:0]
}

// vim: ts=4
