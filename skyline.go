package atlaspack

import "slices"

// skylineNode is one segment of the silhouette of the packed area: everything below y
// within [x, x+width) is occupied. The segments partition [0, packer width) exactly and
// are kept sorted by X ascending.
type skylineNode struct {
	X, Y, Width int
}

// skylinePacker tracks the current silhouette of the packed area.
type skylinePacker struct {
	packerBase
	nodes []skylineNode
}

func newSkyline(width, height int) *skylinePacker {
	p := &skylinePacker{packerBase: newPackerBase(width, height)}
	p.nodes = make([]skylineNode, 1, 16)
	p.nodes[0] = skylineNode{Width: width}
	return p
}

func (p *skylinePacker) Clear() {
	p.area = 0
	p.nodes = p.nodes[:1]
	p.nodes[0] = skylineNode{Width: p.width}
}

func (p *skylinePacker) AddRect(rect *Rect) bool {
	width, height := rect.Width, rect.Height
	checkSize(width, height)
	if width > p.width || height > p.height {
		return false
	}

	// Find a position for the new rectangle, trying every segment as a candidate left
	// edge.
	bestWidth := p.width + 1
	bestX := 0
	bestY := p.height + 1
	bestIndex := -1
fitting:
	for index := range p.nodes {
		// Can a width x height rectangle fit in the free space above the segments
		// starting at index?
		x := p.nodes[index].X
		if x+width > p.width {
			continue
		}

		y := p.nodes[index].Y
		for i, widthLeft := index, width; widthLeft > 0; i++ {
			y = max(y, p.nodes[i].Y)
			if y+height > p.height {
				continue fitting
			}
			widthLeft -= p.nodes[i].Width
		}

		// Minimize the y position first, then the width of the skyline segment, which
		// prefers filling narrow notches.
		if y < bestY || (y == bestY && p.nodes[index].Width < bestWidth) {
			bestIndex = index
			bestWidth = p.nodes[index].Width
			bestX = x
			bestY = y
		}
	}

	if bestIndex == -1 {
		return false
	}

	p.addLevel(bestIndex, bestX, bestY, width, height)
	rect.OffsetTo(bestX, bestY)
	p.area += width * height
	return true
}

// addLevel updates the skyline to include a width x height rectangle located at (x, y).
func (p *skylinePacker) addLevel(index, x, y, width, height int) {
	p.nodes = slices.Insert(p.nodes, index, skylineNode{X: x, Y: y + height, Width: width})

	// The new segment shadows all or part of the following ones; shrink them, removing
	// any that are fully consumed.
	for i := index + 1; i < len(p.nodes); {
		prevEnd := p.nodes[i-1].X + p.nodes[i-1].Width
		if p.nodes[i].X >= prevEnd {
			break
		}
		shrink := prevEnd - p.nodes[i].X
		p.nodes[i].X += shrink
		p.nodes[i].Width -= shrink
		if p.nodes[i].Width > 0 {
			// only partially consumed
			break
		}
		p.nodes = slices.Delete(p.nodes, i, i+1)
	}

	// Merge neighboring segments that ended up at the same height.
	for i := 0; i < len(p.nodes)-1; {
		if p.nodes[i].Y == p.nodes[i+1].Y {
			p.nodes[i].Width += p.nodes[i+1].Width
			p.nodes = slices.Delete(p.nodes, i+1, i+2)
		} else {
			i++
		}
	}
}

// vim: ts=4
