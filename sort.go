package atlaspack

import (
	"cmp"
	"slices"
)

// SortFunc is a prototype for a function that compares two rectangle sizes, returning a
// standard comparer result of -1 for less-than, 1 for greater-than, or 0 for equal to.
//
// The provided implementations all sort in descending order, which is what offline
// packing wants: placing large rectangles first gives every algorithm its best shot at
// a tight result.
type SortFunc func(a, b Size) int

// SortArea compares two rectangle sizes in descending order by total area.
func SortArea(a, b Size) int {
	return cmp.Compare(b.Area(), a.Area())
}

// SortPerimeter compares two rectangle sizes in descending order by perimeter.
func SortPerimeter(a, b Size) int {
	return cmp.Compare(b.Perimeter(), a.Perimeter())
}

// SortDiff compares two rectangle sizes in descending order by the difference between
// their width and height.
func SortDiff(a, b Size) int {
	return cmp.Compare(abs(b.Width-b.Height), abs(a.Width-a.Height))
}

// SortMinSide compares two rectangle sizes in descending order by their shortest side.
func SortMinSide(a, b Size) int {
	return cmp.Compare(b.MinSide(), a.MinSide())
}

// SortMaxSide compares two rectangle sizes in descending order by their longest side.
func SortMaxSide(a, b Size) int {
	return cmp.Compare(b.MaxSide(), a.MaxSide())
}

// PackAll sorts the given rectangles with the comparer and adds each to the packer,
// mutating their positions in place. A nil comparer packs in the given order.
//
// Returns the rectangles that could not be placed, or nil when all were packed. Note
// that the input slice is reordered when a comparer is given.
func PackAll(p Packer, rects []*Rect, compare SortFunc) []*Rect {
	if compare != nil {
		slices.SortStableFunc(rects, func(a, b *Rect) int {
			return compare(a.Size, b.Size)
		})
	}

	var failed []*Rect
	for _, rect := range rects {
		if !p.AddRect(rect) {
			failed = append(failed, rect)
		}
	}
	return failed
}

// vim: ts=4
