// Package atlaspack packs small rectangles into a larger fixed-size rectangle, as used
// for allocating space within glyph and texture atlases.
//
// A packer is an insertion-only allocator: rectangles are never removed, and the only
// failure mode is running out of space. Callers that need to reclaim space must discard
// the packer (or Clear it) and re-pack.
//
// A packer instance is not safe for concurrent use; callers sharing one across
// goroutines must serialize access, typically with the same lock that guards the atlas
// storage it allocates from.
package atlaspack

// MaxDim is the maximum width/height a packer may be created with.
const MaxDim = 32767

// DefaultSize is a sane default extent for texture atlases, based off the maximum
// texture size of many modern GPUs.
const DefaultSize = 1024

// Algorithm identifies the packing strategy used by a Packer.
type Algorithm int

const (
	// Skyline tracks the upper silhouette of the packed area and places each rectangle
	// at the lowest position it fits. Best coverage, and fast enough; always a
	// reasonable choice.
	Skyline Algorithm = iota
	// Horizon maintains height-quantized levels filled left to right. Faster than
	// Skyline but less efficient.
	Horizon
	// HorizonOld is a legacy bump allocator that grows a region by doubling one
	// dimension at a time. Fastest, only good for rectangles with similar heights.
	HorizonOld
	// BinaryTree subdivides free space with recursive guillotine cuts. Very slow when
	// the extents are large (>512).
	BinaryTree
	// Power2Line buckets rectangles into rows whose heights are powers of two.
	Power2Line
	// MaxRects tracks every maximal free rectangle and scores placements by best
	// short side fit. Coverage on par with Skyline or better, but the bookkeeping
	// makes it the slowest of the set.
	MaxRects
)

// String returns the name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Skyline:
		return "Skyline"
	case Horizon:
		return "Horizon"
	case HorizonOld:
		return "HorizonOld"
	case BinaryTree:
		return "BinaryTree"
	case Power2Line:
		return "Power2Line"
	case MaxRects:
		return "MaxRects"
	}
	return "Unknown"
}

// Packer decides upon (x, y) positions for rectangles within a fixed-size area.
type Packer interface {
	// AddRect decides upon an (x, y) position for the given rectangle, leaving its
	// width and height unchanged, and offsets it there in place.
	//
	// Returns true on success. On failure the rectangle is left unmodified and no
	// placement is recorded; there is no free space remaining for a rectangle of that
	// size (which includes any size exceeding the packer extents).
	AddRect(rect *Rect) bool
	// Clear removes all tracked data, returning the packer to its initial empty state
	// without changing its extents. Backing storage is retained where possible.
	Clear()
	// Width returns the maximum extent on the x-axis.
	Width() int
	// Height returns the maximum extent on the y-axis.
	Height() int
	// Coverage returns the ratio of packed area to total area, in the range of 0.0 and
	// 1.0. Higher values indicate better packing.
	Coverage() float64
}

// New initializes a new Packer of the specified extents using the given algorithm.
//
// Both width and height must be in the range (0, MaxDim]; the algorithm must be one of
// the defined constants. Violations are programmer errors and panic.
func New(width, height int, algo Algorithm) Packer {
	switch algo {
	case Skyline:
		return newSkyline(width, height)
	case Horizon:
		return newHorizon(width, height)
	case HorizonOld:
		return newHorizonOld(width, height)
	case BinaryTree:
		return newBinaryTree(width, height)
	case Power2Line:
		return newPower2Line(width, height)
	case MaxRects:
		return newMaxRects(width, height)
	}
	panic("atlaspack: invalid algorithm specified")
}

// NewDefault initializes a new Packer of the specified extents using the recommended
// algorithm (Skyline, which has the best coverage and is fast enough).
func NewDefault(width, height int) Packer {
	return newSkyline(width, height)
}

// packerBase carries the extents and running packed area shared by every algorithm.
type packerBase struct {
	width  int
	height int
	area   int
}

func newPackerBase(width, height int) packerBase {
	if width <= 0 || height <= 0 || width > MaxDim || height > MaxDim {
		panic("atlaspack: width and height must be in range (0, 32767]")
	}
	return packerBase{width: width, height: height}
}

func (p *packerBase) Width() int {
	return p.width
}

func (p *packerBase) Height() int {
	return p.height
}

func (p *packerBase) Coverage() float64 {
	return float64(p.area) / (float64(p.width) * float64(p.height))
}

// checkSize guards against degenerate rectangle sizes, which are programmer errors.
func checkSize(width, height int) {
	if width <= 0 || height <= 0 {
		panic("atlaspack: rectangle width and height must be greater than 0")
	}
}

func abs(x int) int {
	if x >= 0 {
		return x
	}
	return -x
}

// vim: ts=4
