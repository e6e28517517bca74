// Package atlas stitches many small images into a single backing image, allocating
// space with the packing algorithms of the parent package.
//
// The backing image is divided into fixed-size chunks, each owning its own packer, and
// grows on demand by doubling the height and width alternately up to a configured
// maximum. Growing invalidates previously returned texture coordinates; see Epoch.
//
// An Atlas is not safe for concurrent use.
package atlas

import (
	"image"

	"github.com/SapphireLynx/atlaspack"
	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

const (
	// DefaultChunkSize is the default extent of the per-packer chunks.
	DefaultChunkSize = 512
	// DefaultMaxSize is the default maximum extent of the backing image.
	DefaultMaxSize = 4096
)

// Config holds the configuration for an Atlas. The zero value of every field selects a
// sensible default.
type Config struct {
	// ChunkSize is the extent of the square chunks the atlas is divided into, each of
	// which owns its own packer. No single entry may exceed it.
	//
	// Default: 512
	ChunkSize int
	// MaxWidth is the maximum width the backing image may grow to. Growth doubles one
	// dimension at a time and never exceeds this value.
	//
	// Default: 4096
	MaxWidth int
	// MaxHeight is the maximum height the backing image may grow to.
	//
	// Default: 4096
	MaxHeight int
	// Border is the amount of empty pixels placed around every entry, for sampling
	// bleed protection. Values of 0 or less pack entries tightly.
	//
	// Default: 0
	Border int
	// Algorithm selects the packing algorithm used by each chunk.
	//
	// Default: atlaspack.Skyline
	Algorithm atlaspack.Algorithm
}

// Region describes where an inserted image was placed.
type Region struct {
	// Rect is the placement of the source image within the atlas, border excluded.
	Rect atlaspack.Rect
	// U1, V1, U2, V2 are the normalized coordinates of Rect within the backing image
	// at the time of placement. They are stale once Epoch changes.
	U1, V1, U2, V2 float32
}

// chunk is a fixed-size area of the backing image with its own packer.
type chunk struct {
	x, y   int
	packer atlaspack.Packer
}

// Atlas accumulates images into a single backing image.
type Atlas struct {
	cfg     Config
	img     *image.RGBA
	chunks  []chunk
	regions []atlaspack.Rect
	width   int
	height  int
	epoch   int
}

// New initializes an empty Atlas with the given configuration. The backing image is not
// allocated until the first insertion.
func New(cfg Config) *Atlas {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.MaxWidth <= 0 {
		cfg.MaxWidth = DefaultMaxSize
	}
	if cfg.MaxHeight <= 0 {
		cfg.MaxHeight = DefaultMaxSize
	}
	if cfg.Border < 0 {
		cfg.Border = 0
	}
	// the initial 2x2 chunk grid must fit
	cfg.MaxWidth = max(cfg.MaxWidth, cfg.ChunkSize*2)
	cfg.MaxHeight = max(cfg.MaxHeight, cfg.ChunkSize*2)
	return &Atlas{cfg: cfg}
}

// Insert allocates space for the given image, copies its pixels into the atlas, and
// returns the resulting region.
//
// Returns false when the image cannot be placed: either it exceeds the chunk size
// (border included), or the atlas is full and cannot grow any further.
func (a *Atlas) Insert(src image.Image) (Region, bool) {
	bounds := src.Bounds()
	border := a.cfg.Border
	rect := atlaspack.NewRectSize(bounds.Dx()+border*2, bounds.Dy()+border*2)
	if rect.IsEmpty() || rect.Width > a.cfg.ChunkSize || rect.Height > a.cfg.ChunkSize {
		return Region{}, false
	}

	if a.width == 0 {
		a.grow() // first init
	}
	for !a.stitch(&rect) {
		if !a.grow() {
			return Region{}, false
		}
	}

	inner := atlaspack.NewRect(rect.X+border, rect.Y+border, bounds.Dx(), bounds.Dy())
	xdraw.Copy(a.img, image.Pt(inner.X, inner.Y), src, bounds, xdraw.Src, nil)
	a.regions = append(a.regions, inner)

	return Region{
		Rect: inner,
		U1:   float32(inner.Left()) / float32(a.width),
		V1:   float32(inner.Top()) / float32(a.height),
		U2:   float32(inner.Right()) / float32(a.width),
		V2:   float32(inner.Bottom()) / float32(a.height),
	}, true
}

// stitch tries each chunk in turn until one accepts the rectangle, translating it to
// atlas coordinates on success.
func (a *Atlas) stitch(rect *atlaspack.Rect) bool {
	for i := range a.chunks {
		if a.chunks[i].packer.AddRect(rect) {
			rect.Offset(a.chunks[i].x, a.chunks[i].y)
			return true
		}
	}
	return false
}

// grow expands the backing image, doubling the height and width alternately, e.g.
// 1024x1024 -> 1024x2048 -> 2048x2048. Returns false once the maximum size is reached.
func (a *Atlas) grow() bool {
	if a.width == 0 {
		// initialize a 2x2 chunk grid
		a.width = a.cfg.ChunkSize * 2
		a.height = a.cfg.ChunkSize * 2
		a.img = image.NewRGBA(image.Rect(0, 0, a.width, a.height))
		a.addChunks(0, 0)
		return true
	}

	canW := a.width<<1 <= a.cfg.MaxWidth
	canH := a.height<<1 <= a.cfg.MaxHeight
	oldW, oldH := a.width, a.height
	switch {
	case !canW && !canH:
		return false
	case a.width == a.height && canH:
		a.height <<= 1
	case canW:
		a.width <<= 1
	default:
		a.height <<= 1
	}

	img := image.NewRGBA(image.Rect(0, 0, a.width, a.height))
	xdraw.Copy(img, image.Point{}, a.img, a.img.Bounds(), xdraw.Src, nil)
	a.img = img
	a.addChunks(oldW, oldH)

	// existing texture coordinates are stale now
	a.epoch++
	return true
}

// addChunks creates packers for every chunk cell outside the old extents.
func (a *Atlas) addChunks(oldWidth, oldHeight int) {
	size := a.cfg.ChunkSize
	for x := 0; x < a.width; x += size {
		for y := 0; y < a.height; y += size {
			if x < oldWidth && y < oldHeight {
				continue
			}
			a.chunks = append(a.chunks, chunk{
				x: x, y: y,
				packer: atlaspack.New(size, size, a.cfg.Algorithm),
			})
		}
	}
}

// Clear removes all entries and zeroes the backing image, keeping the current extents
// and chunk packers for reuse. The epoch is advanced, as all regions are invalid.
func (a *Atlas) Clear() {
	for i := range a.chunks {
		a.chunks[i].packer.Clear()
	}
	if a.img != nil {
		clear(a.img.Pix)
	}
	a.regions = a.regions[:0]
	a.epoch++
}

// Image returns the backing image, or nil before the first insertion. The memory is
// owned by the atlas and is replaced on growth.
func (a *Atlas) Image() *image.RGBA {
	return a.img
}

// Size returns the current extents of the backing image, which are zero before the
// first insertion.
func (a *Atlas) Size() (width, height int) {
	return a.width, a.height
}

// Epoch returns a counter that advances every time previously returned regions become
// invalid, i.e. when the atlas grows or is cleared.
func (a *Atlas) Epoch() int {
	return a.epoch
}

// Len returns the number of entries currently placed.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// Coverage returns the ratio of area occupied by entries (borders excluded) to the
// total area of the backing image.
func (a *Atlas) Coverage() float64 {
	if a.width == 0 {
		return 0
	}
	var area int
	for _, r := range a.regions {
		area += r.Area()
	}
	return float64(area) / (float64(a.width) * float64(a.height))
}

// DebugImage renders a copy of the atlas with every entry painted in a distinct solid
// color, providing a visual representation of the packing.
func (a *Atlas) DebugImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, a.width, a.height))
	if a.img != nil {
		xdraw.Copy(img, image.Point{}, a.img, a.img.Bounds(), xdraw.Src, nil)
	}
	for i, r := range a.regions {
		// step the hue so neighboring entries contrast
		tint := colorful.Hsv(float64(i*59%360), 0.65, 0.95)
		bounds := image.Rect(r.Left(), r.Top(), r.Right(), r.Bottom())
		xdraw.Draw(img, bounds, &image.Uniform{C: tint}, image.Point{}, xdraw.Src)
	}
	return img
}

// vim: ts=4
