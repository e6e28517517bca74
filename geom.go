package atlaspack

import "fmt"

// Point describes a location in 2D space.
type Point struct {
	// X is the location on the horizontal x-axis.
	X int `json:"x"`
	// Y is the location on the vertical y-axis.
	Y int `json:"y"`
}

// NewPoint initializes a new point with the specified coordinates.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Eq tests whether the receiver and another point have equal values.
func (p *Point) Eq(point Point) bool {
	return p.X == point.X && p.Y == point.Y
}

// String returns a string representation of the point.
func (p *Point) String() string {
	return fmt.Sprintf("<%v, %v>", p.X, p.Y)
}

// Size describes dimensions of an entity in 2D space.
type Size struct {
	// Width is the dimension on the horizontal x-axis.
	Width int `json:"width"`
	// Height is the dimension on the vertical y-axis.
	Height int `json:"height"`
	// ID is a user-defined identifier that can be used to differentiate this instance from
	// others. It is carried through packing untouched.
	ID int `json:"-"`
}

// NewSize creates a new size with specified dimensions.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// NewSizeID creates a new size with specified dimensions and unique identifier.
func NewSizeID(id, width, height int) Size {
	return Size{ID: id, Width: width, Height: height}
}

// Eq tests whether the receiver and another size have equal values. The ID field is ignored.
func (sz *Size) Eq(size Size) bool {
	return sz.Width == size.Width && sz.Height == size.Height
}

// String returns a string representation of the size.
func (sz *Size) String() string {
	return fmt.Sprintf("<%v, %v>", sz.Width, sz.Height)
}

// Area returns the total area (width * height).
func (sz *Size) Area() int {
	return sz.Width * sz.Height
}

// Perimeter returns the sum length of all sides.
func (sz *Size) Perimeter() int {
	return (sz.Width + sz.Height) << 1
}

// MaxSide returns the value of the greater side.
func (sz *Size) MaxSide() int {
	return max(sz.Width, sz.Height)
}

// MinSide returns the value of the lesser side.
func (sz *Size) MinSide() int {
	return min(sz.Width, sz.Height)
}

// Rect describes a location (top-left corner) and size in 2D space.
//
// A packer only ever reads the size of a rect given to it, and only ever writes the
// location, so a caller is free to use the ID field and retain pointers to passed rects.
type Rect struct {
	// Point is the location of the rectangle.
	Point
	// Size is the dimensions of the rectangle.
	Size
}

// NewRect initializes a new rectangle using the specified point and size values.
func NewRect(x, y, w, h int) Rect {
	return Rect{
		Point: Point{X: x, Y: y},
		Size:  Size{Width: w, Height: h},
	}
}

// NewRectSize initializes a new rectangle of the given size located at the origin, as
// expected by Packer.AddRect.
func NewRectSize(w, h int) Rect {
	return Rect{Size: Size{Width: w, Height: h}}
}

// Eq compares two rectangles to determine if the location and size is equal.
func (r *Rect) Eq(rect Rect) bool {
	return r.Point.Eq(rect.Point) && r.Size.Eq(rect.Size)
}

// String returns a string describing the rectangle.
func (r *Rect) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v>", r.X, r.Y, r.Width, r.Height)
}

// OffsetTo moves the rectangle to the specified absolute coordinates, leaving its size
// unchanged.
func (r *Rect) OffsetTo(x, y int) {
	r.X = x
	r.Y = y
}

// Offset moves the rectangle by the specified relative amount.
func (r *Rect) Offset(x, y int) {
	r.X += x
	r.Y += y
}

// Left returns the coordinate of the left-edge of the rectangle on the x-axis.
func (r *Rect) Left() int {
	return r.X
}

// Top returns the coordinate of the top-edge of the rectangle on the y-axis.
func (r *Rect) Top() int {
	return r.Y
}

// Right returns the coordinate of the right-edge of the rectangle on the x-axis.
func (r *Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the coordinate of the bottom-edge of the rectangle on the y-axis.
func (r *Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty tests whether the width or height of the rectangle is less than 1.
func (r *Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains tests whether the specified coordinates are within the bounds of the receiver.
func (r *Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.X+r.Width && r.Y <= y && y < r.Y+r.Height
}

// ContainsRect tests whether the specified rectangle is contained within the bounds of
// the receiver.
func (r *Rect) ContainsRect(rect Rect) bool {
	return r.X <= rect.X &&
		rect.X+rect.Width <= r.X+r.Width &&
		r.Y <= rect.Y &&
		rect.Y+rect.Height <= r.Y+r.Height
}

// Intersects tests whether the receiver has any overlap with the specified rectangle.
func (r *Rect) Intersects(rect Rect) bool {
	return rect.X < r.X+r.Width &&
		r.X < rect.X+rect.Width &&
		rect.Y < r.Y+r.Height &&
		r.Y < rect.Y+rect.Height
}

// vim: ts=4
