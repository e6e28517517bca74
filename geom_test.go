package atlaspack

import "testing"

func TestRectQueries(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Left() != 10 || r.Top() != 20 || r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("edges of %s = %d,%d,%d,%d", r.String(), r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	if r.Area() != 1200 {
		t.Errorf("area = %d, want 1200", r.Area())
	}
	if r.IsEmpty() {
		t.Error("non-empty rect reported empty")
	}
	if e := NewRectSize(0, 5); !e.IsEmpty() {
		t.Error("zero-width rect reported non-empty")
	}
}

func TestRectOffset(t *testing.T) {
	r := NewRectSize(8, 8)
	r.OffsetTo(3, 4)
	if !r.Point.Eq(NewPoint(3, 4)) {
		t.Errorf("OffsetTo placed rect at %s", r.Point.String())
	}
	r.Offset(1, -2)
	if !r.Point.Eq(NewPoint(4, 2)) {
		t.Errorf("Offset moved rect to %s", r.Point.String())
	}
	if r.Width != 8 || r.Height != 8 {
		t.Error("offset changed the rect size")
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	cases := []struct {
		b    Rect
		want bool
	}{
		{NewRect(5, 5, 10, 10), true},
		{NewRect(10, 0, 5, 5), false}, // edges touch, no overlap
		{NewRect(0, 10, 5, 5), false},
		{NewRect(-5, -5, 6, 6), true},
		{NewRect(2, 2, 2, 2), true},
	}
	for _, tc := range cases {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s intersects %s = %v, want %v", a.String(), tc.b.String(), got, tc.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	bounds := NewRect(0, 0, 64, 64)
	inner := NewRect(0, 0, 64, 64)
	if !bounds.ContainsRect(inner) {
		t.Error("rect does not contain itself")
	}
	if !bounds.Contains(63, 63) || bounds.Contains(64, 0) {
		t.Error("point containment is not half-open")
	}
	outside := NewRect(60, 60, 5, 5)
	if bounds.ContainsRect(outside) {
		t.Errorf("%s contained by %s", outside.String(), bounds.String())
	}
}

// vim: ts=4
