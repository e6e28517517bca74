package atlaspack

import "testing"

func TestBinaryTreeExactFit(t *testing.T) {
	p := New(64, 64, BinaryTree)

	r := addOK(t, p, 64, 64)
	if !r.Point.Eq(NewPoint(0, 0)) {
		t.Errorf("rect at %s, want <0, 0>", r.Point.String())
	}
	if p.Coverage() != 1.0 {
		t.Errorf("coverage = %v, want 1.0", p.Coverage())
	}

	rect := NewRectSize(1, 1)
	if p.AddRect(&rect) {
		t.Error("added a rect to a filled tree")
	}
}

func TestBinaryTreeVerticalCutGutter(t *testing.T) {
	p := New(64, 64, BinaryTree)

	// full-height columns separated by the one-pixel gutter of each cut
	positions := []Point{{0, 0}, {31, 0}, {62, 0}}
	for i, pos := range positions {
		w := 30
		if i == 2 {
			w = 2 // exactly the final remainder
		}
		r := addOK(t, p, w, 64)
		if !r.Point.Eq(pos) {
			t.Errorf("rect %d at %s, want %s", i, r.Point.String(), pos.String())
		}
	}

	rect := NewRectSize(1, 1)
	if p.AddRect(&rect) {
		t.Error("added a rect with every node filled")
	}
}

func TestBinaryTreeHorizontalCutGutter(t *testing.T) {
	p := New(64, 64, BinaryTree)

	positions := []Point{{0, 0}, {0, 21}, {0, 42}}
	for i, pos := range positions {
		r := addOK(t, p, 64, 20)
		if !r.Point.Eq(pos) {
			t.Errorf("rect %d at %s, want %s", i, r.Point.String(), pos.String())
		}
	}

	// only a 64x1 sliver remains below the third cut
	rect := NewRectSize(64, 20)
	if p.AddRect(&rect) {
		t.Error("added a fourth full-width rect")
	}
	sliver := NewRectSize(64, 1)
	if !p.AddRect(&sliver) {
		t.Error("failed to fill the remaining sliver")
	}
	if !sliver.Point.Eq(NewPoint(0, 63)) {
		t.Errorf("sliver at %s, want <0, 63>", sliver.Point.String())
	}
}

// vim: ts=4
