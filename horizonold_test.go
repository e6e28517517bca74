package atlaspack

import "testing"

func TestHorizonOldLineWrap(t *testing.T) {
	p := New(64, 64, HorizonOld)

	// one 60-wide rect per line, six lines
	for i := 0; i < 6; i++ {
		r := addOK(t, p, 60, 10)
		if !r.Point.Eq(NewPoint(0, i*10)) {
			t.Errorf("rect %d at %s, want <0, %d>", i, r.Point.String(), i*10)
		}
	}

	rect := NewRectSize(60, 10)
	if p.AddRect(&rect) {
		t.Error("added a seventh line to an exhausted region")
	}
}

func TestHorizonOldGrowth(t *testing.T) {
	// the region grows 512x512 -> 512x1024 -> 1024x1024 -> 1024x2048 -> 2048x2048,
	// continuing into the right half after each width growth
	p := New(2048, 2048, HorizonOld)

	// the right half after the final width growth is 1024 wide and holds two
	// rects per line
	want := []Point{
		{0, 0}, {0, 500},
		{512, 0}, {512, 500}, {512, 1000},
		{0, 1500}, {500, 1500},
		{1024, 0}, {1524, 0},
		{1024, 500}, {1524, 500},
		{1024, 1000}, {1524, 1000},
		{1024, 1500}, {1524, 1500},
	}
	placed := make([]Rect, 0, len(want))
	for i, pos := range want {
		r := addOK(t, p, 500, 500)
		if !r.Point.Eq(pos) {
			t.Errorf("rect %d at %s, want %s", i, r.Point.String(), pos.String())
		}
		placed = append(placed, r)
	}

	rect := NewRectSize(500, 500)
	if p.AddRect(&rect) {
		t.Error("added a sixteenth 500x500 rect to a full region")
	}

	bounds := NewRect(0, 0, 2048, 2048)
	for i := range placed {
		if !bounds.ContainsRect(placed[i]) {
			t.Errorf("%s escapes bounds", placed[i].String())
		}
		for j := i + 1; j < len(placed); j++ {
			if placed[i].Intersects(placed[j]) {
				t.Errorf("%s and %s intersect", placed[i].String(), placed[j].String())
			}
		}
	}
}

func TestHorizonOldNonPowerOfTwoExtents(t *testing.T) {
	// growth is clamped to the packer extents, so nothing may be placed past them
	p := New(600, 600, HorizonOld)

	var placed []Rect
	for {
		rect := NewRectSize(400, 100)
		if !p.AddRect(&rect) {
			break
		}
		placed = append(placed, rect)
	}
	if len(placed) == 0 {
		t.Fatal("nothing placed")
	}

	bounds := NewRect(0, 0, 600, 600)
	for i := range placed {
		if !bounds.ContainsRect(placed[i]) {
			t.Errorf("%s escapes bounds", placed[i].String())
		}
		for j := i + 1; j < len(placed); j++ {
			if placed[i].Intersects(placed[j]) {
				t.Errorf("%s and %s intersect", placed[i].String(), placed[j].String())
			}
		}
	}
}

// vim: ts=4
