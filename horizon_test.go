package atlaspack

import "testing"

func TestHorizonSharesLevelAcrossRun(t *testing.T) {
	p := New(128, 128, Horizon)

	// heights 8, 8 and 6 all quantize to the same 8-high level
	positions := []Point{{0, 0}, {10, 0}, {20, 0}}
	for i, h := range []int{8, 8, 6} {
		r := addOK(t, p, 10, h)
		if !r.Point.Eq(positions[i]) {
			t.Errorf("rect %d at %s, want %s", i, r.Point.String(), positions[i].String())
		}
	}

	// a taller rect opens a new level below, and the next short rect returns to the
	// first level
	tall := addOK(t, p, 10, 20)
	if !tall.Point.Eq(NewPoint(0, 8)) {
		t.Errorf("tall rect at %s, want <0, 8>", tall.Point.String())
	}
	back := addOK(t, p, 10, 8)
	if !back.Point.Eq(NewPoint(30, 0)) {
		t.Errorf("rect at %s, want <30, 0>", back.Point.String())
	}
}

func TestHorizonPrefersTighterNewLevel(t *testing.T) {
	p := New(128, 128, Horizon)

	addOK(t, p, 10, 30) // 32-high level at y=0

	// while room remains, a short rect must not be stuffed into the much taller
	// level
	r := addOK(t, p, 10, 8)
	if !r.Point.Eq(NewPoint(0, 32)) {
		t.Errorf("short rect at %s, want a new level at <0, 32>", r.Point.String())
	}
}

func TestHorizonFallsBackToTallerLevel(t *testing.T) {
	// no room for a new 8-high level below the 32-high one, so the short rect goes
	// into it
	p := New(128, 36, Horizon)

	addOK(t, p, 10, 30)
	r := addOK(t, p, 10, 8)
	if !r.Point.Eq(NewPoint(10, 0)) {
		t.Errorf("short rect at %s, want <10, 0> inside the tall level", r.Point.String())
	}
}

func TestHorizonOpensLevelWhenWidthExhausted(t *testing.T) {
	p := New(32, 128, Horizon)

	addOK(t, p, 16, 8)
	addOK(t, p, 16, 8)
	r := addOK(t, p, 16, 8)
	if !r.Point.Eq(NewPoint(0, 8)) {
		t.Errorf("rect at %s, want <0, 8>", r.Point.String())
	}
}

func TestHorizonFailsWhenStripsExhausted(t *testing.T) {
	p := New(16, 16, Horizon)

	// each level is at least 8 high, so two exhaust the packer
	addOK(t, p, 16, 8)
	addOK(t, p, 16, 8)

	rect := NewRectSize(1, 1)
	if p.AddRect(&rect) {
		t.Error("added a rect with no level space remaining")
	}
}

func TestSearchLevels(t *testing.T) {
	levels := []horizonLevel{
		{height: 8}, {height: 8}, {height: 8},
		{height: 12},
		{height: 20}, {height: 20},
	}
	cases := []struct {
		k    int
		want int
	}{
		{8, 2},  // last of the equal run
		{12, 3}, //
		{20, 5}, // last of the equal run
		{16, 4}, // between quanta: first level tall enough
		{4, 0},  // shorter than everything
		{24, 6}, // taller than everything: one past the end
	}
	for _, tc := range cases {
		if got := searchLevels(levels, tc.k); got != tc.want {
			t.Errorf("searchLevels(%d) = %d, want %d", tc.k, got, tc.want)
		}
	}
	if got := searchLevels(nil, 8); got != 0 {
		t.Errorf("searchLevels(empty) = %d, want 0", got)
	}
}

// vim: ts=4
