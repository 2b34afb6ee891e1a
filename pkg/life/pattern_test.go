package life

import (
	"slices"
	"testing"
)

func TestGliderTranslation(t *testing.T) {
	u := newDeadUniverse(13, 13)
	u.MakeGlider(5, 5)

	if u.Population() != 5 {
		t.Fatalf("glider stamped %d cells, expected 5", u.Population())
	}

	// The glider translates by (1,1) every four generations.
	for i := 0; i < 4; i++ {
		u.Tick()
	}

	want := newDeadUniverse(13, 13)
	want.MakeGlider(6, 6)
	if !slices.Equal(u.Cells(), want.Cells()) {
		t.Fatal("glider did not translate by (1,1) after four ticks")
	}
}

func TestGliderWrapsNegativeAnchor(t *testing.T) {
	u := newDeadUniverse(9, 9)
	u.MakeGlider(-1, -1)

	if u.Population() != 5 {
		t.Fatalf("glider stamped %d cells, expected 5", u.Population())
	}

	// Anchor -1 is congruent to 8 on a 9-cell axis.
	want := newDeadUniverse(9, 9)
	want.MakeGlider(8, 8)
	if !slices.Equal(u.Cells(), want.Cells()) {
		t.Fatal("negative anchor did not wrap to the congruent position")
	}
}

func TestPulsarPeriodThree(t *testing.T) {
	u := newDeadUniverse(21, 21)
	u.MakePulsar(10, 10)

	if u.Population() != 48 {
		t.Fatalf("pulsar stamped %d cells, expected 48", u.Population())
	}

	start := append([]Cell(nil), u.Cells()...)
	u.Tick()
	if slices.Equal(u.Cells(), start) {
		t.Fatal("pulsar must oscillate, not hold still")
	}
	u.Tick()
	u.Tick()
	if !slices.Equal(u.Cells(), start) {
		t.Fatal("pulsar did not return to its phase after three ticks")
	}
}

func TestPulsarAnchorBeyondBounds(t *testing.T) {
	u := newDeadUniverse(15, 15)
	u.MakePulsar(100, -40)

	if u.Population() != 48 {
		t.Fatalf("pulsar stamped %d cells, expected 48", u.Population())
	}
	// 100 ≡ 10 and -40 ≡ 5 on a 15-cell axis.
	want := newDeadUniverse(15, 15)
	want.MakePulsar(10, 5)
	if !slices.Equal(u.Cells(), want.Cells()) {
		t.Fatal("out-of-range anchor did not wrap to the congruent position")
	}
}
