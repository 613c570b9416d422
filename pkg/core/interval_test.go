package core

import "testing"

func TestIntervalContainsSurrounds(t *testing.T) {
	iv := NewInterval(0, 10)

	if !iv.Contains(0) || !iv.Contains(10) {
		t.Error("Contains should be inclusive at the boundaries")
	}
	if iv.Surrounds(0) || iv.Surrounds(10) {
		t.Error("Surrounds should be strict at the boundaries")
	}
	if !iv.Surrounds(5) {
		t.Error("Surrounds(5) should be true for interval [0,10]")
	}
}

func TestIntervalClamp(t *testing.T) {
	iv := NewInterval(0, 10)
	cases := map[float64]float64{-5: 0, 15: 10, 4: 4}
	for in, want := range cases {
		if got := iv.Clamp(in); got != want {
			t.Errorf("Clamp(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestIntervalEmptyUniverse(t *testing.T) {
	if Empty.Contains(0) {
		t.Error("Empty interval should contain nothing")
	}
	if !Universe.Contains(1e300) || !Universe.Contains(-1e300) {
		t.Error("Universe interval should contain everything")
	}
}

func TestIntervalExpand(t *testing.T) {
	iv := NewInterval(1, 1).Expand(0.5)
	if iv.Min != 0.75 || iv.Max != 1.25 {
		t.Errorf("Expand(0.5) = %v, want [0.75, 1.25]", iv)
	}
}
