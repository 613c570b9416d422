package geometry

import (
	"math"
	"testing"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
)

func TestTranslateInverse(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	offset := core.NewVec3(5, 0, 0)
	translated := NewTranslate(sphere, offset)

	r := core.NewRay(core.NewVec3(5, 0, -5), core.NewVec3(0, 0, 1))
	rec, ok := translated.Hit(r, core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected translated sphere to be hit")
	}
	if math.Abs(rec.Point.X-5) > 1e-9 {
		t.Errorf("hit point X = %v, want 5", rec.Point.X)
	}
}

func TestRotateYIdentityAtZero(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	box := MakeBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), mat)
	rotated := NewRotateY(box, 0)

	r := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	want, wantOK := box.Hit(r, core.NewInterval(0.001, math.Inf(1)), nil)
	got, gotOK := rotated.Hit(r, core.NewInterval(0.001, math.Inf(1)), nil)

	if wantOK != gotOK {
		t.Fatalf("hit mismatch: want %v got %v", wantOK, gotOK)
	}
	if math.Abs(want.T-got.T) > 1e-9 {
		t.Errorf("T mismatch at theta=0: want %v got %v", want.T, got.T)
	}
}

func TestRotateYComposedWithInverseIsIdentity(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	box := MakeBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), mat)
	forward := NewRotateY(box, 30)
	roundTrip := NewRotateY(forward, -30)

	r := core.NewRay(core.NewVec3(3, 0.2, 0.3), core.NewVec3(-1, 0, 0))
	want, wantOK := box.Hit(r, core.NewInterval(0.001, math.Inf(1)), nil)
	got, gotOK := roundTrip.Hit(r, core.NewInterval(0.001, math.Inf(1)), nil)

	if wantOK != gotOK {
		t.Fatalf("hit mismatch: want %v got %v", wantOK, gotOK)
	}
	if wantOK && math.Abs(want.T-got.T) > 1e-6 {
		t.Errorf("T mismatch after round trip: want %v got %v", want.T, got.T)
	}
}

// TestScaleBoundingBoxHandlesNegativeFactor exercises the case a
// two-extremal-point computation gets wrong: a negative scale factor
// flips which corner is the new min along that axis, which only the
// full eight-corner sweep accounts for correctly.
func TestScaleBoundingBoxHandlesNegativeFactor(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	box := MakeBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 3), mat)
	scaled := NewScale(box, core.NewVec3(-2, 0.5, 1))

	// The inner box's X axis is [0,1] padded to [-0.00005,1.00005] by its
	// faces' bounding boxes; scaling by -2 maps that to [-2.0001,0.0001].
	got := scaled.BoundingBox()
	if math.Abs(got.X.Min-(-2.0001)) > 1e-9 || math.Abs(got.X.Max-0.0001) > 1e-9 {
		t.Errorf("scaled box X = %v, want [-2.0001,0.0001]", got.X)
	}
}
