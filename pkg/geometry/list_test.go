package geometry

import (
	"testing"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
)

func TestListHitPicksClosest(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	near := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, mat)
	l := NewListOf(far, near)

	r := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	rec, ok := l.Hit(r, core.NewInterval(0.001, 1000), nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.T > 4.6 {
		t.Errorf("List.Hit returned the far sphere (t=%v), want the near one", rec.T)
	}
}

func TestListPDFValueIsUniformAverage(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	s1 := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	s2 := NewSphere(core.NewVec3(0, 0, 1), 0.5, mat)
	l := NewListOf(s1, s2)

	origin := core.NewVec3(5, 5, 5)
	direction := core.NewVec3(-1, -1, -1)
	want := 0.5*s1.PDFValue(origin, direction) + 0.5*s2.PDFValue(origin, direction)
	if got := l.PDFValue(origin, direction); got != want {
		t.Errorf("List.PDFValue = %v, want %v", got, want)
	}
}

func TestListOfEmptyListDefaults(t *testing.T) {
	l := NewList()
	if got := l.PDFValue(core.Vec3{}, core.NewVec3(0, 0, 1)); got != 0 {
		t.Errorf("PDFValue on empty list = %v, want 0", got)
	}
	got := l.Random(core.NewSampler(1), core.Vec3{})
	if got != core.NewVec3(1, 0, 0) {
		t.Errorf("Random on empty list = %v, want (1,0,0)", got)
	}
}

func TestListBoundingBoxUnionsChildren(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	s1 := NewSphere(core.NewVec3(-5, 0, 0), 1, mat)
	s2 := NewSphere(core.NewVec3(5, 0, 0), 1, mat)
	l := NewListOf(s1, s2)

	box := l.BoundingBox()
	if box.X.Min > -6 || box.X.Max < 6 {
		t.Errorf("List.BoundingBox() = %v, want it to span both spheres", box)
	}
}
