package material

import (
	"math"
	"testing"

	"github.com/rlowe/pathtracer/pkg/core"
)

func TestLambertianScatterPdfMatchesScatteringPdf(t *testing.T) {
	lam := NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	rIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	s := core.NewSampler(11)
	srec, ok := lam.Scatter(rIn, hit, s)
	if !ok {
		t.Fatal("expected Lambertian to scatter")
	}
	if srec.SkipPdf {
		t.Fatal("Lambertian scatter should not skip the PDF")
	}

	direction := srec.Pdf.Generate(s)
	scattered := core.NewRayAtTime(hit.Point, direction, 0)

	pdfVal := srec.Pdf.Value(direction)
	scatteringPdf := lam.ScatteringPDF(rIn, hit, scattered)

	if math.Abs(pdfVal-scatteringPdf) > 1e-9 {
		t.Errorf("Lambertian cosine pdf (%v) should equal scattering_pdf (%v)", pdfVal, scatteringPdf)
	}
}

func TestLambertianScatteringPdfNonNegative(t *testing.T) {
	lam := NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0)}
	rIn := core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0))

	below := core.NewRayAtTime(hit.Point, core.NewVec3(0, -1, 0), 0)
	if pdf := lam.ScatteringPDF(rIn, hit, below); pdf != 0 {
		t.Errorf("ScatteringPDF below the hemisphere = %v, want 0", pdf)
	}
}

func TestMetalScatterSkipsPdf(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0)
	hit := HitRecord{Point: core.Vec3{}, Normal: core.NewVec3(0, 1, 0)}
	rIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0))

	s := core.NewSampler(2)
	srec, ok := metal.Scatter(rIn, hit, s)
	if !ok {
		t.Fatal("expected Metal to scatter")
	}
	if !srec.SkipPdf {
		t.Error("Metal scatter should skip the PDF")
	}
	if srec.SkipPdfRay.Direction.Y <= 0 {
		t.Errorf("reflected ray should point away from the surface, got %v", srec.SkipPdfRay.Direction)
	}
}

func TestDiffuseLightOneSided(t *testing.T) {
	light := NewDiffuseLightColor(core.NewVec3(4, 4, 4))
	frontHit := HitRecord{FrontFace: true}
	backHit := HitRecord{FrontFace: false}

	if got := light.Emitted(core.Ray{}, frontHit, 0, 0, core.Vec3{}); got != (core.Vec3{4, 4, 4}) {
		t.Errorf("front-face emission = %v, want (4,4,4)", got)
	}
	if got := light.Emitted(core.Ray{}, backHit, 0, 0, core.Vec3{}); got != (core.Vec3{}) {
		t.Errorf("back-face emission = %v, want black", got)
	}
}
