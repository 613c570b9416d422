package geometry

import (
	"math"
	"testing"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
)

func TestQuadHitBarycentricBounds(t *testing.T) {
	mat := material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))
	q := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)

	center := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	if _, ok := q.Hit(center, core.NewInterval(0.001, math.Inf(1)), nil); !ok {
		t.Error("expected ray through quad center to hit")
	}

	outside := core.NewRay(core.NewVec3(5, 5, -5), core.NewVec3(0, 0, 1))
	if _, ok := q.Hit(outside, core.NewInterval(0.001, math.Inf(1)), nil); ok {
		t.Error("expected ray outside the quad's extent to miss")
	}
}

// TestQuadPDFConvergesToOne mirrors the cosine-sampler convergence check
// for a quad light: averaging 1/pdf_value over directions drawn by Random
// estimates the quad's solid angle, so its ratio to the analytic value
// should converge to one.
func TestQuadPDFConvergesToOne(t *testing.T) {
	mat := material.NewDiffuseLightColor(core.NewVec3(1, 1, 1))
	q := NewQuad(core.NewVec3(-1, -1, 5), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)
	origin := core.NewVec3(0, 0, 0)

	s := core.NewSampler(3)
	const n = 200_000
	sum := 0.0
	invPdfSum := 0.0
	for i := 0; i < n; i++ {
		dir := q.Random(s, origin)
		pdfVal := q.PDFValue(origin, dir)
		if pdfVal > 0 {
			sum += 1.0
			invPdfSum += 1.0 / pdfVal
		}
	}
	hitFraction := sum / n
	if hitFraction < 0.99 {
		t.Errorf("expected nearly all sampled directions to hit the quad, got hit fraction %v", hitFraction)
	}

	// Analytic solid angle of a 2x2 square centered on the axis at distance 5.
	solidAngle := 4 * math.Asin(2*2/math.Sqrt((2*2+4*5*5)*(2*2+4*5*5)))
	if ratio := (invPdfSum / n) / solidAngle; math.Abs(ratio-1) > 0.01 {
		t.Errorf("estimated/analytic solid angle = %v, want ~1", ratio)
	}
}
