package material

import (
	"math"
	"testing"

	"github.com/rlowe/pathtracer/pkg/core"
)

func TestReflectanceIsOneAtGrazingSchlick(t *testing.T) {
	r := Reflectance(0, 1.5)
	if r < 0.9 {
		t.Errorf("Reflectance at cosine=0 should approach 1, got %v", r)
	}
}

func TestReflectanceAtNormalIncidenceMatchesR0(t *testing.T) {
	eta := 1.5
	r0 := math.Pow((1-eta)/(1+eta), 2)
	got := Reflectance(1, eta)
	if math.Abs(got-r0) > 1e-9 {
		t.Errorf("Reflectance(1, %v) = %v, want r0 = %v", eta, got, r0)
	}
}

func TestDielectricAttenuationIsWhite(t *testing.T) {
	d := NewDielectric(1.5)
	hit := HitRecord{Point: core.Vec3{}, Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	rIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0.1, -1, 0))

	s := core.NewSampler(4)
	srec, ok := d.Scatter(rIn, hit, s)
	if !ok {
		t.Fatal("expected Dielectric to always scatter")
	}
	if srec.Attenuation != (core.Vec3{1, 1, 1}) {
		t.Errorf("Dielectric attenuation = %v, want (1,1,1)", srec.Attenuation)
	}
	if !srec.SkipPdf {
		t.Error("Dielectric scatter should skip the PDF")
	}
}
