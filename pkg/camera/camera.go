// Package camera builds primary rays from a pinhole/thin-lens
// configuration: stratified per-pixel sampling, defocus-disk sampling
// for depth of field, and uniform shutter-time sampling for motion blur
// (spec §4.J, §6).
package camera

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
)

// Config is the caller-facing camera description (spec §6). Zero values
// are not valid defaults for most fields; callers should start from
// DefaultConfig and override what they need.
type Config struct {
	AspectRatio     float64
	ImageWidth      int
	SamplesPerPixel int
	MaxDepth        int
	Background      core.Vec3

	VFOV     float64
	LookFrom core.Vec3
	LookAt   core.Vec3
	VUp      core.Vec3

	DefocusAngle float64
	FocusDist    float64
}

// DefaultConfig mirrors the book's defaults, useful as a base for scene
// constructors that only need to override a handful of fields.
func DefaultConfig() Config {
	return Config{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		Background:      core.Vec3{},
		VFOV:            90,
		LookFrom:        core.NewVec3(0, 0, -1),
		LookAt:          core.NewVec3(0, 0, 0),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}
}

// Camera holds the Config plus every value derived from it at
// construction time, so GetRay never recomputes viewport geometry.
type Camera struct {
	Config

	ImageHeight  int
	sqrtSPP      int
	recipSqrtSPP float64

	center        core.Vec3
	pixel00Loc    core.Vec3
	pixelDeltaU   core.Vec3
	pixelDeltaV   core.Vec3
	u, v, w       core.Vec3
	defocusDiskU  core.Vec3
	defocusDiskV  core.Vec3
}

// New derives a ready-to-use Camera from cfg.
func New(cfg Config) *Camera {
	c := &Camera{Config: cfg}
	c.initialize()
	return c
}

func (c *Camera) initialize() {
	c.ImageHeight = int(float64(c.ImageWidth) / c.AspectRatio)
	if c.ImageHeight < 1 {
		c.ImageHeight = 1
	}

	c.sqrtSPP = int(math.Sqrt(float64(c.SamplesPerPixel)))
	if c.sqrtSPP < 1 {
		c.sqrtSPP = 1
	}
	c.recipSqrtSPP = 1.0 / float64(c.sqrtSPP)

	c.center = c.LookFrom

	theta := c.VFOV * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * c.FocusDist
	viewportWidth := viewportHeight * (float64(c.ImageWidth) / float64(c.ImageHeight))

	c.w = c.LookFrom.Subtract(c.LookAt).UnitVector()
	c.u = c.VUp.Cross(c.w).UnitVector()
	c.v = c.w.Cross(c.u)

	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(c.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.ImageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(c.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := c.FocusDist * math.Tan(c.DefocusAngle/2*math.Pi/180)
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)
}

// SqrtSPP returns floor(sqrt(samples_per_pixel)), the stratified grid
// side length each pixel is subdivided into.
func (c *Camera) SqrtSPP() int {
	return c.sqrtSPP
}

// GetRay generates the primary ray for pixel (i,j), stratified
// sub-sample (si,sj) within the sqrtSPP x sqrtSPP grid (spec §4.J).
func (c *Camera) GetRay(sampler *core.Sampler, i, j, si, sj int) core.Ray {
	pixelCenter := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	pixelSample := pixelCenter.Add(c.pixelSampleSquare(sampler, si, sj))

	rayOrigin := c.center
	if c.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}
	rayDirection := pixelSample.Subtract(rayOrigin)
	rayTime := sampler.Float64()

	return core.NewRayAtTime(rayOrigin, rayDirection, rayTime)
}

func (c *Camera) pixelSampleSquare(sampler *core.Sampler, si, sj int) core.Vec3 {
	px := -0.5 + c.recipSqrtSPP*(float64(si)+sampler.Float64())
	py := -0.5 + c.recipSqrtSPP*(float64(sj)+sampler.Float64())
	return c.pixelDeltaU.Multiply(px).Add(c.pixelDeltaV.Multiply(py))
}

func (c *Camera) defocusDiskSample(sampler *core.Sampler) core.Vec3 {
	p := sampler.RandomInUnitDisk()
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
