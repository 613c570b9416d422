package core

// minAxisSize is the smallest size any AABB axis is allowed to have.
// Construction pads any thinner axis so degenerate axis-aligned quads
// still survive the slab test (spec §4.A).
const minAxisSize = 1e-4

// AABB is an axis-aligned bounding box expressed as three Intervals.
type AABB struct {
	X, Y, Z Interval
}

// NewAABB builds an AABB from three intervals, padding any axis whose
// size is below minAxisSize.
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: padAxis(x), Y: padAxis(y), Z: padAxis(z)}
}

// NewAABBFromPoints builds the tightest AABB that contains every point.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{X: Empty, Y: Empty, Z: Empty}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Vec3{
			X: minF(min.X, p.X),
			Y: minF(min.Y, p.Y),
			Z: minF(min.Z, p.Z),
		}
		max = Vec3{
			X: maxF(max.X, p.X),
			Y: maxF(max.Y, p.Y),
			Z: maxF(max.Z, p.Z),
		}
	}
	return NewAABB(NewInterval(min.X, max.X), NewInterval(min.Y, max.Y), NewInterval(min.Z, max.Z))
}

func padAxis(i Interval) Interval {
	if i.Size() < minAxisSize {
		return i.Expand(minAxisSize)
	}
	return i
}

// Axis returns the interval for axis 0=X, 1=Y, 2=Z.
func (b AABB) Axis(n int) Interval {
	switch n {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// Hit performs the slab test against ray_t, shrinking it as each axis is
// considered; it rejects as soon as the running interval is empty.
func (b AABB) Hit(r Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := b.Axis(axis)
		origin := component(r.Origin, axis)
		dir := component(r.Direction, axis)

		invD := 1.0 / dir
		t0 := (ax.Min - origin) * invD
		t1 := (ax.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}
		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

func component(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Union returns the AABB that bounds both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		X: NewInterval(minF(b.X.Min, o.X.Min), maxF(b.X.Max, o.X.Max)),
		Y: NewInterval(minF(b.Y.Min, o.Y.Min), maxF(b.Y.Max, o.Y.Max)),
		Z: NewInterval(minF(b.Z.Min, o.Z.Min), maxF(b.Z.Max, o.Z.Max)),
	}
}

// Offset shifts the AABB by a vector.
func (b AABB) Offset(v Vec3) AABB {
	return AABB{
		X: NewInterval(b.X.Min+v.X, b.X.Max+v.X),
		Y: NewInterval(b.Y.Min+v.Y, b.Y.Max+v.Y),
		Z: NewInterval(b.Z.Min+v.Z, b.Z.Max+v.Z),
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return Vec3{
		X: (b.X.Min + b.X.Max) / 2,
		Y: (b.Y.Min + b.Y.Max) / 2,
		Z: (b.Z.Min + b.Z.Max) / 2,
	}
}

// LongestAxis returns the index (0=X,1=Y,2=Z) of the box's longest axis.
func (b AABB) LongestAxis() int {
	sx, sy, sz := b.X.Size(), b.Y.Size(), b.Z.Size()
	if sx > sy && sx > sz {
		return 0
	}
	if sy > sz {
		return 1
	}
	return 2
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
