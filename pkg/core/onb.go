package core

import "math"

// ONB is an orthonormal basis built from a single normal. With V = W x a
// and U = W x V, U x V equals -W, so the basis is left-handed.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis whose W axis is the (unit-length)
// normal w. The auxiliary axis is chosen per spec §4.B: (1,0,0) unless
// w is too closely aligned with it, in which case (0,1,0) is used.
func NewONB(w Vec3) ONB {
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = Vec3{X: 0, Y: 1, Z: 0}
	} else {
		a = Vec3{X: 1, Y: 0, Z: 0}
	}
	v := w.Cross(a).UnitVector()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Local expresses a local-frame vector a in the world frame of the basis.
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}
