package geom

import (
	"math"
	"math/cmplx"
)

// DefaultEpsilon is the tolerance used when callers do not supply one.
const DefaultEpsilon = 1e-9

// Var indexes a homogeneous coordinate.
type Var int

const (
	X Var = iota
	Y
	Z
)

// Coordinate is a homogeneous triple of complex numbers.
type Coordinate [3]complex128

// Real builds a coordinate from real components.
func Real(x, y, z float64) Coordinate {
	return Coordinate{complex(x, 0), complex(y, 0), complex(z, 0)}
}

// At returns the component for v.
func (c Coordinate) At(v Var) complex128 { return c[v] }

// IsFinite reports whether no component is NaN or infinite.
func (c Coordinate) IsFinite() bool {
	for _, v := range c {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return false
		}
	}
	return true
}

// Norm is the euclidean norm of the triple in C^3.
func (c Coordinate) Norm() float64 {
	var s float64
	for _, v := range c {
		a := cmplx.Abs(v)
		s += a * a
	}
	return math.Sqrt(s)
}

// IsZero reports whether every component is within eps of zero.
func (c Coordinate) IsZero(eps float64) bool { return c.Norm() <= eps }

// Scale multiplies every component by k.
func (c Coordinate) Scale(k complex128) Coordinate {
	return Coordinate{c[0] * k, c[1] * k, c[2] * k}
}

// Cross is the cross product. For two points it gives the joining line, for
// two lines their meeting point.
func Cross(a, b Coordinate) Coordinate {
	return Coordinate{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Dot is the bilinear (not hermitian) product used for incidence.
func Dot(a, b Coordinate) complex128 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Normalize scales c so that its largest component is 1. The zero vector is
// returned unchanged.
func (c Coordinate) Normalize() Coordinate {
	idx, best := -1, 0.0
	for i, v := range c {
		if a := cmplx.Abs(v); a > best {
			idx, best = i, a
		}
	}
	if idx < 0 {
		return c
	}
	return c.Scale(1 / c[idx])
}

// Proportional reports whether a and b describe the same projective value.
func Proportional(a, b Coordinate, eps float64) bool {
	an, bn := a.Norm(), b.Norm()
	if an <= eps || bn <= eps {
		return an <= eps && bn <= eps
	}
	return Cross(a.Scale(complex(1/an, 0)), b.Scale(complex(1/bn, 0))).IsZero(eps)
}
