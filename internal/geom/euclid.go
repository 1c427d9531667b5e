package geom

import (
	"math"
	"math/cmplx"
)

// Euclid returns the affine position of a point, or false for points at
// infinity and points with a non-negligible imaginary part.
func Euclid(p Coordinate, eps float64) (x, y float64, ok bool) {
	if cmplx.Abs(p[Z]) <= eps {
		return 0, 0, false
	}
	px, py := p[X]/p[Z], p[Y]/p[Z]
	if math.Abs(imag(px)) > eps || math.Abs(imag(py)) > eps {
		return 0, 0, false
	}
	return real(px), real(py), true
}

// DistanceToPoint is the euclidean distance between (x, y) and p.
func DistanceToPoint(x, y float64, p PointEquation, eps float64) (float64, bool) {
	px, py, ok := Euclid(p.Coordinate, eps)
	if !ok {
		return 0, false
	}
	return math.Hypot(px-x, py-y), true
}

// DistanceToLine is the euclidean distance between (x, y) and a real line.
func DistanceToLine(x, y float64, l LineEquation, eps float64) (float64, bool) {
	c := l.Coordinate.Normalize()
	for _, v := range c {
		if math.Abs(imag(v)) > eps {
			return 0, false
		}
	}
	a, b, d := real(c[X]), real(c[Y]), real(c[Z])
	n := math.Hypot(a, b)
	if n <= eps {
		// line at infinity
		return 0, false
	}
	return math.Abs(a*x+b*y+d) / n, true
}

// DistanceToConic approximates the distance from (x, y) to a conic by the
// first order (Sampson) estimate |Q(p)| / |grad Q(p)|.
func DistanceToConic(x, y float64, c ConicEquation, eps float64) (float64, bool) {
	p := Real(x, y, 1)
	m := c.Matrix()
	q := Dot(p, m.MulVec(p))
	g := m.MulVec(p)
	gx, gy := 2*g[X], 2*g[Y]
	gn := math.Sqrt(cmplx.Abs(gx)*cmplx.Abs(gx) + cmplx.Abs(gy)*cmplx.Abs(gy))
	if gn <= eps {
		if cmplx.Abs(q) <= eps {
			return 0, true
		}
		return 0, false
	}
	return cmplx.Abs(q) / gn, true
}
