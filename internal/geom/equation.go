package geom

import (
	"errors"
	"math"
	"math/cmplx"
)

// Kind names the space a value lives in.
type Kind string

const (
	KindPoint Kind = "point"
	KindLine  Kind = "line"
	KindConic Kind = "conic"
)

// ParseKind maps a wire name to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindPoint, KindLine, KindConic:
		return Kind(s), true
	}
	return "", false
}

var (
	// ErrZeroVector is returned for a homogeneous value with all components zero.
	ErrZeroVector = errors.New("zero homogeneous vector")
	// ErrNotFinite is returned for values with NaN or infinite components.
	ErrNotFinite = errors.New("non-finite component")
	// ErrArity is returned when a coefficient slice has the wrong length.
	ErrArity = errors.New("wrong number of coefficients")
)

// Equation is the geometric value of an object.
type Equation interface {
	Kind() Kind
	// Validate reports whether the value is a usable representative.
	Validate(eps float64) error
	// Coefficients returns a copy of the raw coefficients.
	Coefficients() []complex128
	// Apply maps the value through t.
	Apply(t Transformation) (Equation, error)
}

// PointEquation is a point in homogeneous coordinates.
type PointEquation struct {
	Coordinate Coordinate
}

func (PointEquation) Kind() Kind { return KindPoint }

func (e PointEquation) Validate(eps float64) error { return validateCoordinate(e.Coordinate, eps) }

func (e PointEquation) Coefficients() []complex128 { return e.Coordinate[:] }

func (e PointEquation) Apply(t Transformation) (Equation, error) {
	return PointEquation{Coordinate: t.m.MulVec(e.Coordinate)}, nil
}

// LineEquation is a line ax+by+cz=0 stored as (a, b, c).
type LineEquation struct {
	Coordinate Coordinate
}

func (LineEquation) Kind() Kind { return KindLine }

func (e LineEquation) Validate(eps float64) error { return validateCoordinate(e.Coordinate, eps) }

func (e LineEquation) Coefficients() []complex128 { return e.Coordinate[:] }

func (e LineEquation) Apply(t Transformation) (Equation, error) {
	inv, err := t.inverseTranspose()
	if err != nil {
		return nil, err
	}
	return LineEquation{Coordinate: inv.MulVec(e.Coordinate)}, nil
}

// ConicEquation stores the quadratic form
//
//	Squares[X]x² + Squares[Y]y² + Squares[Z]z² + PairProducts[X]yz + PairProducts[Y]zx + PairProducts[Z]xy
//
// PairProducts[v] multiplies the two variables other than v.
type ConicEquation struct {
	Squares      [3]complex128
	PairProducts [3]complex128
}

func (ConicEquation) Kind() Kind { return KindConic }

func (e ConicEquation) Validate(eps float64) error {
	sq, pp := Coordinate(e.Squares), Coordinate(e.PairProducts)
	if !sq.IsFinite() || !pp.IsFinite() {
		return ErrNotFinite
	}
	if sq.IsZero(eps) && pp.IsZero(eps) {
		return ErrZeroVector
	}
	return nil
}

func (e ConicEquation) Coefficients() []complex128 {
	return []complex128{
		e.Squares[X], e.Squares[Y], e.Squares[Z],
		e.PairProducts[X], e.PairProducts[Y], e.PairProducts[Z],
	}
}

// Matrix returns the symmetric matrix C with p^T C p equal to the form.
func (e ConicEquation) Matrix() Matrix3 {
	var m Matrix3
	for v := X; v <= Z; v++ {
		m[v][v] = e.Squares[v]
		prev, next := (v+2)%3, (v+1)%3
		m[prev][next] = e.PairProducts[v] / 2
		m[next][prev] = e.PairProducts[v] / 2
	}
	return m
}

// ConicFromMatrix reads a conic back from a (symmetrised) matrix.
func ConicFromMatrix(m Matrix3) ConicEquation {
	var e ConicEquation
	for v := X; v <= Z; v++ {
		e.Squares[v] = m[v][v]
		prev, next := (v+2)%3, (v+1)%3
		e.PairProducts[v] = m[prev][next] + m[next][prev]
	}
	return e
}

// Evaluate returns the value of the quadratic form at p.
func (e ConicEquation) Evaluate(p Coordinate) complex128 {
	return Dot(p, e.Matrix().MulVec(p))
}

func (e ConicEquation) Apply(t Transformation) (Equation, error) {
	inv, ok := t.m.Inverse(DefaultEpsilon)
	if !ok {
		return nil, ErrSingular
	}
	return ConicFromMatrix(inv.Transpose().Mul(e.Matrix()).Mul(inv)), nil
}

// NewEquation builds a value of kind k from raw coefficients: three for points
// and lines, six for conics in the order x², y², z², yz, zx, xy.
func NewEquation(k Kind, coeffs []complex128) (Equation, error) {
	switch k {
	case KindPoint, KindLine:
		if len(coeffs) != 3 {
			return nil, ErrArity
		}
		c := Coordinate{coeffs[0], coeffs[1], coeffs[2]}
		if k == KindPoint {
			return PointEquation{Coordinate: c}, nil
		}
		return LineEquation{Coordinate: c}, nil
	case KindConic:
		if len(coeffs) != 6 {
			return nil, ErrArity
		}
		return ConicEquation{
			Squares:      [3]complex128{coeffs[0], coeffs[1], coeffs[2]},
			PairProducts: [3]complex128{coeffs[3], coeffs[4], coeffs[5]},
		}, nil
	}
	return nil, errors.New("unknown kind: " + string(k))
}

// Same reports whether a and b are the same projective value.
func Same(a, b Equation, eps float64) bool {
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}
	ac, bc := a.Coefficients(), b.Coefficients()
	var an, bn float64
	for i := range ac {
		an += cmplx.Abs(ac[i]) * cmplx.Abs(ac[i])
		bn += cmplx.Abs(bc[i]) * cmplx.Abs(bc[i])
	}
	if an == 0 || bn == 0 {
		return an == bn
	}
	// a ~ b iff every 2x2 minor vanishes; take the pivot of a to find the ratio.
	pivot := 0
	for i := range ac {
		if cmplx.Abs(ac[i]) > cmplx.Abs(ac[pivot]) {
			pivot = i
		}
	}
	if cmplx.Abs(bc[pivot]) <= eps {
		return false
	}
	k := bc[pivot] / ac[pivot]
	scale := math.Sqrt(bn)
	for i := range ac {
		if cmplx.Abs(ac[i]*k-bc[i]) > eps*scale {
			return false
		}
	}
	return true
}

func validateCoordinate(c Coordinate, eps float64) error {
	if !c.IsFinite() {
		return ErrNotFinite
	}
	if c.IsZero(eps) {
		return ErrZeroVector
	}
	return nil
}
