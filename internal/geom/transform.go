package geom

import "math/cmplx"

// Transformation is an invertible projective map of the plane.
type Transformation struct {
	m Matrix3
}

// IdentityTransformation maps every value to itself.
func IdentityTransformation() Transformation { return Transformation{m: Identity3()} }

// NewTransformation wraps m, rejecting singular matrices.
func NewTransformation(m Matrix3) (Transformation, error) {
	if _, ok := m.Inverse(DefaultEpsilon); !ok {
		return Transformation{}, ErrSingular
	}
	return Transformation{m: m}, nil
}

// TransformationFromPoints returns the map sending each preimage to the
// matching image. Both quadruples must be in general position.
func TransformationFromPoints(pre, img [4]Coordinate) (Transformation, error) {
	a, err := frame(pre)
	if err != nil {
		return Transformation{}, err
	}
	b, err := frame(img)
	if err != nil {
		return Transformation{}, err
	}
	inv, ok := a.Inverse(DefaultEpsilon)
	if !ok {
		return Transformation{}, ErrSingular
	}
	return NewTransformation(b.Mul(inv))
}

// frame returns the matrix sending the standard frame e1, e2, e3, (1,1,1)
// to the four given points.
func frame(p [4]Coordinate) (Matrix3, error) {
	var base Matrix3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			base[row][col] = p[col][row]
		}
	}
	inv, ok := base.Inverse(DefaultEpsilon)
	if !ok {
		return Matrix3{}, ErrSingular
	}
	k := inv.MulVec(p[3])
	for _, v := range k {
		if cmplx.Abs(v) <= DefaultEpsilon {
			return Matrix3{}, ErrSingular
		}
	}
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			base[row][col] *= k[col]
		}
	}
	return base, nil
}

// Matrix returns the underlying matrix.
func (t Transformation) Matrix() Matrix3 { return t.m }

// Then returns the map applying t first and o second.
func (t Transformation) Then(o Transformation) Transformation {
	return Transformation{m: o.m.Mul(t.m)}
}

// Inverse returns t^-1.
func (t Transformation) Inverse() (Transformation, error) {
	inv, ok := t.m.Inverse(DefaultEpsilon)
	if !ok {
		return Transformation{}, ErrSingular
	}
	return Transformation{m: inv}, nil
}

func (t Transformation) inverseTranspose() (Matrix3, error) {
	inv, ok := t.m.Inverse(DefaultEpsilon)
	if !ok {
		return Matrix3{}, ErrSingular
	}
	return inv.Transpose(), nil
}
