package geom

import (
	"errors"
	"math/cmplx"
)

// ErrSingular is returned when a matrix that must be invertible is not.
var ErrSingular = errors.New("singular matrix")

// Matrix3 is a 3x3 complex matrix, row major.
type Matrix3 [3][3]complex128

// Identity3 returns the identity matrix.
func Identity3() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mul returns m*o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

// MulVec returns m*c.
func (m Matrix3) MulVec(c Coordinate) Coordinate {
	var r Coordinate
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*c[0] + m[i][1]*c[1] + m[i][2]*c[2]
	}
	return r
}

// Transpose returns m^T.
func (m Matrix3) Transpose() Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Determinant of m.
func (m Matrix3) Determinant() complex128 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Adjugate returns adj(m), so that m*adj(m) = det(m)*I. Unlike the inverse it
// exists for singular matrices too.
func (m Matrix3) Adjugate() Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			i1, i2 := (i+1)%3, (i+2)%3
			j1, j2 := (j+1)%3, (j+2)%3
			// cyclic minors carry their sign already
			r[j][i] = m[i1][j1]*m[i2][j2] - m[i1][j2]*m[i2][j1]
		}
	}
	return r
}

// Inverse returns m^-1, or false when |det m| <= eps.
func (m Matrix3) Inverse(eps float64) (Matrix3, bool) {
	det := m.Determinant()
	if cmplx.Abs(det) <= eps {
		return Matrix3{}, false
	}
	adj := m.Adjugate()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			adj[i][j] /= det
		}
	}
	return adj, true
}
