package geom

import "math/cmplx"

// nullVector returns a non-zero solution of rows*v = 0 when the solution
// space is exactly one-dimensional. rows is modified.
func nullVector(rows [][]complex128, eps float64) ([]complex128, bool) {
	if len(rows) == 0 {
		return nil, false
	}
	n := len(rows[0])
	pivotCols := make([]int, 0, n)
	r := 0
	for c := 0; c < n && r < len(rows); c++ {
		best := r
		for i := r + 1; i < len(rows); i++ {
			if cmplx.Abs(rows[i][c]) > cmplx.Abs(rows[best][c]) {
				best = i
			}
		}
		if cmplx.Abs(rows[best][c]) <= eps {
			continue
		}
		rows[r], rows[best] = rows[best], rows[r]
		p := rows[r][c]
		for j := c; j < n; j++ {
			rows[r][j] /= p
		}
		for i := range rows {
			if i == r || rows[i][c] == 0 {
				continue
			}
			f := rows[i][c]
			for j := c; j < n; j++ {
				rows[i][j] -= f * rows[r][j]
			}
		}
		pivotCols = append(pivotCols, c)
		r++
	}
	if len(pivotCols) != n-1 {
		return nil, false
	}
	free := -1
	isPivot := make([]bool, n)
	for _, c := range pivotCols {
		isPivot[c] = true
	}
	for c := 0; c < n; c++ {
		if !isPivot[c] {
			free = c
			break
		}
	}
	v := make([]complex128, n)
	v[free] = 1
	for i, c := range pivotCols {
		v[c] = -rows[i][free]
	}
	return v, true
}

// ConicThroughPoints returns the unique conic through five points, or false
// when the points do not determine one (four of them collinear, repeats).
func ConicThroughPoints(pts [5]Coordinate, eps float64) (ConicEquation, bool) {
	rows := make([][]complex128, 5)
	for i, p := range pts {
		p = p.Normalize()
		rows[i] = []complex128{
			p[X] * p[X], p[Y] * p[Y], p[Z] * p[Z],
			p[Y] * p[Z], p[Z] * p[X], p[X] * p[Y],
		}
	}
	v, ok := nullVector(rows, eps)
	if !ok {
		return ConicEquation{}, false
	}
	return ConicEquation{
		Squares:      [3]complex128{v[0], v[1], v[2]},
		PairProducts: [3]complex128{v[3], v[4], v[5]},
	}, true
}
