package workspace

import (
	"fmt"

	"homogebra/internal/geom"
	"homogebra/internal/scene"
	"homogebra/pkg/types"
)

// ToObject converts o to its DTO.
func ToObject(o scene.Object, eps float64) types.Object {
	out := types.Object{
		ID:        o.ID().String(),
		Name:      o.Name(),
		Kind:      string(o.Kind()),
		State:     string(o.State()),
		Value:     toComplex(o.Equation().Coefficients()),
		Observers: o.ObserverCount(),
	}
	if p, ok := o.Equation().(geom.PointEquation); ok && o.Valid() {
		if x, y, ok := geom.Euclid(p.Coordinate, eps); ok {
			out.Position = &types.Position{X: x, Y: y}
		}
	}
	if c := o.Construction(); c != nil {
		out.Construction = c.Formula()
		for _, in := range c.Inputs() {
			out.Inputs = append(out.Inputs, in.Name())
		}
		out.Reason = c.Reason()
	}
	return out
}

// EquationFromValue builds a value of the named kind.
func EquationFromValue(kind string, v []types.Complex) (geom.Equation, error) {
	k, ok := geom.ParseKind(kind)
	if !ok {
		return nil, ErrBadRequest(fmt.Sprintf("unknown kind %q", kind))
	}
	eq, err := geom.NewEquation(k, fromComplex(v))
	if err != nil {
		return nil, scene.ErrInvalidValue(err)
	}
	return eq, nil
}

// TransformationFromMatrix builds a transformation from a row-major 3x3
// matrix. Singular matrices are invalid values.
func TransformationFromMatrix(m [][]types.Complex) (geom.Transformation, error) {
	if len(m) != 3 {
		return geom.Transformation{}, ErrBadRequest("matrix must have 3 rows")
	}
	var mm geom.Matrix3
	for i, row := range m {
		if len(row) != 3 {
			return geom.Transformation{}, ErrBadRequest(fmt.Sprintf("matrix row %d must have 3 entries", i))
		}
		for j, v := range row {
			mm[i][j] = complex(v.Re, v.Im)
		}
	}
	t, err := geom.NewTransformation(mm)
	if err != nil {
		return geom.Transformation{}, scene.ErrInvalidValue(err)
	}
	return t, nil
}

func toComplex(in []complex128) []types.Complex {
	out := make([]types.Complex, len(in))
	for i, c := range in {
		out[i] = types.Complex{Re: real(c), Im: imag(c)}
	}
	return out
}

func fromComplex(in []types.Complex) []complex128 {
	out := make([]complex128, len(in))
	for i, c := range in {
		out[i] = complex(c.Re, c.Im)
	}
	return out
}
