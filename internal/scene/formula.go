package scene

import (
	"sort"

	"homogebra/internal/geom"
)

// Formula computes the value of a construction from the values of its
// inputs. Compute must be a pure function of its arguments; it reports false
// when the inputs admit no value.
type Formula interface {
	Name() string
	Inputs() []geom.Kind
	Result() geom.Kind
	Compute(in []geom.Equation, eps float64) (geom.Equation, bool)
}

// FormulaFactory creates a Formula.
type FormulaFactory func() Formula

// Names of the built-in formulas.
const (
	FormulaLineThroughPoints  = "line_through_points"
	FormulaLineIntersection   = "line_intersection"
	FormulaConicThroughPoints = "conic_through_points"
	FormulaPolarLine          = "polar_line"
	FormulaPolePoint          = "pole_point"
)

var formulas = map[string]FormulaFactory{}

// RegisterFormula makes a formula available to Scene.Construct under name.
func RegisterFormula(name string, factory FormulaFactory) {
	formulas[name] = factory
}

// LookupFormula returns a fresh formula registered under name.
func LookupFormula(name string) (Formula, bool) {
	if factory, ok := formulas[name]; ok {
		return factory(), true
	}
	return nil, false
}

// FormulaNames lists the registered formulas.
func FormulaNames() []string {
	out := make([]string, 0, len(formulas))
	for n := range formulas {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func init() {
	RegisterFormula(FormulaLineThroughPoints, func() Formula { return lineThroughPoints{} })
	RegisterFormula(FormulaLineIntersection, func() Formula { return lineIntersection{} })
	RegisterFormula(FormulaConicThroughPoints, func() Formula { return conicThroughPoints{} })
	RegisterFormula(FormulaPolarLine, func() Formula { return polarLine{} })
	RegisterFormula(FormulaPolePoint, func() Formula { return polePoint{} })
}

// lineThroughPoints joins two points. Coincident points have no line.
type lineThroughPoints struct{}

func (lineThroughPoints) Name() string      { return FormulaLineThroughPoints }
func (lineThroughPoints) Result() geom.Kind { return geom.KindLine }
func (lineThroughPoints) Inputs() []geom.Kind {
	return []geom.Kind{geom.KindPoint, geom.KindPoint}
}

func (lineThroughPoints) Compute(in []geom.Equation, eps float64) (geom.Equation, bool) {
	a := in[0].(geom.PointEquation).Coordinate.Normalize()
	b := in[1].(geom.PointEquation).Coordinate.Normalize()
	l := geom.Cross(a, b)
	if l.IsZero(eps) {
		return nil, false
	}
	return geom.LineEquation{Coordinate: l}, true
}

// lineIntersection meets two lines. Coincident lines have no single point;
// parallel lines meet at infinity.
type lineIntersection struct{}

func (lineIntersection) Name() string      { return FormulaLineIntersection }
func (lineIntersection) Result() geom.Kind { return geom.KindPoint }
func (lineIntersection) Inputs() []geom.Kind {
	return []geom.Kind{geom.KindLine, geom.KindLine}
}

func (lineIntersection) Compute(in []geom.Equation, eps float64) (geom.Equation, bool) {
	a := in[0].(geom.LineEquation).Coordinate.Normalize()
	b := in[1].(geom.LineEquation).Coordinate.Normalize()
	p := geom.Cross(a, b)
	if p.IsZero(eps) {
		return nil, false
	}
	return geom.PointEquation{Coordinate: p}, true
}

type conicThroughPoints struct{}

func (conicThroughPoints) Name() string      { return FormulaConicThroughPoints }
func (conicThroughPoints) Result() geom.Kind { return geom.KindConic }
func (conicThroughPoints) Inputs() []geom.Kind {
	return []geom.Kind{geom.KindPoint, geom.KindPoint, geom.KindPoint, geom.KindPoint, geom.KindPoint}
}

func (conicThroughPoints) Compute(in []geom.Equation, eps float64) (geom.Equation, bool) {
	var pts [5]geom.Coordinate
	for i := range pts {
		pts[i] = in[i].(geom.PointEquation).Coordinate
	}
	c, ok := geom.ConicThroughPoints(pts, eps)
	if !ok {
		return nil, false
	}
	return c, true
}

// polarLine is the polar of a point with respect to a conic: C·p.
type polarLine struct{}

func (polarLine) Name() string      { return FormulaPolarLine }
func (polarLine) Result() geom.Kind { return geom.KindLine }
func (polarLine) Inputs() []geom.Kind {
	return []geom.Kind{geom.KindPoint, geom.KindConic}
}

func (polarLine) Compute(in []geom.Equation, eps float64) (geom.Equation, bool) {
	p := in[0].(geom.PointEquation).Coordinate
	l := in[1].(geom.ConicEquation).Matrix().MulVec(p)
	if l.IsZero(eps) {
		return nil, false
	}
	return geom.LineEquation{Coordinate: l}, true
}

// polePoint is the pole of a line with respect to a conic: adj(C)·l.
type polePoint struct{}

func (polePoint) Name() string      { return FormulaPolePoint }
func (polePoint) Result() geom.Kind { return geom.KindPoint }
func (polePoint) Inputs() []geom.Kind {
	return []geom.Kind{geom.KindLine, geom.KindConic}
}

func (polePoint) Compute(in []geom.Equation, eps float64) (geom.Equation, bool) {
	l := in[0].(geom.LineEquation).Coordinate
	p := in[1].(geom.ConicEquation).Matrix().Adjugate().MulVec(l)
	if p.IsZero(eps) {
		return nil, false
	}
	return geom.PointEquation{Coordinate: p}, true
}
