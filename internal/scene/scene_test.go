package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homogebra/internal/geom"
)

func pt(x, y float64) geom.PointEquation {
	return geom.PointEquation{Coordinate: geom.Real(x, y, 1)}
}

func mustAdd(t *testing.T, s *Scene, name string, eq geom.Equation) Object {
	t.Helper()
	o, err := s.Add(name, eq)
	require.NoError(t, err)
	return o
}

func mustConstruct(t *testing.T, s *Scene, formula, name string, inputs ...string) Object {
	t.Helper()
	o, err := s.Construct(formula, name, inputs...)
	require.NoError(t, err)
	return o
}

// countMoved subscribes a listener counting Moved events per object name.
func countMoved(s *Scene, counts map[string]int, objects ...string) {
	for _, n := range objects {
		o, _ := s.Lookup(n)
		name := n
		o.Subscribe(&Listener{MovedFunc: func(Moved) { counts[name]++ }})
	}
}

type recorder struct {
	events []Event
}

func (r *recorder) Publish(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) sources(t EventType) []string {
	var out []string
	for _, ev := range r.events {
		if ev.Type() == t {
			out = append(out, ev.Source().Name())
		}
	}
	return out
}

type countingMetrics struct {
	noopMetrics
	valid, degenerate int
	destroyed         int
	cascaded          int
	panics            int
	onDestroyed       func()
}

func (m *countingMetrics) Recomputed(valid bool) {
	if valid {
		m.valid++
	} else {
		m.degenerate++
	}
}

func (m *countingMetrics) Destroyed(cascade bool) {
	m.destroyed++
	if cascade {
		m.cascaded++
	}
	if m.onDestroyed != nil {
		m.onDestroyed()
	}
}

func (m *countingMetrics) ObserverPanicked() { m.panics++ }

func TestScene_NamesAreUnique(t *testing.T) {
	s := New(Config{})
	a := mustAdd(t, s, "A", pt(0, 0))
	b := mustAdd(t, s, "B", pt(1, 0))

	_, err := s.Add("A", pt(2, 2))
	require.Error(t, err)
	assert.True(t, IsNamingCollision(err))

	_, err = s.Construct(FormulaLineThroughPoints, "B", "A", "B")
	assert.True(t, IsNamingCollision(err))
	assert.Equal(t, 2, s.Len())

	require.NoError(t, s.Rename("A", "P"))
	got, ok := s.Lookup("P")
	require.True(t, ok)
	assert.Same(t, a, got)

	_, err = s.Destroy("B")
	require.NoError(t, err)
	assert.True(t, b.Destroyed())
	c := mustAdd(t, s, "B", pt(5, 5))
	got, _ = s.Lookup("B")
	assert.Same(t, c, got)
}

func TestScene_RegisterCollision(t *testing.T) {
	s := New(Config{})
	a := mustAdd(t, s, "A", pt(0, 0))

	err := s.register(newObject("A", pt(1, 1)))
	require.Error(t, err)
	assert.True(t, IsNamingCollision(err))
	assert.Equal(t, 1, s.Len())
	got, ok := s.Lookup("A")
	require.True(t, ok)
	assert.Same(t, a, got)
}

func TestScene_CascadeDestroysDependentsFirst(t *testing.T) {
	m := &countingMetrics{}
	s := New(Config{Metrics: m})
	m.onDestroyed = func() {
		for _, o := range s.Objects() {
			c := o.Construction()
			if c == nil {
				continue
			}
			for _, in := range c.Inputs() {
				if in.Destroyed() {
					t.Fatalf("%s is live but its input %s is destroyed", o.Name(), in.Name())
				}
			}
		}
	}
	mustAdd(t, s, "A", pt(0, 0))
	b := mustAdd(t, s, "B", pt(1, 0))
	mustAdd(t, s, "D", pt(0, 1))
	mustAdd(t, s, "E", pt(1, 2))
	l1 := mustConstruct(t, s, FormulaLineThroughPoints, "l1", "A", "B")
	l2 := mustConstruct(t, s, FormulaLineThroughPoints, "l2", "D", "E")
	x := mustConstruct(t, s, FormulaLineIntersection, "X", "l1", "l2")

	var seenWhileDying bool
	x.Subscribe(&Listener{DestroyedFunc: func(ev GoingToBeDestroyed) {
		_, seenWhileDying = s.Lookup(ev.Object.Name())
	}})

	gone, err := s.Destroy("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "l1", "A"}, gone)
	assert.True(t, seenWhileDying, "object must still resolve while GoingToBeDestroyed is dispatched")

	for _, o := range []Object{x, l1} {
		assert.Equal(t, StateDestroyed, o.State())
		_, ok := s.Lookup(o.Name())
		assert.False(t, ok)
	}
	assert.False(t, l2.Destroyed())
	assert.Equal(t, 0, l2.ObserverCount())
	assert.Equal(t, 0, b.ObserverCount())
	assert.Equal(t, 3, m.destroyed)
	assert.Equal(t, 2, m.cascaded)
	assert.Equal(t, []string{"B", "D", "E", "l2"}, s.dict.Names())
}

func TestScene_DiamondRecomputesOnce(t *testing.T) {
	rec := &recorder{}
	s := New(Config{Publisher: rec})
	mustAdd(t, s, "R", pt(0, 0))
	mustAdd(t, s, "P", pt(1, 0))
	mustAdd(t, s, "Q", pt(0, 1))
	mustConstruct(t, s, FormulaLineThroughPoints, "a", "R", "P")
	mustConstruct(t, s, FormulaLineThroughPoints, "b", "R", "Q")
	c := mustConstruct(t, s, FormulaLineIntersection, "C", "a", "b")

	counts := map[string]int{}
	countMoved(s, counts, "R", "a", "b", "C")

	require.NoError(t, s.Move("R", pt(1, 1)))
	assert.Equal(t, map[string]int{"R": 1, "a": 1, "b": 1, "C": 1}, counts)
	assert.Equal(t, []string{"R", "a", "b", "C"}, rec.sources(EventMoved))
	assert.True(t, geom.Same(c.Equation(), pt(1, 1), s.Epsilon()))
}

func TestScene_ChainFollowsSubscriptionOrder(t *testing.T) {
	rec := &recorder{}
	s := New(Config{Publisher: rec})
	mustAdd(t, s, "A", pt(0, 0))
	mustAdd(t, s, "B", pt(1, 0))
	mustAdd(t, s, "C", pt(0, 1))
	mustConstruct(t, s, FormulaLineThroughPoints, "ab", "A", "B")
	mustConstruct(t, s, FormulaLineThroughPoints, "ac", "A", "C")
	mustConstruct(t, s, FormulaPolePoint, "", "ab", mustConic(t, s))

	require.NoError(t, s.Move("A", pt(0.5, 0.5)))
	assert.Equal(t, []string{"A", "ab", "D", "ac"}, rec.sources(EventMoved))
}

// mustConic adds the unit circle and returns its name.
func mustConic(t *testing.T, s *Scene) string {
	t.Helper()
	o := mustAdd(t, s, "", unitCircle())
	return o.Name()
}

func unitCircle() geom.ConicEquation {
	return geom.ConicEquation{Squares: [3]complex128{1, 1, -1}}
}

func TestScene_UnsubscribeIsIdempotent(t *testing.T) {
	s := New(Config{})
	a := mustAdd(t, s, "A", pt(0, 0))
	l := &Listener{}

	a.Unsubscribe(l)
	assert.Equal(t, 0, a.ObserverCount())

	a.Subscribe(l)
	a.Subscribe(l)
	assert.Equal(t, 1, a.ObserverCount())

	a.Unsubscribe(l)
	a.Unsubscribe(l)
	assert.Equal(t, 0, a.ObserverCount())
}

func TestScene_DegenerateRecovers(t *testing.T) {
	s := New(Config{})
	mustAdd(t, s, "A", pt(0, 0))
	mustAdd(t, s, "B", pt(1, 0))
	mustAdd(t, s, "D", pt(0, 1))
	mustAdd(t, s, "E", pt(1, 2))
	l := mustConstruct(t, s, FormulaLineThroughPoints, "l", "A", "B")
	mustConstruct(t, s, FormulaLineThroughPoints, "m", "D", "E")
	x := mustConstruct(t, s, FormulaLineIntersection, "X", "l", "m")

	counts := map[string]int{}
	countMoved(s, counts, "l", "X")

	require.NoError(t, s.Move("B", pt(0, 0)))
	assert.Equal(t, StateDegenerate, l.State())
	assert.NotEmpty(t, l.Construction().Reason())
	assert.Equal(t, StateDegenerate, x.State(), "dependents of a degenerate construction degrade too")
	assert.Equal(t, map[string]int{"l": 1, "X": 1}, counts)

	require.NoError(t, s.Move("B", pt(2, 0)))
	assert.Equal(t, StateValid, l.State())
	assert.Empty(t, l.Construction().Reason())
	assert.True(t, geom.Same(l.Equation(), geom.LineEquation{Coordinate: geom.Real(0, 1, 0)}, s.Epsilon()))
	assert.Equal(t, StateValid, x.State())
	assert.True(t, geom.Same(x.Equation(), pt(-1, 0), s.Epsilon()))
}

func TestScene_RenameCollisionLeavesStateUnchanged(t *testing.T) {
	s := New(Config{})
	x := mustAdd(t, s, "X", pt(0, 0))
	y := mustAdd(t, s, "Y", pt(1, 0))
	renamed := 0
	x.Subscribe(&Listener{RenamedFunc: func(Renamed) { renamed++ }})

	err := s.Rename("X", "Y")
	require.Error(t, err)
	assert.True(t, IsNamingCollision(err))
	assert.Equal(t, "X", x.Name())
	got, _ := s.Lookup("Y")
	assert.Same(t, y, got)
	got, _ = s.Lookup("X")
	assert.Same(t, x, got)
	assert.Zero(t, renamed)
}

func TestScene_RenameEmitsOnce(t *testing.T) {
	s := New(Config{})
	a := mustAdd(t, s, "", pt(0, 0))
	require.Equal(t, "A", a.Name())
	mustAdd(t, s, "B", pt(1, 0))
	l := mustConstruct(t, s, FormulaLineThroughPoints, "", "A", "B")

	var got []Renamed
	a.Subscribe(&Listener{RenamedFunc: func(ev Renamed) {
		_, oldFound := s.Lookup(ev.OldName)
		_, newFound := s.Lookup(ev.NewName)
		assert.False(t, oldFound)
		assert.True(t, newFound)
		got = append(got, ev)
	}})

	require.NoError(t, s.Rename("A", "Origin"))
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].OldName)
	assert.Equal(t, "Origin", got[0].NewName)
	_, ok := s.Lookup("A")
	assert.False(t, ok)

	// Constructions hold inputs by reference.
	require.NoError(t, s.Move("Origin", pt(0, 1)))
	assert.True(t, geom.Same(l.Equation(), geom.LineEquation{Coordinate: geom.Real(1, 1, -1)}, s.Epsilon()))

	// The old name is free again.
	assert.Equal(t, "A", mustAdd(t, s, "", pt(3, 3)).Name())

	require.NoError(t, s.Rename("Origin", "Origin"))
	assert.Len(t, got, 1)
}

func TestScene_ConstructErrors(t *testing.T) {
	s := New(Config{})
	mustAdd(t, s, "A", pt(0, 0))
	mustAdd(t, s, "B", pt(0, 0))
	mustAdd(t, s, "C", pt(1, 1))

	_, err := s.Construct("bisector", "", "A", "C")
	assert.True(t, IsUnknownFormula(err))

	_, err = s.Construct(FormulaLineThroughPoints, "", "A", "Z")
	assert.True(t, IsUnresolvedInput(err))

	_, err = s.Construct(FormulaLineThroughPoints, "", "A")
	assert.True(t, IsWrongKind(err))

	l := mustConstruct(t, s, FormulaLineThroughPoints, "l", "A", "C")
	_, err = s.Construct(FormulaLineThroughPoints, "", "A", l.Name())
	assert.True(t, IsWrongKind(err))

	_, err = s.Construct(FormulaLineThroughPoints, "", "A", "B")
	require.Error(t, err)
	assert.True(t, IsDegenerate(err))

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 2, s.Objects()[0].ObserverCount()+s.Objects()[2].ObserverCount())
}

func TestScene_MoveErrors(t *testing.T) {
	s := New(Config{})
	mustAdd(t, s, "A", pt(0, 0))
	mustAdd(t, s, "B", pt(1, 0))
	mustConstruct(t, s, FormulaLineThroughPoints, "l", "A", "B")

	assert.True(t, IsNotFound(s.Move("Z", pt(0, 0))))
	assert.True(t, IsNotMovable(s.Move("l", geom.LineEquation{Coordinate: geom.Real(1, 0, 0)})))
	assert.True(t, IsWrongKind(s.Move("A", geom.LineEquation{Coordinate: geom.Real(1, 0, 0)})))

	err := s.Move("A", geom.PointEquation{})
	assert.True(t, IsInvalidValue(err))
	assert.True(t, errors.Is(err, geom.ErrZeroVector))

	_, err = s.Add("bad name", pt(0, 0))
	assert.True(t, IsInvalidValue(err))
}

func TestScene_RedefineRejectsCycles(t *testing.T) {
	s := New(Config{})
	mustAdd(t, s, "R", pt(0, 0))
	mustAdd(t, s, "P", pt(1, 0))
	mustAdd(t, s, "Q", pt(0, 1))
	mustAdd(t, s, "S", pt(2, 3))
	a := mustConstruct(t, s, FormulaLineThroughPoints, "a", "R", "P")
	mustConstruct(t, s, FormulaLineThroughPoints, "b", "R", "Q")
	mustConstruct(t, s, FormulaLineIntersection, "X", "a", "b")
	before := a.Equation()

	err := s.Redefine("a", "X", "P")
	require.Error(t, err)
	assert.True(t, IsCycle(err))
	assert.Equal(t, before, a.Equation())

	err = s.Redefine("X", "X", "b")
	assert.True(t, IsWrongKind(err), "a point cannot stand for a line")

	err = s.Redefine("P", "R", "Q")
	assert.True(t, IsWrongKind(err))

	err = s.Redefine("a", "R", "R")
	assert.True(t, IsDegenerate(err))
	assert.Equal(t, before, a.Equation())
}

func TestScene_RedefinePropagates(t *testing.T) {
	s := New(Config{})
	r := mustAdd(t, s, "R", pt(0, 0))
	mustAdd(t, s, "P", pt(1, 0))
	mustAdd(t, s, "Q", pt(0, 1))
	s2 := mustAdd(t, s, "S", pt(1, 1))
	a := mustConstruct(t, s, FormulaLineThroughPoints, "a", "R", "P")
	mustConstruct(t, s, FormulaLineThroughPoints, "b", "R", "Q")
	x := mustConstruct(t, s, FormulaLineIntersection, "X", "a", "b")

	require.NoError(t, s.Redefine("a", "S", "P"))
	assert.True(t, geom.Same(a.Equation(), geom.LineEquation{Coordinate: geom.Real(1, 0, -1)}, s.Epsilon()))
	assert.True(t, geom.Same(x.Equation(), geom.PointEquation{Coordinate: geom.Real(0, 1, 0)}, s.Epsilon()), "x=1 meets x=0 at infinity")
	assert.Equal(t, 1, r.ObserverCount(), "only b still depends on R")
	assert.Equal(t, 1, s2.ObserverCount())
}

func TestScene_TransformMovesFreeObjects(t *testing.T) {
	s := New(Config{})
	mustAdd(t, s, "A", pt(1, 1))
	mustAdd(t, s, "B", pt(2, 1))
	l := mustConstruct(t, s, FormulaLineThroughPoints, "l", "A", "B")

	shift, err := geom.NewTransformation(geom.Matrix3{{1, 0, 2}, {0, 1, 3}, {0, 0, 1}})
	require.NoError(t, err)
	require.NoError(t, s.Transform("A", shift))

	a, _ := s.Lookup("A")
	assert.True(t, geom.Same(a.Equation(), pt(3, 4), s.Epsilon()))
	assert.True(t, geom.Same(l.Equation(), geom.LineEquation{Coordinate: geom.Real(3, -1, -5)}, s.Epsilon()))
	assert.True(t, IsNotMovable(s.Transform("l", shift)))
}

func TestScene_RecomputeOrphaned(t *testing.T) {
	s := New(Config{})
	mustAdd(t, s, "A", pt(0, 0))
	mustAdd(t, s, "B", pt(1, 0))
	l := mustConstruct(t, s, FormulaLineThroughPoints, "l", "A", "B")
	c := l.Construction()
	require.NotNil(t, c)
	assert.Equal(t, FormulaLineThroughPoints, c.Formula())
	require.NoError(t, c.Recompute())

	_, err := s.Destroy("B")
	require.NoError(t, err)
	assert.True(t, IsOrphaned(c.Recompute()))
}

func TestScene_GeneratedNames(t *testing.T) {
	s := New(Config{})
	mustAdd(t, s, "", pt(0, 0))
	mustAdd(t, s, "", pt(1, 0))
	mustAdd(t, s, "l", geom.LineEquation{Coordinate: geom.Real(0, 1, 0)})
	assert.Equal(t, "l_0", s.SuggestName(geom.KindLine))
	l := mustConstruct(t, s, FormulaLineThroughPoints, "", "A", "B")
	assert.Equal(t, "l_0", l.Name())
	assert.Equal(t, "c", mustAdd(t, s, "", unitCircle()).Name())
	assert.Equal(t, "C", s.SuggestName(geom.KindPoint))
}

func TestScene_Clear(t *testing.T) {
	s := New(Config{})
	a := mustAdd(t, s, "", pt(0, 0))
	mustAdd(t, s, "", pt(1, 0))
	l := mustConstruct(t, s, FormulaLineThroughPoints, "", "A", "B")

	s.Clear()
	assert.Zero(t, s.Len())
	assert.True(t, a.Destroyed())
	assert.True(t, l.Destroyed())
	assert.Equal(t, "A", mustAdd(t, s, "", pt(0, 0)).Name())
}
