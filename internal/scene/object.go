package scene

import (
	"github.com/google/uuid"

	"homogebra/internal/geom"
)

// State is the lifecycle state of an object.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateValid         State = "valid"
	StateDegenerate    State = "degenerate"
	StateDestroyed     State = "destroyed"
)

// Object is a point, line or conic living in a scene. It owns its value and
// its observer set and is the only emitter of events about itself.
//
// The concrete types are *Point, *Line and *Conic.
type Object interface {
	// ID is a handle that stays the same across renames.
	ID() uuid.UUID
	Name() string
	Kind() geom.Kind
	// Equation is the last computed value. For a degenerate construction it
	// is the last valid value and must not be trusted.
	Equation() geom.Equation
	State() State
	Valid() bool
	Destroyed() bool
	// Construction is nil for free objects.
	Construction() *Construction
	// Subscribe adds o to the observer set. Subscribing twice is a no-op, as
	// is subscribing to a destroyed object.
	Subscribe(o Observer)
	// Unsubscribe removes o. Removing an absent observer is a no-op.
	Unsubscribe(o Observer)
	ObserverCount() int

	core() *object
}

type object struct {
	id        uuid.UUID
	name      string
	eq        geom.Equation
	state     State
	constr    *Construction
	observers observerSet
	dying     bool
}

func (o *object) ID() uuid.UUID                { return o.id }
func (o *object) Name() string                 { return o.name }
func (o *object) Kind() geom.Kind              { return o.eq.Kind() }
func (o *object) Equation() geom.Equation      { return o.eq }
func (o *object) State() State                 { return o.state }
func (o *object) Valid() bool                  { return o.state == StateValid }
func (o *object) Destroyed() bool              { return o.state == StateDestroyed }
func (o *object) Construction() *Construction  { return o.constr }
func (o *object) ObserverCount() int           { return o.observers.len() }
func (o *object) core() *object                { return o }

func (o *object) Subscribe(obs Observer) {
	if o.dying || o.state == StateDestroyed {
		return
	}
	o.observers.add(obs)
}

func (o *object) Unsubscribe(obs Observer) { o.observers.remove(obs) }

// Point is a point of the projective plane.
type Point struct{ object }

// PointEquation is the typed value.
func (p *Point) PointEquation() geom.PointEquation { return p.eq.(geom.PointEquation) }

// Line is a line of the projective plane.
type Line struct{ object }

func (l *Line) LineEquation() geom.LineEquation { return l.eq.(geom.LineEquation) }

// Conic is a conic section of the projective plane.
type Conic struct{ object }

func (c *Conic) ConicEquation() geom.ConicEquation { return c.eq.(geom.ConicEquation) }

func newObject(name string, eq geom.Equation) Object {
	base := object{id: uuid.New(), name: name, eq: eq, state: StateUninitialized}
	switch eq.(type) {
	case geom.PointEquation:
		return &Point{object: base}
	case geom.LineEquation:
		return &Line{object: base}
	case geom.ConicEquation:
		return &Conic{object: base}
	}
	return nil
}
