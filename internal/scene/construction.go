package scene

import (
	"homogebra/internal/geom"
)

// Construction derives the value of its target object from its inputs. It
// observes every input: Moved triggers a recomputation, GoingToBeDestroyed
// destroys the target, Renamed is ignored because inputs are held by
// reference.
//
// A construction is created by Scene.Construct and reached through
// Object.Construction of its target. Its target takes part in the graph like
// any other object, so constructions chain.
type Construction struct {
	formula Formula
	scene   *Scene
	target  Object
	inputs  []Object
	reason  string
}

// Formula returns the formula name, e.g. "line_through_points".
func (c *Construction) Formula() string { return c.formula.Name() }

// Object returns the constructed object.
func (c *Construction) Object() Object { return c.target }

// Inputs returns the current inputs in formula order.
func (c *Construction) Inputs() []Object { return append([]Object(nil), c.inputs...) }

// Reason explains the last degenerate recomputation; empty when valid.
func (c *Construction) Reason() string { return c.reason }

// Recompute re-evaluates the formula and announces the result as if an input
// had moved.
func (c *Construction) Recompute() error {
	if c.target.Destroyed() || c.target.core().dying {
		return ErrOrphaned(c.target.Name())
	}
	c.OnMoved(Moved{Object: c.target})
	return nil
}

// OnMoved recomputes the target. Outside of a wave it starts one rooted at
// the target so that dependents still recompute once each.
func (c *Construction) OnMoved(Moved) {
	if c.scene.wave == nil {
		c.scene.propagate(c.target, func() { c.scene.recompute(c) })
		return
	}
	c.scene.recompute(c)
}

func (c *Construction) OnRenamed(Renamed) {}

func (c *Construction) OnGoingToBeDestroyed(ev GoingToBeDestroyed) {
	for _, in := range c.inputs {
		if in == ev.Object {
			c.scene.destroy(c.target, true)
			return
		}
	}
}

func (c *Construction) attach() {
	for _, in := range c.inputs {
		in.Subscribe(c)
	}
}

func (c *Construction) detach() {
	for _, in := range c.inputs {
		in.Unsubscribe(c)
	}
}

// evaluate computes the formula for inputs. A degenerate input makes the
// result degenerate without running the formula.
func evaluate(f Formula, inputs []Object, eps float64) (geom.Equation, string) {
	eqs := make([]geom.Equation, len(inputs))
	for i, in := range inputs {
		if !in.Valid() {
			return nil, "input " + in.Name() + " is " + string(in.State())
		}
		eqs[i] = in.Equation()
	}
	eq, ok := f.Compute(eqs, eps)
	if !ok {
		return nil, "no solution for current inputs"
	}
	if err := eq.Validate(eps); err != nil {
		return nil, err.Error()
	}
	return eq, ""
}
