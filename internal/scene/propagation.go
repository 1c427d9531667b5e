package scene

// wave tracks one propagation of Moved. Constructions reached by the wave are
// marked pending instead of being called from inside the emitting object, and
// the driver in propagate calls each of them once, in topological order.
type wave struct {
	order   []*Construction
	pos     map[*Construction]int
	cursor  int
	pending map[*Construction]Object
	// extra holds constructions marked after their slot in order was passed,
	// or that were created while the wave ran.
	extra []*Construction
}

func newWave(order []*Construction) *wave {
	w := &wave{
		order:   order,
		pos:     make(map[*Construction]int, len(order)),
		pending: make(map[*Construction]Object),
	}
	for i, c := range order {
		w.pos[c] = i
	}
	return w
}

func (w *wave) mark(c *Construction, cause Object) {
	if _, ok := w.pending[c]; !ok {
		if p, ok := w.pos[c]; !ok || p < w.cursor {
			w.extra = append(w.extra, c)
		}
	}
	w.pending[c] = cause
}

func (w *wave) next() (*Construction, Object) {
	for w.cursor < len(w.order) {
		c := w.order[w.cursor]
		w.cursor++
		if cause, ok := w.pending[c]; ok {
			delete(w.pending, c)
			return c, cause
		}
	}
	for len(w.extra) > 0 {
		c := w.extra[0]
		w.extra = w.extra[1:]
		if cause, ok := w.pending[c]; ok {
			delete(w.pending, c)
			return c, cause
		}
	}
	return nil, nil
}

// propagate runs apply, which changes root and emits its Moved, then drives
// the wave until every affected construction has recomputed.
func (s *Scene) propagate(root Object, apply func()) {
	w := newWave(s.downstream(root))
	outer := s.wave
	s.wave = w
	defer func() { s.wave = outer }()

	apply()
	for c, cause := w.next(); c != nil; c, cause = w.next() {
		if t := c.target.core(); t.dying || t.state == StateDestroyed {
			continue
		}
		s.deliver(c, Moved{Object: cause})
	}
}

// downstream returns the constructions reachable from root in reverse
// post-order, so every construction comes after all of its reachable inputs.
// Observers are visited last to first, which puts earlier subscriptions
// earlier in the result.
func (s *Scene) downstream(root Object) []*Construction {
	seen := map[*object]bool{root.core(): true}
	var post []*Construction
	var visit func(o Object)
	visit = func(o Object) {
		obs := o.core().observers.snapshot()
		for i := len(obs) - 1; i >= 0; i-- {
			c, ok := obs[i].(*Construction)
			if !ok || c.scene != s || seen[c.target.core()] {
				continue
			}
			seen[c.target.core()] = true
			visit(c.target)
			post = append(post, c)
		}
	}
	visit(root)
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post
}

// reachable reports whether to depends, directly or not, on from.
func (s *Scene) reachable(from, to Object) bool {
	for _, c := range s.downstream(from) {
		if c.target == to {
			return true
		}
	}
	return false
}

// emit dispatches ev to the observers of its source, in subscription order,
// over a snapshot of the set. Observers unsubscribed before their turn are
// skipped. During a wave, Moved only marks constructions of this scene.
func (s *Scene) emit(ev Event) {
	s.metrics.EventDispatched(ev.Type())
	s.pub.Publish(ev)
	src := ev.Source().core()
	m, moved := ev.(Moved)
	for _, o := range src.observers.snapshot() {
		if !src.observers.has(o) {
			continue
		}
		if moved && s.wave != nil {
			if c, ok := o.(*Construction); ok && c.scene == s {
				s.wave.mark(c, m.Object)
				continue
			}
		}
		s.deliver(o, ev)
	}
}

// deliver calls one observer. A panic is contained so the remaining
// observers are still notified.
func (s *Scene) deliver(o Observer, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			s.metrics.ObserverPanicked()
			s.log.Warn().
				Str("event", string(ev.Type())).
				Str("object", ev.Source().Name()).
				Interface("panic", r).
				Msg("observer panicked")
		}
	}()
	switch e := ev.(type) {
	case Moved:
		o.OnMoved(e)
	case Renamed:
		o.OnRenamed(e)
	case GoingToBeDestroyed:
		o.OnGoingToBeDestroyed(e)
	}
}

// recompute evaluates c and announces the result. A degenerate result keeps
// the last valid value and is announced as well.
func (s *Scene) recompute(c *Construction) {
	t := c.target.core()
	if t.dying || t.state == StateDestroyed {
		return
	}
	eq, reason := evaluate(c.formula, c.inputs, s.eps)
	if eq == nil {
		if t.state != StateDegenerate {
			s.log.Warn().Str("name", t.name).Str("formula", c.Formula()).Str("reason", reason).Msg("construction degenerate")
		}
		t.state, c.reason = StateDegenerate, reason
		s.metrics.Recomputed(false)
	} else {
		if t.state == StateDegenerate {
			s.log.Info().Str("name", t.name).Msg("construction recovered")
		}
		t.eq, t.state, c.reason = eq, StateValid, ""
		s.metrics.Recomputed(true)
	}
	s.emit(Moved{Object: c.target})
}

// destroy announces GoingToBeDestroyed, which destroys dependents first, and
// then removes o from the scene.
func (s *Scene) destroy(o Object, cascade bool) {
	t := o.core()
	if t.dying || t.state == StateDestroyed {
		return
	}
	t.dying = true
	if c := t.constr; c != nil {
		c.detach()
	}
	s.emit(GoingToBeDestroyed{Object: o})

	s.dict.Unregister(t.name)
	s.gen.Release(t.name)
	s.unlist(o)
	t.state = StateDestroyed
	t.observers.clear()
	s.trail = append(s.trail, t.name)
	s.metrics.Destroyed(cascade)
	s.metrics.ObjectCount(len(s.order))
	s.log.Debug().Str("name", t.name).Bool("cascade", cascade).Msg("object destroyed")
}
