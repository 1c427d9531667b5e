package scene

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/rs/zerolog"

	"homogebra/internal/geom"
	"homogebra/internal/names"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultLinePrefix  = "l"
	defaultConicPrefix = "c"
)

// Config encapsulates the tunables of a Scene.
type Config struct {
	// Epsilon is the tolerance for zero tests. Defaults to geom.DefaultEpsilon.
	Epsilon float64
	// Generated names start from these prefixes. An empty PointPrefix walks
	// the alphabet (A, B, ... A_0, ...).
	PointPrefix string
	LinePrefix  string
	ConicPrefix string

	Logger    *zerolog.Logger
	Metrics   Metrics
	Publisher Publisher
}

// Scene owns the objects of one document together with its Dictionary and
// NameGenerator.
type Scene struct {
	eps      float64
	prefixes map[geom.Kind]string
	log      zerolog.Logger
	metrics  Metrics
	pub      Publisher

	dict  *names.Dictionary[Object]
	gen   *names.NameGenerator
	order []Object

	wave  *wave
	trail []string
	depth int
}

// New constructs a Scene from cfg.
func New(cfg Config) *Scene {
	s := &Scene{
		eps:     cfg.Epsilon,
		metrics: cfg.Metrics,
		pub:     cfg.Publisher,
		dict:    names.NewDictionary[Object](),
		gen:     names.NewNameGenerator(),
	}
	if s.eps <= 0 {
		s.eps = geom.DefaultEpsilon
	}
	if cfg.Logger != nil {
		s.log = *cfg.Logger
	} else {
		s.log = zerolog.Nop()
	}
	if s.metrics == nil {
		s.metrics = noopMetrics{}
	}
	if s.pub == nil {
		s.pub = noopPublisher{}
	}
	s.prefixes = map[geom.Kind]string{
		geom.KindPoint: cfg.PointPrefix,
		geom.KindLine:  cfg.LinePrefix,
		geom.KindConic: cfg.ConicPrefix,
	}
	if s.prefixes[geom.KindLine] == "" {
		s.prefixes[geom.KindLine] = defaultLinePrefix
	}
	if s.prefixes[geom.KindConic] == "" {
		s.prefixes[geom.KindConic] = defaultConicPrefix
	}
	return s
}

// Epsilon returns the tolerance in use.
func (s *Scene) Epsilon() float64 { return s.eps }

// Len returns the number of live objects.
func (s *Scene) Len() int { return len(s.order) }

// Lookup resolves name in the Dictionary.
func (s *Scene) Lookup(name string) (Object, bool) { return s.dict.Resolve(name) }

// Get is Lookup returning ErrNotFound.
func (s *Scene) Get(name string) (Object, error) {
	o, ok := s.dict.Resolve(name)
	if !ok {
		return nil, ErrNotFound(name)
	}
	return o, nil
}

// Objects returns the live objects in creation order.
func (s *Scene) Objects() []Object { return append([]Object(nil), s.order...) }

// SuggestName returns the name the next unnamed object of kind would get,
// without reserving it.
func (s *Scene) SuggestName(kind geom.Kind) string {
	return s.gen.Peek(s.prefixes[kind])
}

// Add places a free object. An empty name asks the generator for one.
func (s *Scene) Add(name string, eq geom.Equation) (Object, error) {
	if eq == nil {
		return nil, ErrInvalidValue(errors.New("missing value"))
	}
	if err := eq.Validate(s.eps); err != nil {
		return nil, ErrInvalidValue(err)
	}
	name, err := s.acceptName(name, eq.Kind())
	if err != nil {
		return nil, err
	}
	o := newObject(name, eq)
	o.core().state = StateValid
	if err := s.register(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Construct derives a new object with the formula registered as formula from
// the named inputs. Nothing is registered when an input is missing, has the
// wrong kind, or the formula has no value for the inputs.
//
// A new construction cannot close a cycle: its own object does not exist yet,
// so nothing can depend on it.
func (s *Scene) Construct(formula, name string, inputs ...string) (Object, error) {
	f, ok := LookupFormula(formula)
	if !ok {
		return nil, unknownFormulaError{name: formula}
	}
	in, err := s.resolveInputs(f, inputs)
	if err != nil {
		return nil, err
	}
	eq, reason := evaluate(f, in, s.eps)
	if eq == nil {
		return nil, ErrDegenerate(f.Name(), reason)
	}
	name, err = s.acceptName(name, f.Result())
	if err != nil {
		return nil, err
	}
	o := newObject(name, eq)
	c := &Construction{formula: f, scene: s, target: o, inputs: in}
	o.core().constr = c
	o.core().state = StateValid
	if err := s.register(o); err != nil {
		return nil, err
	}
	c.attach()
	s.metrics.Recomputed(true)
	return o, nil
}

// Move sets the value of a free object and propagates it.
func (s *Scene) Move(name string, eq geom.Equation) error {
	o, err := s.movable(name)
	if err != nil {
		return err
	}
	if eq == nil || eq.Kind() != o.Kind() {
		return errWrongKind("%s is a %s", name, o.Kind())
	}
	if err := eq.Validate(s.eps); err != nil {
		return ErrInvalidValue(err)
	}
	s.propagate(o, func() {
		o.core().eq = eq
		s.emit(Moved{Object: o})
	})
	return nil
}

// Transform applies a projective transformation to a free object.
func (s *Scene) Transform(name string, t geom.Transformation) error {
	o, err := s.movable(name)
	if err != nil {
		return err
	}
	eq, err := o.Equation().Apply(t)
	if err != nil {
		return ErrInvalidValue(err)
	}
	return s.Move(name, eq)
}

// Rename registers the object under newName and announces Renamed. A
// collision leaves everything unchanged. Renaming to the current name is a
// no-op and announces nothing.
func (s *Scene) Rename(oldName, newName string) error {
	o, err := s.live(oldName)
	if err != nil {
		return err
	}
	if oldName == newName {
		return nil
	}
	if err := validateName(newName); err != nil {
		return err
	}
	if err := s.dict.Rename(oldName, newName); err != nil {
		if errors.Is(err, names.ErrDuplicate) {
			return ErrNamingCollision(newName)
		}
		return err
	}
	s.gen.Release(oldName)
	s.gen.MarkUsed(newName)
	o.core().name = newName
	s.log.Debug().Str("from", oldName).Str("to", newName).Msg("object renamed")
	s.emit(Renamed{Object: o, OldName: oldName, NewName: newName})
	return nil
}

// Redefine points the construction named name at new inputs, keeping its
// formula and its dependents. It fails with a cycle error when an input is the
// construction itself or depends on it, and leaves the construction untouched
// when the new inputs give no value.
func (s *Scene) Redefine(name string, inputs ...string) error {
	o, err := s.live(name)
	if err != nil {
		return err
	}
	c := o.Construction()
	if c == nil {
		return errWrongKind("%s is not a construction", name)
	}
	in, err := s.resolveInputs(c.formula, inputs)
	if err != nil {
		return err
	}
	for _, x := range in {
		if x == o || s.reachable(o, x) {
			return ErrCycle(name, x.Name())
		}
	}
	eq, reason := evaluate(c.formula, in, s.eps)
	if eq == nil {
		return ErrDegenerate(c.formula.Name(), reason)
	}
	c.detach()
	c.inputs = in
	c.attach()
	s.propagate(o, func() {
		t := o.core()
		t.eq, t.state, c.reason = eq, StateValid, ""
		s.metrics.Recomputed(true)
		s.emit(Moved{Object: o})
	})
	return nil
}

// Destroy removes the object and, transitively, every construction depending
// on it. It returns the names of all removed objects, dependents first.
func (s *Scene) Destroy(name string) ([]string, error) {
	o, ok := s.dict.Resolve(name)
	if !ok {
		return nil, ErrNotFound(name)
	}
	mark := len(s.trail)
	s.depth++
	s.destroy(o, false)
	s.depth--
	out := append([]string(nil), s.trail[mark:]...)
	if s.depth == 0 {
		s.trail = s.trail[:0]
	}
	return out, nil
}

// Clear destroys every object and resets the name generator.
func (s *Scene) Clear() {
	for len(s.order) > 0 {
		s.destroy(s.order[len(s.order)-1], false)
	}
	s.trail = s.trail[:0]
	s.gen = names.NewNameGenerator()
}

// live resolves name to an object that is not being destroyed.
func (s *Scene) live(name string) (Object, error) {
	o, ok := s.dict.Resolve(name)
	if !ok {
		return nil, ErrNotFound(name)
	}
	if o.core().dying {
		return nil, ErrOrphaned(name)
	}
	return o, nil
}

func (s *Scene) movable(name string) (Object, error) {
	o, err := s.live(name)
	if err != nil {
		return nil, err
	}
	if o.Construction() != nil {
		return nil, ErrNotMovable(name)
	}
	return o, nil
}

func (s *Scene) resolveInputs(f Formula, inputs []string) ([]Object, error) {
	kinds := f.Inputs()
	if len(inputs) != len(kinds) {
		return nil, errWrongKind("%s takes %d inputs, got %d", f.Name(), len(kinds), len(inputs))
	}
	out := make([]Object, len(inputs))
	for i, n := range inputs {
		o, ok := s.dict.Resolve(n)
		if !ok || o.core().dying {
			return nil, ErrUnresolvedInput(n)
		}
		if o.Kind() != kinds[i] {
			return nil, errWrongKind("input %d of %s must be a %s, %s is a %s", i+1, f.Name(), kinds[i], n, o.Kind())
		}
		out[i] = o
	}
	return out, nil
}

// acceptName returns the name a new object of kind will be registered under.
// Generated names are cross-checked against the Dictionary since names given
// by the user bypass the generator.
func (s *Scene) acceptName(name string, kind geom.Kind) (string, error) {
	if name == "" {
		prefix := s.prefixes[kind]
		for {
			n := s.gen.Next(prefix)
			if !s.dict.IsTaken(n) {
				return n, nil
			}
		}
	}
	if err := validateName(name); err != nil {
		return "", err
	}
	if s.dict.IsTaken(name) {
		return "", ErrNamingCollision(name)
	}
	s.gen.MarkUsed(name)
	return name, nil
}

func (s *Scene) register(o Object) error {
	if err := s.dict.Register(o.Name(), o); err != nil {
		return ErrNamingCollision(o.Name())
	}
	s.order = append(s.order, o)
	s.metrics.ObjectCount(len(s.order))
	ev := s.log.Debug().Str("name", o.Name()).Str("kind", string(o.Kind()))
	if c := o.Construction(); c != nil {
		ev = ev.Str("formula", c.Formula())
	}
	ev.Msg("object created")
	return nil
}

func (s *Scene) unlist(o Object) {
	for i, x := range s.order {
		if x == o {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			return
		}
	}
}

func validateName(name string) error {
	if name == "" {
		return ErrInvalidValue(names.ErrEmptyName)
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return ErrInvalidValue(fmt.Errorf("name %q contains whitespace or control characters", name))
		}
	}
	return nil
}
