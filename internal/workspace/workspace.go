package workspace

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"homogebra/internal/scene"
	"homogebra/pkg/types"
)

// Workspace serialises access to one scene.
type Workspace struct {
	mu      sync.Mutex
	scene   *scene.Scene
	journal *Journal
	tracer  trace.Tracer
	radius  float64
	started time.Time
}

// Journal returns the event journal.
func (w *Workspace) Journal() *Journal { return w.journal }

// Do runs fn with exclusive access to the scene. fn must not keep the scene
// or its objects after returning.
func (w *Workspace) Do(ctx context.Context, fn func(*scene.Scene) error) (err error) {
	_, span := w.start(ctx, "do", "")
	defer func() { finish(span, err) }()
	if err = ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(w.scene)
}

// List returns every object in creation order.
func (w *Workspace) List(ctx context.Context) types.ObjectsResponse {
	_, span := w.start(ctx, "list", "")
	defer span.End()
	w.mu.Lock()
	defer w.mu.Unlock()
	objs := w.scene.Objects()
	resp := types.ObjectsResponse{Objects: make([]types.Object, 0, len(objs))}
	for _, o := range objs {
		resp.Objects = append(resp.Objects, ToObject(o, w.scene.Epsilon()))
	}
	span.SetAttributes(attribute.Int("objects", len(objs)))
	return resp
}

// Get returns the named object.
func (w *Workspace) Get(ctx context.Context, name string) (obj types.Object, err error) {
	_, span := w.start(ctx, "get", name)
	defer func() { finish(span, err) }()
	w.mu.Lock()
	defer w.mu.Unlock()
	o, err := w.scene.Get(name)
	if err != nil {
		return types.Object{}, err
	}
	return ToObject(o, w.scene.Epsilon()), nil
}

// Create places a free object.
func (w *Workspace) Create(ctx context.Context, req types.CreateObjectRequest) (obj types.Object, err error) {
	_, span := w.start(ctx, "create", req.Name)
	defer func() { finish(span, err) }()
	if err = ctx.Err(); err != nil {
		return types.Object{}, err
	}
	eq, err := EquationFromValue(req.Kind, req.Value)
	if err != nil {
		return types.Object{}, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	o, err := w.scene.Add(req.Name, eq)
	if err != nil {
		return types.Object{}, err
	}
	return ToObject(o, w.scene.Epsilon()), nil
}

// Construct derives a new object.
func (w *Workspace) Construct(ctx context.Context, req types.CreateConstructionRequest) (obj types.Object, err error) {
	_, span := w.start(ctx, "construct", req.Name)
	defer func() { finish(span, err) }()
	span.SetAttributes(attribute.String("formula", req.Construction))
	if err = ctx.Err(); err != nil {
		return types.Object{}, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	o, err := w.scene.Construct(req.Construction, req.Name, req.Inputs...)
	if err != nil {
		return types.Object{}, err
	}
	return ToObject(o, w.scene.Epsilon()), nil
}

// Move sets the value of a free object and propagates it.
func (w *Workspace) Move(ctx context.Context, name string, req types.MoveRequest) (obj types.Object, err error) {
	_, span := w.start(ctx, "move", name)
	defer func() { finish(span, err) }()
	if err = ctx.Err(); err != nil {
		return types.Object{}, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	o, err := w.scene.Get(name)
	if err != nil {
		return types.Object{}, err
	}
	eq, err := EquationFromValue(string(o.Kind()), req.Value)
	if err != nil {
		return types.Object{}, err
	}
	if err := w.scene.Move(name, eq); err != nil {
		return types.Object{}, err
	}
	return ToObject(o, w.scene.Epsilon()), nil
}

// Transform applies a projective transformation to a free object.
func (w *Workspace) Transform(ctx context.Context, name string, req types.TransformRequest) (obj types.Object, err error) {
	_, span := w.start(ctx, "transform", name)
	defer func() { finish(span, err) }()
	if err = ctx.Err(); err != nil {
		return types.Object{}, err
	}
	t, err := TransformationFromMatrix(req.Matrix)
	if err != nil {
		return types.Object{}, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.scene.Transform(name, t); err != nil {
		return types.Object{}, err
	}
	o, _ := w.scene.Lookup(name)
	return ToObject(o, w.scene.Epsilon()), nil
}

// Rename renames an object.
func (w *Workspace) Rename(ctx context.Context, name string, req types.RenameRequest) (obj types.Object, err error) {
	_, span := w.start(ctx, "rename", name)
	defer func() { finish(span, err) }()
	span.SetAttributes(attribute.String("new_name", req.Name))
	if err = ctx.Err(); err != nil {
		return types.Object{}, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.scene.Rename(name, req.Name); err != nil {
		return types.Object{}, err
	}
	o, _ := w.scene.Lookup(req.Name)
	return ToObject(o, w.scene.Epsilon()), nil
}

// Redefine points a construction at new inputs.
func (w *Workspace) Redefine(ctx context.Context, name string, req types.RedefineRequest) (obj types.Object, err error) {
	_, span := w.start(ctx, "redefine", name)
	defer func() { finish(span, err) }()
	if err = ctx.Err(); err != nil {
		return types.Object{}, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.scene.Redefine(name, req.Inputs...); err != nil {
		return types.Object{}, err
	}
	o, _ := w.scene.Lookup(name)
	return ToObject(o, w.scene.Epsilon()), nil
}

// Destroy removes an object and everything depending on it.
func (w *Workspace) Destroy(ctx context.Context, name string) (resp types.DestroyResponse, err error) {
	_, span := w.start(ctx, "destroy", name)
	defer func() { finish(span, err) }()
	if err = ctx.Err(); err != nil {
		return types.DestroyResponse{}, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	gone, err := w.scene.Destroy(name)
	if err != nil {
		return types.DestroyResponse{}, err
	}
	span.SetAttributes(attribute.Int("destroyed", len(gone)))
	return types.DestroyResponse{Destroyed: gone}, nil
}

// Nearby returns the objects within radius of (x, y), closest first. A
// non-positive radius uses the configured default.
func (w *Workspace) Nearby(ctx context.Context, x, y, radius float64) types.NearbyResponse {
	_, span := w.start(ctx, "nearby", "")
	defer span.End()
	if radius <= 0 {
		radius = w.radius
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	hits := w.scene.Nearby(x, y, radius)
	resp := types.NearbyResponse{Hits: make([]types.NearbyHit, 0, len(hits))}
	for _, h := range hits {
		resp.Hits = append(resp.Hits, types.NearbyHit{Object: ToObject(h.Object, w.scene.Epsilon()), Distance: h.Distance})
	}
	return resp
}

// Events returns journaled events after since.
func (w *Workspace) Events(since uint64, limit int) types.EventsResponse {
	events, next, truncated := w.journal.Since(since, limit)
	if events == nil {
		events = []types.EventRecord{}
	}
	return types.EventsResponse{Events: events, Next: next, Truncated: truncated}
}

// Clear destroys every object.
func (w *Workspace) Clear(ctx context.Context) {
	_, span := w.start(ctx, "clear", "")
	defer span.End()
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scene.Clear()
}

func (w *Workspace) start(ctx context.Context, op, name string) (context.Context, trace.Span) {
	var opts []trace.SpanStartOption
	if name != "" {
		opts = append(opts, trace.WithAttributes(attribute.String("object", name)))
	}
	return w.tracer.Start(ctx, "workspace."+op, opts...)
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
