package workspace

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"homogebra/internal/scene"
	"homogebra/pkg/types"
)

func real3(x, y, z float64) []types.Complex {
	return []types.Complex{{Re: x}, {Re: y}, {Re: z}}
}

func newTestWorkspace(t *testing.T) (*Workspace, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return New(Config{Tracer: provider.Tracer("test")}), exporter
}

func seed(t *testing.T, w *Workspace) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []struct {
		name string
		x, y float64
	}{{"A", 0, 0}, {"B", 1, 0}, {"C", 0, 1}} {
		_, err := w.Create(ctx, types.CreateObjectRequest{Kind: "point", Name: p.name, Value: real3(p.x, p.y, 1)})
		require.NoError(t, err)
	}
}

func TestWorkspace_CreateConstructMove(t *testing.T) {
	w, _ := newTestWorkspace(t)
	ctx := context.Background()
	seed(t, w)

	l, err := w.Construct(ctx, types.CreateConstructionRequest{Construction: scene.FormulaLineThroughPoints, Inputs: []string{"A", "B"}})
	require.NoError(t, err)
	assert.Equal(t, "l", l.Name)
	assert.Equal(t, "line", l.Kind)
	assert.Equal(t, []string{"A", "B"}, l.Inputs)
	assert.Len(t, l.Value, 3)

	a, err := w.Move(ctx, "A", types.MoveRequest{Value: real3(2, 4, 2)})
	require.NoError(t, err)
	require.NotNil(t, a.Position)
	assert.InDelta(t, 1, a.Position.X, 1e-12)
	assert.InDelta(t, 2, a.Position.Y, 1e-12)
	assert.Equal(t, 1, a.Observers)

	got, err := w.Get(ctx, "l")
	require.NoError(t, err)
	assert.Equal(t, "valid", got.State)

	_, err = w.Move(ctx, "B", types.MoveRequest{Value: real3(1, 2, 1)})
	require.NoError(t, err)
	got, _ = w.Get(ctx, "l")
	assert.Equal(t, "degenerate", got.State)
	assert.NotEmpty(t, got.Reason)

	list := w.List(ctx)
	require.Len(t, list.Objects, 4)
	assert.Equal(t, "C", list.Objects[2].Name)
}

func TestWorkspace_Errors(t *testing.T) {
	w, exporter := newTestWorkspace(t)
	ctx := context.Background()
	seed(t, w)

	_, err := w.Create(ctx, types.CreateObjectRequest{Kind: "circle", Value: real3(1, 0, 0)})
	assert.True(t, IsBadRequest(err))

	_, err = w.Create(ctx, types.CreateObjectRequest{Kind: "conic", Value: real3(1, 0, 0)})
	assert.True(t, scene.IsInvalidValue(err))

	_, err = w.Move(ctx, "Z", types.MoveRequest{Value: real3(1, 0, 1)})
	assert.True(t, scene.IsNotFound(err))

	_, err = w.Transform(ctx, "A", types.TransformRequest{Matrix: [][]types.Complex{real3(1, 0, 0), real3(0, 1, 0)}})
	assert.True(t, IsBadRequest(err))

	_, err = w.Transform(ctx, "A", types.TransformRequest{Matrix: [][]types.Complex{real3(1, 0, 0), real3(1, 0, 0), real3(0, 0, 1)}})
	assert.True(t, scene.IsInvalidValue(err))

	_, err = w.Rename(ctx, "A", types.RenameRequest{Name: "B"})
	assert.True(t, scene.IsNamingCollision(err))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = w.Destroy(cancelled, "A")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = w.Get(ctx, "A")
	assert.NoError(t, err)

	var failed int
	for _, s := range exporter.GetSpans() {
		if s.Status.Code == codes.Error {
			failed++
		}
	}
	assert.Equal(t, 7, failed)
}

func TestWorkspace_TransformRenameRedefineDestroy(t *testing.T) {
	w, exporter := newTestWorkspace(t)
	ctx := context.Background()
	seed(t, w)
	_, err := w.Construct(ctx, types.CreateConstructionRequest{Construction: scene.FormulaLineThroughPoints, Name: "ab", Inputs: []string{"A", "B"}})
	require.NoError(t, err)

	shift := [][]types.Complex{real3(1, 0, 5), real3(0, 1, 0), real3(0, 0, 1)}
	a, err := w.Transform(ctx, "A", types.TransformRequest{Matrix: shift})
	require.NoError(t, err)
	assert.InDelta(t, 5, a.Position.X, 1e-12)

	r, err := w.Rename(ctx, "ab", types.RenameRequest{Name: "base"})
	require.NoError(t, err)
	assert.Equal(t, "base", r.Name)

	r, err = w.Redefine(ctx, "base", types.RedefineRequest{Inputs: []string{"A", "C"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, r.Inputs)

	resp, err := w.Destroy(ctx, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "C"}, resp.Destroyed)

	st := w.Status()
	assert.Equal(t, 2, st.Objects)
	assert.Zero(t, st.Constructions)
	assert.Contains(t, st.Formulas, scene.FormulaPolarLine)

	var names []string
	for _, s := range exporter.GetSpans() {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "workspace.redefine")
	assert.Contains(t, names, "workspace.destroy")
}

func TestWorkspace_EventsAndNearby(t *testing.T) {
	w, _ := newTestWorkspace(t)
	ctx := context.Background()
	seed(t, w)
	_, err := w.Move(ctx, "A", types.MoveRequest{Value: real3(0.1, 0, 1)})
	require.NoError(t, err)
	_, err = w.Rename(ctx, "A", types.RenameRequest{Name: "P"})
	require.NoError(t, err)

	ev := w.Events(0, 0)
	require.Len(t, ev.Events, 2)
	assert.Equal(t, "moved", ev.Events[0].Type)
	assert.Equal(t, "renamed", ev.Events[1].Type)
	assert.Equal(t, "A", ev.Events[1].OldName)
	assert.Equal(t, "P", ev.Events[1].NewName)
	assert.Equal(t, uint64(2), ev.Next)
	assert.Empty(t, w.Events(ev.Next, 0).Events)

	hits := w.Nearby(ctx, 0, 0, 0)
	require.Len(t, hits.Hits, 1)
	assert.Equal(t, "P", hits.Hits[0].Object.Name)
	assert.InDelta(t, 0.1, hits.Hits[0].Distance, 1e-12)
	assert.Len(t, w.Nearby(ctx, 0, 0, 2).Hits, 3)
}

func TestWorkspace_ConcurrentMoves(t *testing.T) {
	w, _ := newTestWorkspace(t)
	ctx := context.Background()
	seed(t, w)
	_, err := w.Construct(ctx, types.CreateConstructionRequest{Construction: scene.FormulaLineThroughPoints, Inputs: []string{"A", "B"}})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := w.Move(ctx, "A", types.MoveRequest{Value: real3(float64(i), float64(j+2), 1)})
				assert.NoError(t, err)
				_ = w.List(ctx)
			}
		}(i)
	}
	wg.Wait()
	// every move emits Moved for A and for the line
	assert.Equal(t, uint64(8*50*2), w.Journal().Total())
}

func TestWorkspace_Do(t *testing.T) {
	w, _ := newTestWorkspace(t)
	seed(t, w)
	err := w.Do(context.Background(), func(s *scene.Scene) error {
		if s.Len() != 3 {
			return fmt.Errorf("want 3 objects, got %d", s.Len())
		}
		_, err := s.Construct(scene.FormulaLineThroughPoints, "bc", "B", "C")
		return err
	})
	require.NoError(t, err)
	_, err = w.Get(context.Background(), "bc")
	assert.NoError(t, err)
}
