package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"homogebra/internal/config"
	"homogebra/internal/scene"
	"homogebra/internal/workspace"
	"homogebra/pkg/types"
)

// demo builds two lines through a shared point and their intersection, moves
// the shared point, then destroys it, printing every journaled event.
func demo(ctx context.Context, cfg config.Config, log zerolog.Logger, w io.Writer) error {
	ws := workspace.New(workspaceConfig(cfg, log, nil))

	point := func(x, y float64) []types.Complex {
		return []types.Complex{{Re: x}, {Re: y}, {Re: 1}}
	}
	for _, p := range []struct {
		name string
		x, y float64
	}{{"A", 0, 0}, {"B", 4, 0}, {"C", 0, 3}} {
		if _, err := ws.Create(ctx, types.CreateObjectRequest{Kind: "point", Name: p.name, Value: point(p.x, p.y)}); err != nil {
			return err
		}
	}
	for _, c := range []types.CreateConstructionRequest{
		{Construction: scene.FormulaLineThroughPoints, Name: "ab", Inputs: []string{"A", "B"}},
		{Construction: scene.FormulaLineThroughPoints, Name: "ac", Inputs: []string{"A", "C"}},
		{Construction: scene.FormulaLineIntersection, Name: "X", Inputs: []string{"ab", "ac"}},
	} {
		if _, err := ws.Construct(ctx, c); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "# move A to (1, 1)")
	if _, err := ws.Move(ctx, "A", types.MoveRequest{Value: point(1, 1)}); err != nil {
		return err
	}
	x, err := ws.Get(ctx, "X")
	if err != nil {
		return err
	}
	next := printEvents(w, ws, 0)
	if x.Position != nil {
		fmt.Fprintf(w, "X is at (%.4g, %.4g)\n", x.Position.X, x.Position.Y)
	}

	fmt.Fprintln(w, "# destroy A")
	resp, err := ws.Destroy(ctx, "A")
	if err != nil {
		return err
	}
	printEvents(w, ws, next)
	fmt.Fprintf(w, "destroyed: %s\n", strings.Join(resp.Destroyed, ", "))
	fmt.Fprintf(w, "remaining objects: %d\n", ws.Status().Objects)
	return nil
}

func printEvents(w io.Writer, ws *workspace.Workspace, since uint64) uint64 {
	resp := ws.Events(since, 0)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, ev := range resp.Events {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", ev.Seq, ev.Type, ev.Name, ev.State)
	}
	_ = tw.Flush()
	return resp.Next
}
