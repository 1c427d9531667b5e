package workspace

import (
	"homogebra/internal/scene"
	"homogebra/pkg/types"
)

// Status builds a status response for /status.
func (w *Workspace) Status() types.StatusResponse {
	w.mu.Lock()
	defer w.mu.Unlock()
	now := w.journal.now()
	resp := types.StatusResponse{
		Objects:        w.scene.Len(),
		EventsTotal:    w.journal.Total(),
		Formulas:       scene.FormulaNames(),
		Epsilon:        w.scene.Epsilon(),
		UptimeSeconds:  int64(now.Sub(w.started).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
	for _, o := range w.scene.Objects() {
		if o.Construction() != nil {
			resp.Constructions++
		}
		if o.State() == scene.StateDegenerate {
			resp.Degenerate++
		}
	}
	return resp
}
