package httpapi

import (
	"context"
)

// serverBaseCtx is canceled when the process shuts down. Mutating handlers
// derive from it so in-flight work stops with the server.
var serverBaseCtx = context.Background()

// SetBaseContext sets the process-level base context used by handlers. A nil
// ctx restores context.Background.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// joinContexts returns a context canceled when either a or b is done; its
// cause is the cause of whichever finished first. cancel must be called when
// the handler returns.
func joinContexts(a, b context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(a)
	stop := context.AfterFunc(b, func() { cancel(context.Cause(b)) })
	return ctx, func() {
		stop()
		cancel(context.Canceled)
	}
}
