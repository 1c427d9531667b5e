//go:build !swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
)

// MountSwagger leaves r untouched. Build with -tags=swagger to serve the UI.
func MountSwagger(chi.Router) {
	zlog.Debug().Msg("swagger UI not compiled in")
}
