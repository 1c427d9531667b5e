package httpapi

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"homogebra/internal/scene"
	"homogebra/internal/workspace"
	"homogebra/pkg/types"
)

// json is the codec for request and response bodies.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var he HTTPError
	switch {
	case errors.As(err, &he):
		return he.StatusCode()
	case workspace.IsBadRequest(err):
		return http.StatusBadRequest
	case scene.IsNotFound(err), scene.IsUnresolvedInput(err):
		return http.StatusNotFound
	case scene.IsNamingCollision(err), scene.IsCycle(err):
		return http.StatusConflict
	case scene.IsDegenerate(err), scene.IsInvalidValue(err), scene.IsWrongKind(err), scene.IsUnknownFormula(err):
		return http.StatusUnprocessableEntity
	case scene.IsNotMovable(err):
		return http.StatusMethodNotAllowed
	case scene.IsOrphaned(err):
		return http.StatusGone
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg, Code: status})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
