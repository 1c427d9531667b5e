package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"homogebra/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	List(ctx context.Context) types.ObjectsResponse
	Get(ctx context.Context, name string) (types.Object, error)
	Create(ctx context.Context, req types.CreateObjectRequest) (types.Object, error)
	Construct(ctx context.Context, req types.CreateConstructionRequest) (types.Object, error)
	Move(ctx context.Context, name string, req types.MoveRequest) (types.Object, error)
	Transform(ctx context.Context, name string, req types.TransformRequest) (types.Object, error)
	Rename(ctx context.Context, name string, req types.RenameRequest) (types.Object, error)
	Redefine(ctx context.Context, name string, req types.RedefineRequest) (types.Object, error)
	Destroy(ctx context.Context, name string) (types.DestroyResponse, error)
	Nearby(ctx context.Context, x, y, radius float64) types.NearbyResponse
	Events(since uint64, limit int) types.EventsResponse
	Status() types.StatusResponse
}

// maxEventsPerPage bounds GET /events responses.
const maxEventsPerPage = 500

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	h := &handlers{svc: svc}
	r.Group(func(r chi.Router) {
		r.Use(inflightMiddleware)

		r.Get("/objects", h.list)
		r.Post("/objects", h.create)
		r.Get("/objects/{name}", h.get)
		r.Delete("/objects/{name}", h.destroy)
		r.Post("/objects/{name}/move", h.move)
		r.Post("/objects/{name}/transform", h.transform)
		r.Post("/objects/{name}/rename", h.rename)
		r.Post("/objects/{name}/redefine", h.redefine)
		r.Post("/constructions", h.construct)
		r.Get("/nearby", h.nearby)
		r.Get("/events", h.events)
		r.Get("/status", h.status)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

type handlers struct {
	svc Service
}

// @Summary     List objects
// @Description Every live object in creation order.
// @Tags        objects
// @Produce     json
// @Success     200 {object} types.ObjectsResponse
// @Router      /objects [get]
func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	h.reply(w, r, time.Now(), http.StatusOK, h.svc.List(r.Context()), nil)
}

// @Summary  Get an object
// @Tags     objects
// @Produce  json
// @Param    name path string true "Object name"
// @Success  200 {object} types.Object
// @Failure  404 {object} types.ErrorResponse
// @Router   /objects/{name} [get]
func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	obj, err := h.svc.Get(r.Context(), chi.URLParam(r, "name"))
	h.reply(w, r, start, http.StatusOK, obj, err)
}

// @Summary  Place a free point, line or conic
// @Tags     objects
// @Accept   json
// @Produce  json
// @Param    body body types.CreateObjectRequest true "Object"
// @Success  201 {object} types.Object
// @Failure  400 {object} types.ErrorResponse
// @Failure  409 {object} types.ErrorResponse
// @Failure  422 {object} types.ErrorResponse
// @Router   /objects [post]
func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req types.CreateObjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	obj, err := h.svc.Create(ctx, req)
	h.reply(w, r, start, http.StatusCreated, obj, err)
}

// @Summary     Create a construction
// @Description Derives a new object from named inputs with a registered formula.
// @Tags        constructions
// @Accept      json
// @Produce     json
// @Param       body body types.CreateConstructionRequest true "Construction"
// @Success     201 {object} types.Object
// @Failure     404 {object} types.ErrorResponse
// @Failure     409 {object} types.ErrorResponse
// @Failure     422 {object} types.ErrorResponse
// @Router      /constructions [post]
func (h *handlers) construct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req types.CreateConstructionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	obj, err := h.svc.Construct(ctx, req)
	h.reply(w, r, start, http.StatusCreated, obj, err)
}

// @Summary  Move a free object
// @Tags     objects
// @Accept   json
// @Produce  json
// @Param    name path string true "Object name"
// @Param    body body types.MoveRequest true "New value"
// @Success  200 {object} types.Object
// @Failure  405 {object} types.ErrorResponse
// @Failure  422 {object} types.ErrorResponse
// @Router   /objects/{name}/move [post]
func (h *handlers) move(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req types.MoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	obj, err := h.svc.Move(ctx, chi.URLParam(r, "name"), req)
	h.reply(w, r, start, http.StatusOK, obj, err)
}

// @Summary  Apply a projective transformation to a free object
// @Tags     objects
// @Accept   json
// @Produce  json
// @Param    name path string true "Object name"
// @Param    body body types.TransformRequest true "3x3 matrix"
// @Success  200 {object} types.Object
// @Failure  405 {object} types.ErrorResponse
// @Failure  422 {object} types.ErrorResponse
// @Router   /objects/{name}/transform [post]
func (h *handlers) transform(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req types.TransformRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	obj, err := h.svc.Transform(ctx, chi.URLParam(r, "name"), req)
	h.reply(w, r, start, http.StatusOK, obj, err)
}

// @Summary  Rename an object
// @Tags     objects
// @Accept   json
// @Produce  json
// @Param    name path string true "Object name"
// @Param    body body types.RenameRequest true "New name"
// @Success  200 {object} types.Object
// @Failure  409 {object} types.ErrorResponse
// @Router   /objects/{name}/rename [post]
func (h *handlers) rename(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req types.RenameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	obj, err := h.svc.Rename(ctx, chi.URLParam(r, "name"), req)
	h.reply(w, r, start, http.StatusOK, obj, err)
}

// @Summary  Point a construction at new inputs
// @Tags     constructions
// @Accept   json
// @Produce  json
// @Param    name path string true "Construction name"
// @Param    body body types.RedefineRequest true "Inputs"
// @Success  200 {object} types.Object
// @Failure  409 {object} types.ErrorResponse
// @Failure  422 {object} types.ErrorResponse
// @Router   /objects/{name}/redefine [post]
func (h *handlers) redefine(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req types.RedefineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	obj, err := h.svc.Redefine(ctx, chi.URLParam(r, "name"), req)
	h.reply(w, r, start, http.StatusOK, obj, err)
}

// @Summary     Destroy an object
// @Description Destroys the object and every construction depending on it.
// @Tags        objects
// @Produce     json
// @Param       name path string true "Object name"
// @Success     200 {object} types.DestroyResponse
// @Failure     404 {object} types.ErrorResponse
// @Router      /objects/{name} [delete]
func (h *handlers) destroy(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	resp, err := h.svc.Destroy(ctx, chi.URLParam(r, "name"))
	h.reply(w, r, start, http.StatusOK, resp, err)
}

// @Summary  Objects near a point
// @Tags     selection
// @Produce  json
// @Param    x      query number true  "X"
// @Param    y      query number true  "Y"
// @Param    radius query number false "Search radius"
// @Success  200 {object} types.NearbyResponse
// @Failure  400 {object} types.ErrorResponse
// @Router   /nearby [get]
func (h *handlers) nearby(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()
	x, errX := strconv.ParseFloat(q.Get("x"), 64)
	y, errY := strconv.ParseFloat(q.Get("y"), 64)
	if errX != nil || errY != nil {
		writeJSONError(w, http.StatusBadRequest, "x and y are required numbers")
		return
	}
	var radius float64
	if v := q.Get("radius"); v != "" {
		var err error
		if radius, err = strconv.ParseFloat(v, 64); err != nil || radius < 0 {
			writeJSONError(w, http.StatusBadRequest, "radius must be a non-negative number")
			return
		}
	}
	h.reply(w, r, start, http.StatusOK, h.svc.Nearby(r.Context(), x, y, radius), nil)
}

// @Summary  Journaled events
// @Tags     events
// @Produce  json
// @Param    since query int false "Return events after this sequence number"
// @Param    limit query int false "Maximum number of events"
// @Success  200 {object} types.EventsResponse
// @Router   /events [get]
func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()
	var since uint64
	if v := q.Get("since"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "since must be a sequence number")
			return
		}
		since = n
	}
	limit := maxEventsPerPage
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSONError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxEventsPerPage)
	}
	h.reply(w, r, start, http.StatusOK, h.svc.Events(since, limit), nil)
}

// @Summary  Scene status
// @Tags     status
// @Produce  json
// @Success  200 {object} types.StatusResponse
// @Router   /status [get]
func (h *handlers) status(w http.ResponseWriter, r *http.Request) {
	h.reply(w, r, time.Now(), http.StatusOK, h.svc.Status(), nil)
}

// reply writes v with status, or the mapped error.
func (h *handlers) reply(w http.ResponseWriter, r *http.Request, start time.Time, status int, v any, err error) {
	if err != nil {
		status = statusFor(err)
		writeJSONError(w, status, err.Error())
		logRequest(r, status, start, err)
		return
	}
	writeJSON(w, status, v)
	logRequest(r, status, start, nil)
}

// decodeJSON reads a JSON body into v. It writes the error response and
// returns false when the body is unusable.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	// Limit body size (configurable, default 1MiB)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
