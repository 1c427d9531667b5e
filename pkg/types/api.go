package types

// CreateObjectRequest places a free object.
type CreateObjectRequest struct {
	// One of point, line, conic.
	// example: point
	Kind string `json:"kind" example:"point"`
	// Optional name; generated when empty.
	// example: A
	Name string `json:"name,omitempty" example:"A"`
	// Homogeneous value, 3 entries for points and lines, 6 for conics.
	Value []Complex `json:"value"`
}

// CreateConstructionRequest derives a new object from existing ones.
type CreateConstructionRequest struct {
	// Formula name, see GET /status for the list.
	// example: line_through_points
	Construction string `json:"construction" example:"line_through_points"`
	// Optional name; generated when empty.
	Name string `json:"name,omitempty"`
	// Input names in formula order.
	// example: ["A","B"]
	Inputs []string `json:"inputs" example:"A,B"`
}

// MoveRequest sets the value of a free object.
type MoveRequest struct {
	Value []Complex `json:"value"`
}

// TransformRequest applies a projective transformation to a free object.
type TransformRequest struct {
	// Row-major 3x3 matrix acting on point coordinates.
	Matrix [][]Complex `json:"matrix"`
}

// RenameRequest renames an object.
type RenameRequest struct {
	// example: Origin
	Name string `json:"name" example:"Origin"`
}

// RedefineRequest points a construction at new inputs.
type RedefineRequest struct {
	Inputs []string `json:"inputs"`
}

// ObjectsResponse is returned by GET /objects, in creation order.
type ObjectsResponse struct {
	Objects []Object `json:"objects"`
}

// DestroyResponse lists every destroyed object, dependents first.
type DestroyResponse struct {
	// example: ["X","l","A"]
	Destroyed []string `json:"destroyed"`
}

// NearbyHit is one result of a selection query.
type NearbyHit struct {
	Object   Object  `json:"object"`
	Distance float64 `json:"distance" example:"0.25"`
}

// NearbyResponse is returned by GET /nearby, closest first.
type NearbyResponse struct {
	Hits []NearbyHit `json:"hits"`
}

// EventsResponse is returned by GET /events.
type EventsResponse struct {
	Events []EventRecord `json:"events"`
	// Pass as since to continue after the last returned event.
	// example: 42
	Next uint64 `json:"next" example:"42"`
	// True when events after since were dropped from the bounded journal.
	Truncated bool `json:"truncated,omitempty"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// example: 12
	Objects int `json:"objects" example:"12"`
	// example: 5
	Constructions int `json:"constructions" example:"5"`
	// example: 1
	Degenerate int `json:"degenerate" example:"1"`
	// Total number of events dispatched.
	// example: 318
	EventsTotal uint64 `json:"events_total" example:"318"`
	// Registered construction formulas.
	Formulas []string `json:"formulas"`
	// Tolerance used for zero tests.
	// example: 1e-9
	Epsilon float64 `json:"epsilon" example:"1e-9"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
