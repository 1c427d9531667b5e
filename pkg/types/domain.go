package types

// Complex is a complex number. Real values leave Im out.
type Complex struct {
	// example: 1.5
	Re float64 `json:"re" example:"1.5"`
	// example: 0
	Im float64 `json:"im,omitempty" example:"0"`
}

// Object describes a point, line or conic of the scene.
type Object struct {
	// Handle that survives renames.
	// example: 7d0c4f7e-8a57-4d1b-9d55-3f1a0c2b7e11
	ID string `json:"id" example:"7d0c4f7e-8a57-4d1b-9d55-3f1a0c2b7e11"`
	// Unique name.
	// example: A
	Name string `json:"name" example:"A"`
	// One of point, line, conic.
	// example: point
	Kind string `json:"kind" example:"point"`
	// One of valid, degenerate.
	// example: valid
	State string `json:"state" example:"valid"`
	// Homogeneous value: (x, y, z) for points, (a, b, c) of ax+by+cz=0 for
	// lines, (x², y², z², yz, zx, xy) coefficients for conics.
	Value []Complex `json:"value"`
	// Affine position of a real, finite point.
	Position *Position `json:"position,omitempty"`
	// Formula of a construction; empty for free objects.
	// example: line_through_points
	Construction string `json:"construction,omitempty" example:"line_through_points"`
	// Input names of a construction, in formula order.
	Inputs []string `json:"inputs,omitempty"`
	// Why a construction is degenerate.
	Reason string `json:"reason,omitempty"`
	// Number of observers subscribed to the object.
	// example: 2
	Observers int `json:"observers" example:"2"`
}

// Position is an affine point.
type Position struct {
	X float64 `json:"x" example:"0.5"`
	Y float64 `json:"y" example:"-2"`
}

// EventRecord is a journaled scene event.
type EventRecord struct {
	// Monotonic sequence number, starting at 1.
	// example: 42
	Seq uint64 `json:"seq" example:"42"`
	// One of moved, renamed, going_to_be_destroyed.
	// example: moved
	Type string `json:"type" example:"moved"`
	// Handle of the source object.
	ObjectID string `json:"object_id"`
	// Name of the source object when the event was dispatched.
	// example: A
	Name    string `json:"name" example:"A"`
	OldName string `json:"old_name,omitempty"`
	NewName string `json:"new_name,omitempty"`
	// State of the source object when the event was dispatched.
	// example: valid
	State string `json:"state" example:"valid"`
	// Dispatch time in unix milliseconds.
	// example: 1700000000000
	TimeUnixMs int64 `json:"time_unix_ms" example:"1700000000000"`
}
