package scene

// EventType names an event for logs, metrics and journals.
type EventType string

const (
	EventMoved              EventType = "moved"
	EventRenamed            EventType = "renamed"
	EventGoingToBeDestroyed EventType = "going_to_be_destroyed"
)

// Event is one of Moved, Renamed or GoingToBeDestroyed. Events are created at
// dispatch time and never stored by the scene.
type Event interface {
	Source() Object
	Type() EventType
}

// Moved announces that Object has a new value (or became degenerate).
type Moved struct {
	Object Object
}

func (e Moved) Source() Object  { return e.Object }
func (e Moved) Type() EventType { return EventMoved }

// Renamed announces that Object is now registered as NewName.
type Renamed struct {
	Object  Object
	OldName string
	NewName string
}

func (e Renamed) Source() Object  { return e.Object }
func (e Renamed) Type() EventType { return EventRenamed }

// GoingToBeDestroyed announces that Object is about to leave the scene. The
// object is still registered and readable while observers react.
type GoingToBeDestroyed struct {
	Object Object
}

func (e GoingToBeDestroyed) Source() Object  { return e.Object }
func (e GoingToBeDestroyed) Type() EventType { return EventGoingToBeDestroyed }
