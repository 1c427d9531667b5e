package scene

// Metrics receives counters from the scene. Calls happen on the update
// thread and must not call back into the scene.
type Metrics interface {
	EventDispatched(t EventType)
	Recomputed(valid bool)
	Destroyed(cascade bool)
	ObserverPanicked()
	ObjectCount(n int)
}

// Publisher receives every event the scene dispatches, before the source's
// observers do. Implementations should be lightweight and must not panic.
type Publisher interface {
	Publish(Event)
}

type noopMetrics struct{}

func (noopMetrics) EventDispatched(EventType) {}
func (noopMetrics) Recomputed(bool)           {}
func (noopMetrics) Destroyed(bool)            {}
func (noopMetrics) ObserverPanicked()         {}
func (noopMetrics) ObjectCount(int)           {}

type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
