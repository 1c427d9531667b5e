package scene

// Listener adapts callbacks to Observer for collaborators that only watch
// objects, such as renderers and selection, without taking part in the
// construction graph. Nil callbacks are skipped.
//
// Always subscribe a *Listener; the pointer is the subscription identity.
type Listener struct {
	MovedFunc     func(Moved)
	RenamedFunc   func(Renamed)
	DestroyedFunc func(GoingToBeDestroyed)
}

func (l *Listener) OnMoved(ev Moved) {
	if l.MovedFunc != nil {
		l.MovedFunc(ev)
	}
}

func (l *Listener) OnRenamed(ev Renamed) {
	if l.RenamedFunc != nil {
		l.RenamedFunc(ev)
	}
}

func (l *Listener) OnGoingToBeDestroyed(ev GoingToBeDestroyed) {
	if l.DestroyedFunc != nil {
		l.DestroyedFunc(ev)
	}
}
