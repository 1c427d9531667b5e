package scene

// Observer receives the events of the objects it is subscribed to.
//
// Observers are compared with ==, so implementations must be comparable;
// use pointer types.
type Observer interface {
	OnMoved(ev Moved)
	OnRenamed(ev Renamed)
	OnGoingToBeDestroyed(ev GoingToBeDestroyed)
}

// observerSet keeps subscription order and rejects duplicates.
type observerSet struct {
	list []Observer
}

func (s *observerSet) index(o Observer) int {
	for i, x := range s.list {
		if x == o {
			return i
		}
	}
	return -1
}

func (s *observerSet) has(o Observer) bool { return s.index(o) >= 0 }

func (s *observerSet) add(o Observer) bool {
	if o == nil || s.has(o) {
		return false
	}
	s.list = append(s.list, o)
	return true
}

func (s *observerSet) remove(o Observer) bool {
	i := s.index(o)
	if i < 0 {
		return false
	}
	s.list = append(s.list[:i:i], s.list[i+1:]...)
	return true
}

// snapshot returns a copy that stays stable while observers subscribe or
// unsubscribe during dispatch.
func (s *observerSet) snapshot() []Observer {
	return append([]Observer(nil), s.list...)
}

func (s *observerSet) len() int { return len(s.list) }

func (s *observerSet) clear() { s.list = nil }
