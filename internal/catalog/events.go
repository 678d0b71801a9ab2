package catalog

// EventKind identifies which collection changed.
type EventKind string

const (
	EventCatalogReplaced  EventKind = "catalog_replaced"
	EventUserWorkoutAdded EventKind = "user_workout_added"
	EventWorkoutLogged    EventKind = "workout_logged"
	EventOverrideSet      EventKind = "override_set"
)

// Event is emitted to subscribers after a collection changes. Key identifies
// the affected record where one exists.
type Event struct {
	Kind EventKind
	Key  string
}

// Subscribe registers a callback invoked synchronously on every change
// event. The presentation layer subscribes here instead of observing
// properties.
func (s *Service) Subscribe(fn func(Event)) {
	s.subs = append(s.subs, fn)
}

func (s *Service) emit(e Event) {
	for _, fn := range s.subs {
		fn(e)
	}
}
