package records

// Sources of a change signal.
const (
	SourceLocal    = "local"
	SourceExternal = "external"
)

// Change tells subscribers that a stored document may have changed and
// should be re-read. Delivery is best effort: signals raised while a
// subscriber still has one pending are coalesced.
type Change struct {
	// Key is the storage key that changed, or empty when unknown.
	Key string `json:"key"`

	// Source is SourceLocal for writes made through this Store and
	// SourceExternal for writes observed on the backing storage.
	Source string `json:"source"`
}

// Subscribe registers a subscriber. The returned func unsubscribes and
// closes the channel.
func (s *Store) Subscribe() (<-chan Change, func()) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Change, 1)
	s.subs[id] = ch

	return ch, func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

// Notify delivers c to every subscriber without blocking.
func (s *Store) Notify(c Change) {
	if s.metrics != nil {
		s.metrics.ChangeSignals.Inc()
	}

	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- c:
		default:
		}
	}
}
