package store

import "sync"

// ChangeKind names the slice of state a mutation touched.
type ChangeKind string

const (
	ChangeUser    ChangeKind = "user"
	ChangeCart    ChangeKind = "cart"
	ChangeCatalog ChangeKind = "catalog"
	ChangeOrders  ChangeKind = "orders"
	ChangeFilter  ChangeKind = "filter"
)

// Change is published after every applied mutation.
type Change struct {
	Kind    ChangeKind `json:"kind"`
	Version uint64     `json:"version"`
}

// Subscribe registers a listener for changes. Delivery never blocks a writer: when the
// buffer is full the change is dropped and the listener should re-read state.
// The returned cancel func closes the channel and is safe to call more than once.
func (s *Store) Subscribe(buffer int) (<-chan Change, func()) {
	if buffer < 1 {
		buffer = 1
	}
	return s.subs.add(buffer)
}

type subscribers struct {
	mu     sync.Mutex
	nextID int
	chans  map[int]chan Change
}

func (s *subscribers) add(buffer int) (<-chan Change, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chans == nil {
		s.chans = make(map[int]chan Change)
	}
	id := s.nextID
	s.nextID++
	ch := make(chan Change, buffer)
	s.chans[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.chans, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (s *subscribers) publish(change Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.chans {
		select {
		case ch <- change:
		default:
		}
	}
}
