// File: /store/store.go
package store

import (
	"log"
	"sync"
)

// Change is delivered to subscribers after an action was applied.
type Change struct {
	Action Action
	Prev   State
	Next   State
}

// Changed reports whether the action produced a new snapshot.
func (c Change) Changed() bool {
	return c.Next.Version != c.Prev.Version
}

type Listener func(Change)

// TokenEvicter removes the session tokens from persisted client state.
type TokenEvicter interface {
	EvictTokens() error
}

type dispatchRequest struct {
	action Action
	reply  chan State
}

// Store owns one session's state. All transitions go through Dispatch and are
// applied one at a time by the Run loop.
type Store struct {
	mu    sync.RWMutex
	state State

	evicter   TokenEvicter
	dispatch  chan dispatchRequest
	stop      chan struct{}
	done      chan struct{}
	stopOnce  sync.Once
	listeners *mailbox
}

func New(initial State, evicter TokenEvicter) *Store {
	return &Store{
		state:     initial,
		evicter:   evicter,
		dispatch:  make(chan dispatchRequest),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
		listeners: newMailbox(),
	}
}

// Run applies dispatched actions until Stop is called.
func (s *Store) Run() {
	go s.listeners.run()
	defer close(s.done)
	defer s.listeners.close()

	for {
		select {
		case req := <-s.dispatch:
			req.reply <- s.apply(req.action)
		case <-s.stop:
			return
		}
	}
}

func (s *Store) apply(a Action) State {
	prev := s.State()
	next := Reduce(prev, a)

	if _, ok := a.(Logout); ok && s.evicter != nil {
		if err := s.evicter.EvictTokens(); err != nil {
			log.Printf("store: failed to evict tokens on logout: %v", err)
		}
	}

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	s.listeners.post(Change{Action: a, Prev: prev, Next: next})
	return next
}

// Dispatch applies a and returns the resulting snapshot. After Stop it returns
// the last snapshot without applying a.
func (s *Store) Dispatch(a Action) State {
	reply := make(chan State, 1)
	select {
	case s.dispatch <- dispatchRequest{action: a, reply: reply}:
		return <-reply
	case <-s.stop:
		return s.State()
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers l for every subsequent change. Listeners run in order on
// a single delivery goroutine and may call Dispatch. The returned func
// unregisters l.
func (s *Store) Subscribe(l Listener) func() {
	return s.listeners.add(l)
}

// Stop ends the Run loop. Changes already queued are still delivered.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}

// mailbox is an unbounded FIFO feeding listeners, so the Run loop never blocks
// on a slow or re-entrant subscriber.
type mailbox struct {
	mu        sync.Mutex
	queue     []Change
	listeners map[int]Listener
	order     []int
	nextID    int
	signal    chan struct{}
	closed    bool
	drained   chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{
		listeners: make(map[int]Listener),
		signal:    make(chan struct{}, 1),
		drained:   make(chan struct{}),
	}
}

func (m *mailbox) add(l Listener) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	m.order = append(m.order, id)
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
		for i, v := range m.order {
			if v == id {
				m.order = append(m.order[:i:i], m.order[i+1:]...)
				break
			}
		}
	}
}

func (m *mailbox) post(c Change) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.queue = append(m.queue, c)
	m.mu.Unlock()

	select {
	case m.signal <- struct{}{}:
	default:
	}
}

func (m *mailbox) close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	select {
	case m.signal <- struct{}{}:
	default:
	}
	<-m.drained
}

func (m *mailbox) run() {
	defer close(m.drained)
	for range m.signal {
		for {
			m.mu.Lock()
			if len(m.queue) == 0 {
				closed := m.closed
				m.mu.Unlock()
				if closed {
					return
				}
				break
			}
			c := m.queue[0]
			m.queue = m.queue[1:]
			listeners := make([]Listener, 0, len(m.order))
			for _, id := range m.order {
				listeners = append(listeners, m.listeners[id])
			}
			m.mu.Unlock()

			for _, l := range listeners {
				l(c)
			}
		}
	}
}
