// File: /services/session_manager.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"socialhub-app/apiclient"
	"socialhub-app/config"
	"socialhub-app/jobs"
	"socialhub-app/locale"
	"socialhub-app/models"
	"socialhub-app/repositories"
	"socialhub-app/store"
)

var ErrSessionClosed = errors.New("session manager is closed")

// Session is one browser's application state: its store, its persisted
// mirror and the API client acting with its tokens.
type Session struct {
	ID      string
	Store   *store.Store
	Storage *repositories.LocalStorage
	API     *apiclient.Client

	queue       *jobs.DelayQueue
	unsubscribe []func()
	lastSeen    atomic.Int64
	ready       chan struct{}
}

func (s *Session) State() store.State {
	return s.Store.State()
}

func (s *Session) Dispatch(a store.Action) store.State {
	return s.Store.Dispatch(a)
}

func (s *Session) Touch() {
	s.lastSeen.Store(time.Now().UnixNano())
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// Notify shows a banner in the session's current language.
func (s *Session) Notify(t models.NotificationType, fa, en string) {
	msg := fa
	if s.State().Language == locale.English {
		msg = en
	}
	s.Dispatch(store.AddNotification{Notification: models.NewNotification(t, msg)})
}

func (s *Session) close() {
	for _, unsubscribe := range s.unsubscribe {
		unsubscribe()
	}
	s.queue.Stop()
	s.Store.Stop()
}

type SessionManager struct {
	cfg        *config.Config
	backend    repositories.StorageBackend
	httpClient *http.Client
	startup    *StartupService

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
	onClose  []func(sessionID string)
	onSweep  []func(maxIdle time.Duration)
}

func NewSessionManager(cfg *config.Config, backend repositories.StorageBackend, httpClient *http.Client, startup *StartupService) *SessionManager {
	return &SessionManager{
		cfg:        cfg,
		backend:    backend,
		httpClient: httpClient,
		startup:    startup,
		sessions:   make(map[string]*Session),
	}
}

// OnClose registers fn to run after a session is closed. Register hooks
// before the first Open.
func (m *SessionManager) OnClose(fn func(sessionID string)) {
	m.onClose = append(m.onClose, fn)
}

// OnSweep registers fn to run on every EvictIdle pass.
func (m *SessionManager) OnSweep(fn func(maxIdle time.Duration)) {
	m.onSweep = append(m.onSweep, fn)
}

// Get returns a live session without creating one.
func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Open returns the session for id, creating it and running startup
// reconciliation on first use. Concurrent callers for a new id wait for the
// first one to finish startup.
func (m *SessionManager) Open(ctx context.Context, id, language string) (*Session, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrSessionClosed
	}
	if s, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		s.Touch()
		select {
		case <-s.ready:
			return s, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s, err := m.newSession(id, language)
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	m.sessions[id] = s
	m.mu.Unlock()

	m.startup.Run(ctx, s)
	close(s.ready)
	return s, nil
}

func (m *SessionManager) newSession(id, language string) (*Session, error) {
	storage := repositories.NewLocalStorage(m.backend, id)

	api, err := apiclient.NewClient(m.cfg.APIBaseURL, m.httpClient, storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	st := store.New(store.InitialState(language), storage)
	go st.Run()

	s := &Session{
		ID:      id,
		Store:   st,
		Storage: storage,
		API:     api,
		queue:   jobs.NewDelayQueue(),
		ready:   make(chan struct{}),
	}
	s.Touch()

	expiry := jobs.NewReservationExpiryJob(s.queue, st, m.cfg.ReservationHold)
	dismiss := jobs.NewNotificationDismissJob(s.queue, st, m.cfg.NotificationTTL)
	effects := NewEffects(s)

	s.unsubscribe = append(s.unsubscribe,
		st.Subscribe(effects.HandleChange),
		st.Subscribe(expiry.HandleChange),
		st.Subscribe(dismiss.HandleChange),
	)
	return s, nil
}

// EvictIdle closes sessions idle for longer than maxIdle and prunes persisted
// entries past the retention window. It returns the number of closed sessions.
func (m *SessionManager) EvictIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	var idle []*Session
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			idle = append(idle, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range idle {
		m.closeSession(s)
	}
	for _, sweep := range m.onSweep {
		sweep(maxIdle)
	}

	if purger, ok := m.backend.(interface {
		DeleteStale(time.Time) (int64, error)
	}); ok && m.cfg.StorageRetention > 0 {
		if n, err := purger.DeleteStale(time.Now().Add(-m.cfg.StorageRetention)); err != nil {
			log.Printf("sessions: failed to prune stored entries: %v", err)
		} else if n > 0 {
			log.Printf("sessions: pruned %d stored entries", n)
		}
	}

	return len(idle)
}

func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops every session. Open fails afterwards.
func (m *SessionManager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.closed = true
	m.mu.Unlock()

	for _, s := range sessions {
		m.closeSession(s)
	}
}

func (m *SessionManager) closeSession(s *Session) {
	s.close()
	for _, fn := range m.onClose {
		fn(s.ID)
	}
}
