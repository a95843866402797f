package jmx

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"checkjmx/pkg/logging"

	"github.com/google/uuid"
)

// Session is an opaque handle for one open connection to a managed object
// server. The underlying transport is owned by the Manager and looked up
// by session identity, never held by the Session itself; a Session whose
// transport has been closed fails all calls with *CommunicationError.
type Session struct {
	id       string
	endpoint string
	manager  *Manager
}

// ID returns the stable session identifier.
func (s *Session) ID() string { return s.id }

// Endpoint returns the service URL the session was opened against.
func (s *Session) Endpoint() string { return s.endpoint }

// Search queries the server for all resources matching the pattern.
func (s *Session) Search(ctx context.Context, pattern ObjectName) ([]ObjectName, error) {
	t, err := s.transport()
	if err != nil {
		return nil, err
	}
	return t.Search(ctx, pattern)
}

// ReadAttribute fetches the named attribute of a resource.
func (s *Session) ReadAttribute(ctx context.Context, name ObjectName, attribute string) (interface{}, error) {
	t, err := s.transport()
	if err != nil {
		return nil, err
	}
	return t.ReadAttribute(ctx, name, attribute)
}

// Invoke calls the named no-argument operation on a resource.
func (s *Session) Invoke(ctx context.Context, name ObjectName, operation string) error {
	t, err := s.transport()
	if err != nil {
		return err
	}
	return t.Invoke(ctx, name, operation)
}

func (s *Session) transport() (Transport, error) {
	t, ok := s.manager.lookup(s.id)
	if !ok {
		return nil, &CommunicationError{Reason: errors.New("session is closed")}
	}
	return t, nil
}

// Manager opens and closes sessions to remote management endpoints. It
// keeps a one-to-one registry from session identity to transport so each
// transport is torn down exactly once; closing an unknown or already
// closed session is a no-op.
//
// The registry is process-local state with process lifetime. It is safe
// for concurrent use should multiple probe requests share one Manager.
type Manager struct {
	mu         sync.Mutex
	transports map[string]Transport
	dial       DialFunc
}

// NewManager creates a Manager that opens transports with the given dial
// function.
func NewManager(dial DialFunc) *Manager {
	return &Manager{
		transports: make(map[string]Transport),
		dial:       dial,
	}
}

// Open establishes a transport to the endpoint and registers it under a
// fresh session. If creds is non-nil both username and password are passed
// as authentication material; otherwise the connection is attempted
// unauthenticated. Dial failures are returned as *ConnectError.
func (m *Manager) Open(ctx context.Context, endpoint *url.URL, creds *Credentials) (*Session, error) {
	logging.Debug("Connection", "opening session to %s", endpoint)
	t, err := m.dial(ctx, endpoint, creds)
	if err != nil {
		return nil, &ConnectError{Endpoint: endpoint.String(), Reason: err}
	}

	s := &Session{
		id:       uuid.NewString(),
		endpoint: endpoint.String(),
		manager:  m,
	}
	m.mu.Lock()
	m.transports[s.id] = t
	m.mu.Unlock()

	logging.Debug("Connection", "session %s open", s.id)
	return s, nil
}

// Close looks up and removes the transport for the session and closes it,
// returning any close failure as *CloseError. If the session is nil,
// unknown, or already closed, Close returns nil.
func (m *Manager) Close(s *Session) error {
	if s == nil {
		return nil
	}

	m.mu.Lock()
	t, ok := m.transports[s.id]
	if ok {
		delete(m.transports, s.id)
	}
	m.mu.Unlock()

	if !ok {
		return nil
	}

	logging.Debug("Connection", "closing session %s", s.id)
	if err := t.Close(); err != nil {
		return &CloseError{Reason: err}
	}
	return nil
}

func (m *Manager) lookup(id string) (Transport, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.transports[id]
	return t, ok
}
