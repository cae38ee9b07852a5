// Package session keeps the registered demo users and which user each client
// is logged in as. State lives in memory and is written through to a
// kvstore.Store, so one process owns it at a time.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/kvstore"
)

const (
	KeyUsers   = "usuarios"
	keySession = "sesion"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidUsername    = errors.New("username must contain letters only")
	ErrUserExists         = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingClient      = errors.New("client id is required")
)

// DefaultUsers seeds the user list the first time it is read.
var DefaultUsers = []entity.UserRecord{{Username: "prueba", Password: "123"}}

// ClientKey namespaces a per client entry.
func ClientKey(clientID, name string) string {
	return clientID + ":" + name
}

type Service struct {
	store kvstore.Store

	mu          sync.Mutex
	users       []entity.UserRecord
	usersLoaded bool
	sessions    map[string]string
}

func NewService(store kvstore.Store) *Service {
	return &Service{
		store:    store,
		sessions: make(map[string]string),
	}
}

// Register adds a user and logs the client in as that user.
func (s *Service) Register(ctx context.Context, clientID, username, password string) (string, error) {
	if clientID == "" {
		return "", ErrMissingClient
	}
	u := strings.TrimSpace(username)
	p := strings.TrimSpace(password)
	if u == "" || p == "" {
		return "", ErrMissingCredentials
	}
	if !ValidUsername(u) {
		return "", ErrInvalidUsername
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return "", err
	}
	for _, existing := range users {
		if existing.Username == u {
			return "", ErrUserExists
		}
	}

	next := append(append([]entity.UserRecord(nil), users...), entity.UserRecord{Username: u, Password: p})
	if err := kvstore.SetJSON(ctx, s.store, KeyUsers, next); err != nil {
		return "", fmt.Errorf("save users: %w", err)
	}
	s.users = next

	if err := s.setSession(ctx, clientID, u); err != nil {
		return "", err
	}
	return u, nil
}

// Login succeeds only on an exact match of a registered user.
func (s *Service) Login(ctx context.Context, clientID, username, password string) (string, error) {
	if clientID == "" {
		return "", ErrMissingClient
	}
	u := strings.TrimSpace(username)
	p := strings.TrimSpace(password)

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return "", err
	}
	for _, existing := range users {
		if existing.Username == u && existing.Password == p {
			if err := s.setSession(ctx, clientID, u); err != nil {
				return "", err
			}
			return u, nil
		}
	}
	return "", ErrInvalidCredentials
}

func (s *Service) Logout(ctx context.Context, clientID string) error {
	if clientID == "" {
		return ErrMissingClient
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, ClientKey(clientID, keySession)); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	delete(s.sessions, clientID)
	return nil
}

// Current returns the username the client is logged in as, or "" when it is
// not logged in. Only logged in clients are kept in memory.
func (s *Service) Current(ctx context.Context, clientID string) (string, error) {
	if clientID == "" {
		return "", nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if username, ok := s.sessions[clientID]; ok {
		return username, nil
	}

	username, _, err := kvstore.GetJSON[string](ctx, s.store, ClientKey(clientID, keySession))
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if username != "" {
		s.sessions[clientID] = username
	}
	return username, nil
}

func (s *Service) setSession(ctx context.Context, clientID, username string) error {
	if err := kvstore.SetJSON(ctx, s.store, ClientKey(clientID, keySession), username); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.sessions[clientID] = username
	return nil
}

// loadUsers must be called with s.mu held.
func (s *Service) loadUsers(ctx context.Context) ([]entity.UserRecord, error) {
	if s.usersLoaded {
		return s.users, nil
	}

	users, ok, err := kvstore.GetJSON[[]entity.UserRecord](ctx, s.store, KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !ok {
		users = append([]entity.UserRecord(nil), DefaultUsers...)
		if err := kvstore.SetJSON(ctx, s.store, KeyUsers, users); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
	}

	s.users = users
	s.usersLoaded = true
	return s.users, nil
}
