package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/kvstore"
)

func TestValidUsername(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"juan", true},
		{"María", true},
		{"ÑANDÚ", true},
		{"abc123", false},
		{"juan perez", false},
		{"ana_", false},
		{"über", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidUsername(tt.in))
		})
	}
}

func TestService_SeedsDemoUser(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	s := NewService(store)

	username, err := s.Login(ctx, "c1", " prueba ", "123 ")
	require.NoError(t, err)
	assert.Equal(t, "prueba", username)

	users, ok, err := kvstore.GetJSON[[]entity.UserRecord](ctx, store, KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, DefaultUsers, users)
}

func TestService_KeepsExistingUsers(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, kvstore.SetJSON(ctx, store, KeyUsers, []entity.UserRecord{{Username: "ana", Password: "x"}}))
	s := NewService(store)

	_, err := s.Login(ctx, "c1", "prueba", "123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	username, err := s.Login(ctx, "c1", "ana", "x")
	require.NoError(t, err)
	assert.Equal(t, "ana", username)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty", func(t *testing.T) {
		s := NewService(kvstore.NewMemory())
		_, err := s.Register(ctx, "c1", "  ", "pw")
		assert.ErrorIs(t, err, ErrMissingCredentials)
		_, err = s.Register(ctx, "c1", "ana", " ")
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("rejects non letters", func(t *testing.T) {
		s := NewService(kvstore.NewMemory())
		_, err := s.Register(ctx, "c1", "abc123", "pw")
		assert.ErrorIs(t, err, ErrInvalidUsername)
	})

	t.Run("rejects duplicate", func(t *testing.T) {
		s := NewService(kvstore.NewMemory())
		_, err := s.Register(ctx, "c1", "prueba", "otra")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("requires client", func(t *testing.T) {
		s := NewService(kvstore.NewMemory())
		_, err := s.Register(ctx, "", "ana", "pw")
		assert.ErrorIs(t, err, ErrMissingClient)
	})

	t.Run("appends and logs in", func(t *testing.T) {
		store := kvstore.NewMemory()
		s := NewService(store)

		username, err := s.Register(ctx, "c1", " María ", " clave ")
		require.NoError(t, err)
		assert.Equal(t, "María", username)

		current, err := s.Current(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "María", current)

		users, _, err := kvstore.GetJSON[[]entity.UserRecord](ctx, store, KeyUsers)
		require.NoError(t, err)
		assert.Equal(t, []entity.UserRecord{
			{Username: "prueba", Password: "123"},
			{Username: "María", Password: "clave"},
		}, users)

		other, err := s.Current(ctx, "c2")
		require.NoError(t, err)
		assert.Empty(t, other)
	})
}

func TestService_LoginLogout(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	s := NewService(store)

	_, err := s.Login(ctx, "c1", "prueba", "1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(ctx, "c1", "Prueba", "123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(ctx, "c1", "prueba", "123")
	require.NoError(t, err)

	restored := NewService(store)
	current, err := restored.Current(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "prueba", current)

	require.NoError(t, s.Logout(ctx, "c1"))
	current, err = s.Current(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, current)

	_, err = store.Get(ctx, ClientKey("c1", keySession))
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestService_CurrentKeepsOnlyLoggedInClients(t *testing.T) {
	ctx := context.Background()
	s := NewService(kvstore.NewMemory())

	for _, client := range []string{"anon-1", "anon-2", "anon-3"} {
		current, err := s.Current(ctx, client)
		require.NoError(t, err)
		assert.Empty(t, current)
	}
	assert.Empty(t, s.sessions)

	_, err := s.Login(ctx, "c1", "prueba", "123")
	require.NoError(t, err)
	assert.Len(t, s.sessions, 1)

	require.NoError(t, s.Logout(ctx, "c1"))
	assert.Empty(t, s.sessions)

	current, err := s.Current(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, current)
	assert.Empty(t, s.sessions)
}
