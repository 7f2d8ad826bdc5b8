package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/311384/Eventos-fam/internal/auth/credentials"
)

type seedStore struct {
	Store
	existing  *User
	inserted  *User
	insertErr error
}

func (s *seedStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	if s.existing != nil {
		return s.existing, nil
	}
	return nil, ErrNotFound
}

func (s *seedStore) Insert(ctx context.Context, u *User) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = u
	return nil
}

func TestEnsureAdminCreates(t *testing.T) {
	store := &seedStore{}

	created, err := EnsureAdmin(context.Background(), store, "", "root@example.com", "root-secret")
	require.NoError(t, err)
	require.True(t, created)

	require.NotNil(t, store.inserted)
	require.True(t, store.inserted.Admin)
	require.Equal(t, "Administrador", store.inserted.Name)
	require.True(t, credentials.Verify(store.inserted.PasswordHash, "root-secret"))
}

func TestEnsureAdminSkipsExisting(t *testing.T) {
	store := &seedStore{existing: &User{ID: "u-1", Email: "root@example.com"}}

	created, err := EnsureAdmin(context.Background(), store, "Root", "root@example.com", "root-secret")
	require.NoError(t, err)
	require.False(t, created)
	require.Nil(t, store.inserted)
}

func TestEnsureAdminLosesSeedRaceGracefully(t *testing.T) {
	store := &seedStore{insertErr: ErrDuplicateEmail}

	created, err := EnsureAdmin(context.Background(), store, "Root", "root@example.com", "root-secret")
	require.NoError(t, err)
	require.False(t, created)
}

func TestEnsureAdminRequiresCredentials(t *testing.T) {
	store := &seedStore{}

	_, err := EnsureAdmin(context.Background(), store, "Root", "", "root-secret")
	require.Error(t, err)

	_, err = EnsureAdmin(context.Background(), store, "Root", "root@example.com", "")
	require.Error(t, err)
}
