package users

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/311384/Eventos-fam/internal/db"
)

func newStoreTest(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewPostgresStore(&db.DB{DB: sqlDB}), mock
}

func TestInsertNormalizesAndFillsDefaults(t *testing.T) {
	store, mock := newStoreTest(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "Alice", "alice@example.com", "hash", false, nil,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &User{Name: "Alice", Email: "  ALICE@Example.COM ", PasswordHash: "hash"}
	require.NoError(t, store.Insert(context.Background(), u))

	require.NotEmpty(t, u.ID)
	require.Equal(t, "alice@example.com", u.Email)
	require.False(t, u.CreatedAt.IsZero())
	require.Equal(t, u.CreatedAt, u.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertDuplicateEmail(t *testing.T) {
	store, mock := newStoreTest(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505"})

	err := store.Insert(context.Background(), &User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"})
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestFindByIDExcludesPasswordHash(t *testing.T) {
	store, mock := newStoreTest(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, admin, age, created_at, updated_at")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "email", "admin", "age", "created_at", "updated_at"},
		).AddRow("u-1", "Alice", "alice@example.com", false, 30, now, now))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT body, created_at")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"body", "created_at"}).
			AddRow("primeiro", now).
			AddRow("segundo", now.Add(time.Minute)))

	u, err := store.FindByID(context.Background(), "u-1")
	require.NoError(t, err)
	require.Empty(t, u.PasswordHash)
	require.NotNil(t, u.Age)
	require.Equal(t, 30, *u.Age)
	require.Len(t, u.Comments, 2)
	require.Equal(t, "primeiro", u.Comments[0].Body)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFound(t *testing.T) {
	store, mock := newStoreTest(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, admin, age, created_at, updated_at")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.FindByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFindByEmailIncludesHash(t *testing.T) {
	store, mock := newStoreTest(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, admin, age, created_at, updated_at")).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "email", "password_hash", "admin", "age", "created_at", "updated_at"},
		).AddRow("u-1", "Alice", "alice@example.com", "hash", true, nil, now, now))

	u, err := store.FindByEmail(context.Background(), "Alice@Example.com")
	require.NoError(t, err)
	require.Equal(t, "hash", u.PasswordHash)
	require.True(t, u.Admin)
	require.Nil(t, u.Age)
}

func TestUpdateKeepsHashWhenEmpty(t *testing.T) {
	store, mock := newStoreTest(t)

	// No password_hash column in the statement when the hash is kept.
	mock.ExpectExec(regexp.QuoteMeta("SET name = $1, email = $2, age = $3, updated_at = NOW()")).
		WithArgs("Alice", "alice@example.com", nil, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Update(context.Background(), "u-1", Update{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	store, mock := newStoreTest(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Update(context.Background(), "missing", Update{Name: "X", Email: "x@example.com"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDuplicateEmail(t *testing.T) {
	store, mock := newStoreTest(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WillReturnError(&pq.Error{Code: "23505"})

	err := store.Update(context.Background(), "u-1", Update{Name: "Alice", Email: "taken@example.com"})
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestDeleteNotFound(t *testing.T) {
	store, mock := newStoreTest(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetAdminTouchesRecord(t *testing.T) {
	store, mock := newStoreTest(t)

	mock.ExpectExec(regexp.QuoteMeta("SET admin = $1, updated_at = NOW()")).
		WithArgs(true, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.SetAdmin(context.Background(), "u-1", true))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCommentMissingUser(t *testing.T) {
	store, mock := newStoreTest(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comments")).
		WithArgs("missing", "olá").
		WillReturnError(&pq.Error{Code: "23503"})

	err := store.AddComment(context.Background(), "missing", "olá")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddCommentTouchesOwner(t *testing.T) {
	store, mock := newStoreTest(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comments")).
		WithArgs("u-1", "olá").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET updated_at = NOW()")).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.AddComment(context.Background(), "u-1", "olá"))
	require.NoError(t, mock.ExpectationsWereMet())
}
