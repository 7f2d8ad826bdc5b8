package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/311384/Eventos-fam/internal/db"
)

const uniqueViolation = "23505"

// PostgresStore is the canonical Store implementation.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = NormalizeEmail(u.Email)

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, admin, age, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Admin, nullableAge(u.Age), u.CreatedAt, u.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("users: insert: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, admin, age, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, NormalizeEmail(email))

	var (
		u   User
		age sql.NullInt64
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Admin, &age, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("users: find by email: %w", err)
	}

	u.Age = ageFromNull(age)
	return &u, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, admin, age, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	var (
		u   User
		age sql.NullInt64
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Admin, &age, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("users: find by id: %w", err)
	}
	u.Age = ageFromNull(age)

	comments, err := s.loadComments(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Comments = comments

	return &u, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, admin, age, created_at, updated_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("users: list: %w", err)
	}
	defer rows.Close()

	var list []User
	for rows.Next() {
		var (
			u   User
			age sql.NullInt64
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Admin, &age, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("users: list scan: %w", err)
		}
		u.Age = ageFromNull(age)
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("users: list rows: %w", err)
	}

	return list, nil
}

func (s *PostgresStore) Update(ctx context.Context, id string, upd Update) error {
	email := NormalizeEmail(upd.Email)

	var (
		res sql.Result
		err error
	)

	if upd.PasswordHash != "" {
		res, err = s.db.ExecContext(ctx, `
			UPDATE users
			SET name = $1, email = $2, age = $3, password_hash = $4, updated_at = NOW()
			WHERE id = $5
		`, upd.Name, email, nullableAge(upd.Age), upd.PasswordHash, id)
	} else {
		res, err = s.db.ExecContext(ctx, `
			UPDATE users
			SET name = $1, email = $2, age = $3, updated_at = NOW()
			WHERE id = $4
		`, upd.Name, email, nullableAge(upd.Age), id)
	}

	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("users: update: %w", err)
	}

	return requireRow(res, "update")
}

func (s *PostgresStore) SetAdmin(ctx context.Context, id string, admin bool) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET admin = $1, updated_at = NOW()
		WHERE id = $2
	`, admin, id)
	if err != nil {
		return fmt.Errorf("users: set admin: %w", err)
	}
	return requireRow(res, "set admin")
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	// Comments go with the user via ON DELETE CASCADE.
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM users
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("users: delete: %w", err)
	}
	return requireRow(res, "delete")
}

func (s *PostgresStore) AddComment(ctx context.Context, userID, body string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (user_id, body)
		VALUES ($1, $2)
	`, userID, body)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		// FK violation: the owning user is gone.
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("users: add comment: %w", err)
	}

	// The comment log counts as a mutation of its owner.
	_, err = s.db.ExecContext(ctx, `
		UPDATE users SET updated_at = NOW() WHERE id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("users: add comment touch: %w", err)
	}
	return nil
}

func (s *PostgresStore) loadComments(ctx context.Context, userID string) ([]Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT body, created_at
		FROM comments
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("users: load comments: %w", err)
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("users: comment scan: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("users: comment rows: %w", err)
	}

	return comments, nil
}

func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("users: %s rows affected: %w", op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func nullableAge(age *int) any {
	if age == nil {
		return nil
	}
	return *age
}

func ageFromNull(age sql.NullInt64) *int {
	if !age.Valid {
		return nil
	}
	v := int(age.Int64)
	return &v
}
