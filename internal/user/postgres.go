package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code raised by the unique index
// on LOWER(email).
const uniqueViolation = "23505"

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, name, email, password_hash, role, reset_token, reset_token_expiry
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`
	return s.queryOne(ctx, query, email)
}

func (s *PostgresStore) FindByResetToken(ctx context.Context, token string, now time.Time) (*User, error) {
	query := `
		SELECT id, name, email, password_hash, role, reset_token, reset_token_expiry
		FROM users
		WHERE reset_token = $1 AND reset_token_expiry > $2
	`
	return s.queryOne(ctx, query, token, now)
}

func (s *PostgresStore) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = DefaultRole
	}
	u.Email = strings.ToLower(u.Email)

	query := `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("user: create: %w", err)
	}

	return nil
}

func (s *PostgresStore) Save(ctx context.Context, u *User) error {
	query := `
		UPDATE users
		SET password_hash = $2,
		    reset_token = $3,
		    reset_token_expiry = $4,
		    updated_at = NOW()
		WHERE id = $1
	`

	res, err := s.db.ExecContext(ctx, query,
		u.ID, u.PasswordHash, nullString(u.ResetToken), nullTime(u.ResetTokenExpiry))
	if err != nil {
		return fmt.Errorf("user: save: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("user: save: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user: save: no user with id %s", u.ID)
	}

	return nil
}

func (s *PostgresStore) queryOne(ctx context.Context, query string, args ...any) (*User, error) {
	var (
		u      User
		token  sql.NullString
		expiry sql.NullTime
	)

	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &token, &expiry)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user: query: %w", err)
	}

	if token.Valid {
		u.ResetToken = token.String
	}
	if expiry.Valid {
		u.ResetTokenExpiry = expiry.Time
	}

	return &u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
