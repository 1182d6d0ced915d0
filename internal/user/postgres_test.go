package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "role", "reset_token", "reset_token_expiry",
}

func newStoreWithMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresStore(db), mock, db
}

func TestFindByEmail_Found(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+id,\s*name,\s*email,\s*password_hash,\s*role,\s*reset_token,\s*reset_token_expiry\s+FROM\s+users\s+WHERE\s+LOWER\(email\)\s*=\s*LOWER\(\$1\)`

	rows := sqlmock.NewRows(userColumns).
		AddRow("u1", "Alice", "alice@example.com", "$2a$10$hash", "user", nil, nil)
	mock.ExpectQuery(q).WithArgs("Alice@Example.COM").WillReturnRows(rows)

	got, err := store.FindByEmail(context.Background(), "Alice@Example.COM")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if got == nil || got.ID != "u1" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.ResetToken != "" || !got.ResetTokenExpiry.IsZero() {
		t.Fatalf("expected empty reset fields, got %+v", got)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM users`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	got, err := store.FindByEmail(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("absent user must not be an error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil user, got %+v", got)
	}
}

func TestCreate_AssignsDefaultsAndLowercasesEmail(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	q := `(?s)INSERT\s+INTO\s+users\s*\(id,\s*name,\s*email,\s*password_hash,\s*role\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)`

	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg(), "Alice", "alice@example.com", "$2a$10$hash", "user").
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &User{Name: "Alice", Email: "Alice@Example.com", PasswordHash: "$2a$10$hash"}
	if err := store.Create(context.Background(), u); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.ID == "" {
		t.Fatal("Create must assign an id")
	}
	if u.Role != DefaultRole {
		t.Fatalf("expected default role, got %q", u.Role)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", u.Email)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+users`).
		WithArgs(sqlmock.AnyArg(), "Alice", "alice@example.com", "$2a$10$hash", "user").
		WillReturnError(&pq.Error{Code: "23505"})

	u := &User{Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$10$hash"}
	err := store.Create(context.Background(), u)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestSave_WritesPasswordAndTokenTogether(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	expiry := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)

	q := `(?s)UPDATE\s+users\s+SET\s+password_hash\s*=\s*\$2,\s*reset_token\s*=\s*\$3,\s*reset_token_expiry\s*=\s*\$4,\s*updated_at\s*=\s*NOW\(\)\s+WHERE\s+id\s*=\s*\$1`

	mock.ExpectExec(q).
		WithArgs("u1", "$2a$10$hash",
			sql.NullString{String: "deadbeef", Valid: true},
			sql.NullTime{Time: expiry, Valid: true}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &User{ID: "u1", PasswordHash: "$2a$10$hash", ResetToken: "deadbeef", ResetTokenExpiry: expiry}
	if err := store.Save(context.Background(), u); err != nil {
		t.Fatalf("Save error: %v", err)
	}
}

func TestSave_ClearedTokenStoredAsNull(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users\s+SET`).
		WithArgs("u1", "$2a$10$newhash",
			sql.NullString{},
			sql.NullTime{}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &User{ID: "u1", PasswordHash: "$2a$10$newhash"}
	u.ClearResetToken()
	if err := store.Save(context.Background(), u); err != nil {
		t.Fatalf("Save error: %v", err)
	}
}

func TestSave_MissingUser(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users\s+SET`).
		WithArgs("ghost", "$2a$10$hash", sql.NullString{}, sql.NullTime{}).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Save(context.Background(), &User{ID: "ghost", PasswordHash: "$2a$10$hash"})
	if err == nil {
		t.Fatal("expected error saving a missing user")
	}
}

func TestFindByResetToken(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	now := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	expiry := now.Add(30 * time.Minute)

	q := `(?s)SELECT\s+.*\s+FROM\s+users\s+WHERE\s+reset_token\s*=\s*\$1\s+AND\s+reset_token_expiry\s*>\s*\$2`

	rows := sqlmock.NewRows(userColumns).
		AddRow("u1", "Alice", "alice@example.com", "$2a$10$hash", "user", "deadbeef", expiry)
	mock.ExpectQuery(q).WithArgs("deadbeef", now).WillReturnRows(rows)

	got, err := store.FindByResetToken(context.Background(), "deadbeef", now)
	if err != nil {
		t.Fatalf("FindByResetToken error: %v", err)
	}
	if got == nil || got.ResetToken != "deadbeef" || !got.ResetTokenExpiry.Equal(expiry) {
		t.Fatalf("unexpected user: %+v", got)
	}
}
