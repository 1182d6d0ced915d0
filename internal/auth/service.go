package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/krityagi/auth-service/internal/mail"
	"github.com/krityagi/auth-service/internal/session"
	"github.com/krityagi/auth-service/internal/token"
	"github.com/krityagi/auth-service/internal/user"
)

// Service orchestrates registration, login, logout and password reset
// against the injected stores. It holds no per-request state and is safe
// for concurrent use.
type Service struct {
	users    user.Store
	sessions session.Store
	mailer   mail.Mailer

	// baseURL is the public base URL embedded in reset links.
	baseURL string

	now func() time.Time // overridable in tests
}

func NewService(
	users user.Store,
	sessions session.Store,
	mailer mail.Mailer,
	baseURL string,
) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		mailer:   mailer,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
	}
}

// Register creates a new account. It issues no session; the user logs in
// afterwards.
func (s *Service) Register(ctx context.Context, name, email, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCredentialStoreUnavailable, err)
	}
	if existing != nil {
		return ErrDuplicateEmail
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("auth: hash password: %w", err)
	}

	err = s.users.Create(ctx, &user.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if errors.Is(err, user.ErrDuplicateEmail) {
		// Lost the race against a concurrent registration; the unique
		// index is the authority, the lookup above is advisory.
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCredentialStoreUnavailable, err)
	}

	return nil
}

// Login verifies credentials and establishes a fresh session.
//
// priorSessionID is whatever session the client presented, possibly
// empty. It is destroyed before the new identity-bearing session is
// created, so an attacker-seeded session ID can never become
// authenticated (session fixation). The new session is written to the
// store and acknowledged before Login returns; callers must not respond
// to the client before that.
func (s *Service) Login(ctx context.Context, email, password, priorSessionID string) (*session.Session, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentialStoreUnavailable, err)
	}
	if u == nil {
		// Same error as a wrong password: no enumeration signal.
		return nil, ErrInvalidCredentials
	}

	if !VerifyPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if priorSessionID != "" {
		if err := s.sessions.Delete(ctx, priorSessionID); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSessionStoreUnavailable, err)
		}
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	now := s.now()
	sess := session.Session{
		SessionID: sessionID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(session.TTL),
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionStoreUnavailable, err)
	}

	return &sess, nil
}

// Logout destroys the session. Destroying an absent session succeeds.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionStoreUnavailable, err)
	}
	return nil
}

// ForgotPassword issues a reset token and emails a reset link. When no
// account matches, it returns nil without sending anything, so the
// response cannot confirm account existence. A repeated request
// overwrites the previous token; only the latest is redeemable.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCredentialStoreUnavailable, err)
	}
	if u == nil {
		return nil
	}

	t, err := token.New(s.now())
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	u.ResetToken = t.Value
	u.ResetTokenExpiry = t.ExpiresAt
	if err := s.users.Save(ctx, u); err != nil {
		return fmt.Errorf("%w: %v", ErrCredentialStoreUnavailable, err)
	}

	body, err := mail.RenderResetEmail(mail.ResetEmailParams{
		ResetLink: s.baseURL + "/reset-password/" + t.Value,
		ExpiresIn: token.TTL,
	})
	if err != nil {
		return fmt.Errorf("auth: render reset email: %w", err)
	}

	// The token is already persisted; a delivery failure leaves it valid
	// so a retried request or an earlier email can still be used.
	if err := s.mailer.Send(ctx, u.Email, mail.ResetEmailSubject, body); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailDeliveryFailed, err)
	}

	return nil
}

// ResetPassword redeems a reset token. The new password hash and the
// token clear land in one store write, so the token is consumed exactly
// when the password changes.
func (s *Service) ResetPassword(ctx context.Context, tokenValue, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	u, err := s.users.FindByResetToken(ctx, tokenValue, s.now())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCredentialStoreUnavailable, err)
	}
	if u == nil {
		return ErrTokenInvalidOrExpired
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("auth: hash password: %w", err)
	}

	u.PasswordHash = hash
	u.ClearResetToken()

	if err := s.users.Save(ctx, u); err != nil {
		return fmt.Errorf("%w: %v", ErrCredentialStoreUnavailable, err)
	}

	return nil
}
