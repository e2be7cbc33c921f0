package service

import (
	"context"
	"fmt"
	"time"

	"github.com/itchan-dev/itchan-auth/shared/domain"
	"github.com/itchan-dev/itchan-auth/shared/errors"
	"github.com/itchan-dev/itchan-auth/shared/logger"
	"github.com/itchan-dev/itchan-auth/shared/middleware/metrics"
)

type AuthService interface {
	Authenticate(ctx context.Context, creds domain.Credentials) (domain.Session, error)
}

// UserDirectory returns the single user whose email matches, or an
// ErrorWithStatusCode with status 404 when there is none.
type UserDirectory interface {
	UserByEmail(ctx context.Context, email domain.Email) (domain.User, error)
}

type PasswordHasher interface {
	Verify(password domain.Password, hash string) (bool, error)
}

type TokenIssuer interface {
	NewToken(user domain.User, ttl time.Duration) (string, error)
}

type Auth struct {
	directory UserDirectory
	hasher    PasswordHasher
	issuer    TokenIssuer
}

func NewAuth(directory UserDirectory, hasher PasswordHasher, issuer TokenIssuer) *Auth {
	return &Auth{
		directory: directory,
		hasher:    hasher,
		issuer:    issuer,
	}
}

// Authenticate checks creds and returns a session token on success.
// An unknown email and a wrong password both yield errors.ErrUnauthorized.
// Failures of the collaborators themselves are returned as plain errors so
// they surface as internal errors rather than as 401.
func (a *Auth) Authenticate(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	session, err := a.authenticate(ctx, creds)
	switch {
	case err == nil:
		metrics.RecordAuthAttempt(metrics.OutcomeSuccess)
	case errors.IsUnauthorized(err):
		metrics.RecordAuthAttempt(metrics.OutcomeUnauthorized)
	default:
		metrics.RecordAuthAttempt(metrics.OutcomeError)
	}
	return session, err
}

func (a *Auth) authenticate(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	user, err := a.directory.UserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.IsNotFound(err) {
			logger.Log.DebugContext(ctx, "authentication failed", "reason", "unknown user")
			return domain.Session{}, errors.ErrUnauthorized
		}
		logger.Log.ErrorContext(ctx, "failed to look up user", "error", err)
		return domain.Session{}, fmt.Errorf("look up user: %w", err)
	}

	ok, err := a.hasher.Verify(creds.Password, user.PassHash)
	if err != nil {
		logger.Log.ErrorContext(ctx, "failed to verify password", "user_id", user.Id, "error", err)
		return domain.Session{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		logger.Log.DebugContext(ctx, "authentication failed", "reason", "password mismatch", "user_id", user.Id)
		return domain.Session{}, errors.ErrUnauthorized
	}

	token, err := a.issuer.NewToken(user, domain.SessionTTL)
	if err != nil {
		logger.Log.ErrorContext(ctx, "failed to create token", "user_id", user.Id, "error", err)
		return domain.Session{}, fmt.Errorf("issue token: %w", err)
	}

	return domain.Session{User: user.Email, Token: token}, nil
}
