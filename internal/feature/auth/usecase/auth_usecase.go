package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"portal_backend/internal/feature/auth/domain"
	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/platform/token"
)

// dummyHash is compared against when the user does not exist so that a
// bcrypt comparison always runs. Mitigates user enumeration via timing.
const dummyHash = "$2a$12$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailTaken when the unique
	// constraint on email or username is violated.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user by its normalized login handle.
	// It returns ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves the public shape of a user, without the password
	// hash. It returns ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id uint) (*entity.PublicUser, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// TouchLastLogin records a successful login. Best-effort.
	TouchLastLogin(ctx context.Context, id uint) error
}

// TokenIssuer signs and verifies access tokens.
type TokenIssuer interface {
	Issue(userID uint, expiresAt time.Time) (string, error)
	Verify(tokenStr string) (userID uint, ok bool)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

// RegisterInput carries the fields required to create a user.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Session is the result of a successful registration or login.
// The token travels to the client in a cookie expiring at ExpiresAt.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.PublicUser
}

// AuthUsecase orchestrates registration, login and token-based
// authentication.
type AuthUsecase struct {
	users         UserRepository
	tokens        TokenIssuer
	passwords     PasswordHasher
	tokenLifetime time.Duration
	now           func() time.Time
}

// Option customizes an AuthUsecase.
type Option func(*AuthUsecase)

// WithClock injects the time source used to compute token expiry.
func WithClock(now func() time.Time) Option {
	return func(u *AuthUsecase) { u.now = now }
}

// WithTokenLifetime overrides the default token lifetime.
func WithTokenLifetime(d time.Duration) Option {
	return func(u *AuthUsecase) { u.tokenLifetime = d }
}

// NewAuthUsecase creates a new AuthUsecase with the given collaborators.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, passwords PasswordHasher, opts ...Option) *AuthUsecase {
	u := &AuthUsecase{
		users:         users,
		tokens:        tokens,
		passwords:     passwords,
		tokenLifetime: token.DefaultLifetime,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Register creates a new user and returns an authenticated session.
// The username is derived from the normalized email once, here, and never
// recomputed. The last-login touch is fire-and-forget; its failure cannot
// fail the registration.
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	email := domain.NormalizeEmail(in.Email)

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := u.passwords.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:  domain.UsernameFromEmail(in.Email),
		Email:     email,
		Password:  hashed,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
	}
	if err := u.users.Create(ctx, user); err != nil {
		// The unique constraint arbitrates concurrent duplicate
		// registrations; the loser gets the conflict outcome.
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	session, err := u.issueSession(user)
	if err != nil {
		return nil, err
	}

	u.touchLastLogin(ctx, user.ID)
	return session, nil
}

// Login authenticates a user by handle and password.
// Unknown handle and wrong password are indistinguishable to the caller;
// a bcrypt comparison runs in both cases. A store failure is not a
// credential problem and surfaces as a wrapped server error instead.
func (u *AuthUsecase) Login(ctx context.Context, handle, password string) (*Session, error) {
	username := domain.NormalizeHandle(handle)

	user, err := u.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	match := u.passwords.Verify(password, passwordHash)

	if err != nil || !match {
		return nil, ErrUnauthenticated
	}

	session, err := u.issueSession(user)
	if err != nil {
		return nil, err
	}

	u.touchLastLogin(ctx, user.ID)
	return session, nil
}

// Authenticate resolves a token string to the public user it asserts.
// An empty token short-circuits before any verification or store lookup.
// Every failure collapses to ErrUnauthenticated.
func (u *AuthUsecase) Authenticate(ctx context.Context, tokenStr string) (*entity.PublicUser, error) {
	if tokenStr == "" {
		return nil, ErrUnauthenticated
	}

	userID, ok := u.tokens.Verify(tokenStr)
	if !ok {
		return nil, ErrUnauthenticated
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user, nil
}

// issueSession signs a token for the user expiring tokenLifetime from now.
func (u *AuthUsecase) issueSession(user *entity.User) (*Session, error) {
	expiresAt := u.now().Add(u.tokenLifetime)
	signed, err := u.tokens.Issue(user.ID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenIssuance, err)
	}
	return &Session{Token: signed, ExpiresAt: expiresAt, User: user.Public()}, nil
}

// touchLastLogin updates last_login in a detached goroutine. The caller's
// response does not wait for it, and errors are logged and swallowed.
func (u *AuthUsecase) touchLastLogin(ctx context.Context, id uint) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := u.users.TouchLastLogin(ctx, id); err != nil {
			slog.Warn("failed to update last login", "error", err, "user_id", id)
		}
	}()
}
