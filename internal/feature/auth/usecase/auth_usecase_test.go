package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/platform/password"
	"portal_backend/internal/platform/token"
)

// mockUserRepository is a mock implementation of the UserRepository
// interface. It simulates database operations during testing.
type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*entity.PublicUser, error)
	ExistsByEmailFunc  func(ctx context.Context, email string) (bool, error)
	TouchLastLoginFunc func(ctx context.Context, id uint) error

	findByIDCalls int
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.PublicUser, error) {
	m.findByIDCalls++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) TouchLastLogin(ctx context.Context, id uint) error {
	if m.TouchLastLoginFunc != nil {
		return m.TouchLastLoginFunc(ctx, id)
	}
	return nil
}

// failingIssuer always fails to sign, simulating operator misconfiguration.
type failingIssuer struct{}

func (failingIssuer) Issue(userID uint, expiresAt time.Time) (string, error) {
	return "", errors.New("no signing key")
}

func (failingIssuer) Verify(tokenStr string) (uint, bool) { return 0, false }

func newTestUsecase(t *testing.T, users UserRepository, opts ...Option) *AuthUsecase {
	t.Helper()

	issuer, err := token.NewIssuer("usecase-test-secret", "portal-test")
	require.NoError(t, err)
	return NewAuthUsecase(users, issuer, password.NewHasher(bcrypt.MinCost), opts...)
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("successful registration normalizes and hashes", func(t *testing.T) {
		var created *entity.User
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = user
				user.ID = 10
				return nil
			},
		}
		uc := newTestUsecase(t, mockRepo)

		session, err := uc.Register(context.Background(), RegisterInput{
			Email:     "A.User@Example.COM",
			Password:  "longenough1",
			FirstName: " Ada ",
			LastName:  " Lovelace ",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		// Domain lowercased, local part preserved; username fully lowercased.
		assert.Equal(t, "A.User@example.com", created.Email)
		assert.Equal(t, "a.user@example.com", created.Username)
		assert.Equal(t, "Ada", created.FirstName)
		assert.Equal(t, "Lovelace", created.LastName)

		// Stored password is a bcrypt hash of the input.
		assert.NotEqual(t, "longenough1", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("longenough1")))

		require.NotNil(t, session)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, uint(10), session.User.ID)
		assert.WithinDuration(t, time.Now().Add(token.DefaultLifetime), session.ExpiresAt, 5*time.Second)
	})

	t.Run("existing email yields conflict", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
				return true, nil
			},
		}
		uc := newTestUsecase(t, mockRepo)

		session, err := uc.Register(context.Background(), RegisterInput{
			Email: "taken@example.com", Password: "longenough1",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, session)
	})

	t.Run("unique-constraint race loser gets conflict", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailTaken
			},
		}
		uc := newTestUsecase(t, mockRepo)

		_, err := uc.Register(context.Background(), RegisterInput{
			Email: "raced@example.com", Password: "longenough1",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("store failure wraps the cause", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return storeErr
			},
		}
		uc := newTestUsecase(t, mockRepo)

		_, err := uc.Register(context.Background(), RegisterInput{
			Email: "user@example.com", Password: "longenough1",
		})
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("token issuance failure is a distinct outcome", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		uc := NewAuthUsecase(mockRepo, failingIssuer{}, password.NewHasher(bcrypt.MinCost))

		session, err := uc.Register(context.Background(), RegisterInput{
			Email: "user@example.com", Password: "longenough1",
		})
		assert.ErrorIs(t, err, ErrTokenIssuance)
		assert.Nil(t, session)
	})

	t.Run("last login touch failure does not fail registration", func(t *testing.T) {
		touched := make(chan uint, 1)
		mockRepo := &mockUserRepository{
			TouchLastLoginFunc: func(ctx context.Context, id uint) error {
				touched <- id
				return errors.New("update failed")
			},
		}
		uc := newTestUsecase(t, mockRepo)

		_, err := uc.Register(context.Background(), RegisterInput{
			Email: "user@example.com", Password: "longenough1",
		})
		require.NoError(t, err)

		select {
		case id := <-touched:
			assert.Equal(t, uint(1), id)
		case <-time.After(time.Second):
			t.Fatal("expected last-login touch to run")
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	hasher := password.NewHasher(bcrypt.MinCost)
	hashed, err := hasher.Hash("correct-password")
	require.NoError(t, err)

	testUser := &entity.User{
		ID:       3,
		Username: "a.user@example.com",
		Email:    "A.User@example.com",
		Password: hashed,
	}
	findKnown := func(ctx context.Context, username string) (*entity.User, error) {
		if username == testUser.Username {
			return testUser, nil
		}
		return nil, ErrUserNotFound
	}

	t.Run("successful login with mixed-case email handle", func(t *testing.T) {
		mockRepo := &mockUserRepository{FindByUsernameFunc: findKnown}
		uc := newTestUsecase(t, mockRepo)

		session, err := uc.Login(context.Background(), "A.User@Example.COM", "correct-password")
		require.NoError(t, err)
		assert.Equal(t, uint(3), session.User.ID)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("wrong password and unknown handle are indistinguishable", func(t *testing.T) {
		mockRepo := &mockUserRepository{FindByUsernameFunc: findKnown}
		uc := newTestUsecase(t, mockRepo)

		_, wrongPassErr := uc.Login(context.Background(), "a.user@example.com", "wrong-password")
		_, unknownErr := uc.Login(context.Background(), "nobody@example.com", "correct-password")

		assert.ErrorIs(t, wrongPassErr, ErrUnauthenticated)
		assert.ErrorIs(t, unknownErr, ErrUnauthenticated)
		assert.Equal(t, wrongPassErr, unknownErr)
	})

	t.Run("token issuance failure is a distinct outcome", func(t *testing.T) {
		mockRepo := &mockUserRepository{FindByUsernameFunc: findKnown}
		uc := NewAuthUsecase(mockRepo, failingIssuer{}, hasher)

		_, err := uc.Login(context.Background(), "a.user@example.com", "correct-password")
		assert.ErrorIs(t, err, ErrTokenIssuance)
	})

	t.Run("store failure is a server error, not bad credentials", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return nil, storeErr
			},
		}
		uc := newTestUsecase(t, mockRepo)

		_, err := uc.Login(context.Background(), "a.user@example.com", "correct-password")
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestAuthUsecase_Authenticate(t *testing.T) {
	public := &entity.PublicUser{ID: 5, Username: "user@example.com", Email: "user@example.com"}

	t.Run("register then authenticate resolves the same principal", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				user.ID = 5
				return nil
			},
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.PublicUser, error) {
				if id == 5 {
					return public, nil
				}
				return nil, ErrUserNotFound
			},
		}
		uc := newTestUsecase(t, mockRepo)

		session, err := uc.Register(context.Background(), RegisterInput{
			Email: "user@example.com", Password: "longenough1",
		})
		require.NoError(t, err)

		resolved, err := uc.Authenticate(context.Background(), session.Token)
		require.NoError(t, err)
		assert.Equal(t, uint(5), resolved.ID)
	})

	t.Run("empty token performs no store lookup", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		uc := newTestUsecase(t, mockRepo)

		_, err := uc.Authenticate(context.Background(), "")
		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.Zero(t, mockRepo.findByIDCalls)
	})

	t.Run("invalid token performs no store lookup", func(t *testing.T) {
		mockRepo := &mockUserRepository{}
		uc := newTestUsecase(t, mockRepo)

		_, err := uc.Authenticate(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.Zero(t, mockRepo.findByIDCalls)
	})

	t.Run("expired token is unauthenticated", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		mockRepo := &mockUserRepository{}
		uc := newTestUsecase(t, mockRepo, WithClock(func() time.Time { return past }))

		session, err := uc.Register(context.Background(), RegisterInput{
			Email: "user@example.com", Password: "longenough1",
		})
		require.NoError(t, err)

		// The verifier runs on the real clock; the token expired an hour ago.
		verifier := newTestUsecase(t, mockRepo)
		_, err = verifier.Authenticate(context.Background(), session.Token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("valid token for deleted user is unauthenticated", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.PublicUser, error) {
				return nil, ErrUserNotFound
			},
		}
		uc := newTestUsecase(t, mockRepo)

		session, err := uc.Register(context.Background(), RegisterInput{
			Email: "user@example.com", Password: "longenough1",
		})
		require.NoError(t, err)

		_, err = uc.Authenticate(context.Background(), session.Token)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}
