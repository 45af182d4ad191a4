package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gostorefront/catalog/internal/hash"
	"github.com/gostorefront/catalog/internal/logging"
	"github.com/gostorefront/catalog/internal/models"
	"github.com/gostorefront/catalog/internal/repo"
	"github.com/gostorefront/catalog/internal/tokens"
)

// AuthService implements the credentials sign-in flow. OAuth providers are
// an external concern; they create users through the same repo.
type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

type LoginResult struct {
	AccessToken string
	AccessExp   time.Time
	User        *models.User
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: pwHash,
	}

	if err := s.Repo.CreateUserIfNotExists(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExists) {
			return nil, fmt.Errorf("email %s taken: %w", email, ErrConflict)
		}
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	accessExp := time.Now().Add(tokens.AccessTokenTTL)
	accessToken, err := tokens.NewAccessToken(user.ID, accessExp, s.JWTSecret)
	if err != nil {
		l.Error("sign_access_token_failed", "error", err)
		return nil, err
	}

	return &LoginResult{
		AccessToken: accessToken,
		AccessExp:   accessExp,
		User:        user,
	}, nil
}

// VerifyPassword compares against the stored bcrypt hash. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
		}
		return nil, err
	}
	if user.PasswordHash == "" || !hash.CheckPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}
	return user, nil
}
