package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	jwtSecret   []byte
	tokenExpiry time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo domain.UserRepository, jwtSecret string, tokenExpiry time.Duration) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: tokenExpiry,
	}
}

// Register creates a new candidate account and signs a token for it
func (uc *authUsecase) Register(ctx context.Context, name, email, password string) (*domain.AuthToken, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return nil, apperror.BadRequest("Please provide name, email and password")
	}
	if len(password) < 8 {
		return nil, apperror.BadRequest("Password must be at least 8 characters")
	}

	if existing, _ := uc.userRepo.GetByEmail(ctx, email); existing != nil {
		return nil, apperror.BadRequest("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCandidate,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	return uc.issueToken(user)
}

// Login verifies credentials and signs a token
func (uc *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperror.BadRequest("Please provide email and password")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same message as a wrong password so accounts cannot be enumerated
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	return uc.issueToken(user)
}

// GetCurrentUser returns the user for a validated token subject
func (uc *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (uc *authUsecase) issueToken(user *domain.User) (*domain.AuthToken, error) {
	expiresAt := time.Now().Add(uc.tokenExpiry)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthToken{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}
