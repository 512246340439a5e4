package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titlehub/internal/config"
	"titlehub/internal/models"
	"titlehub/internal/repository"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the access-token payload. Identity and role travel in the token
// so the permission layer never needs a database round trip.
type Claims struct {
	UserID   string      `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// Signup creates the user and dispatches a confirmation code by email.
	Signup(ctx context.Context, username, email string) (*models.User, error)
	// IssueToken exchanges a confirmation code for a signed access token.
	IssueToken(ctx context.Context, username, code string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo   repository.UserRepository
	codeStore  CodeStore
	codeSender CodeSender
	jwtSecret  string
	tokenTTL   time.Duration
	codeTTL    time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	codeStore CodeStore,
	codeSender CodeSender,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		codeStore:  codeStore,
		codeSender: codeSender,
		jwtSecret:  cfg.JWTSecret,
		tokenTTL:   cfg.AccessTokenTTL,
		codeTTL:    cfg.ConfirmationCodeTTL,
	}
}

func (s *authService) Signup(ctx context.Context, username, email string) (*models.User, error) {
	// "me" is the self-service profile route, so it can never be a username
	if username == "me" {
		return nil, ErrUsernameReserved
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	code := uuid.New().String()
	if err := s.codeStore.Save(ctx, username, code, s.codeTTL); err != nil {
		return nil, err
	}

	// Synchronous dispatch: a delivery failure fails the request.
	if err := s.codeSender.Send(ctx, email, code); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodeDelivery, err)
	}

	return user, nil
}

func (s *authService) IssueToken(ctx context.Context, username, code string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if err := s.codeStore.Verify(ctx, username, code); err != nil {
		return "", err
	}

	// Single use: burn the code once it has been exchanged.
	if err := s.codeStore.Delete(ctx, username); err != nil {
		return "", err
	}

	return s.generateAccessToken(user)
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid || !claims.Role.IsValid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
