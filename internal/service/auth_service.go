package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"trainboard/internal/auth"
	apperrors "trainboard/internal/errors"
	"trainboard/internal/model"
)

// RegisterInput is the self-service sign-up payload. A role cannot be chosen.
type RegisterInput struct {
	Email    string
	Password string
	FullName *string
}

// AuthService handles authentication operations.
type AuthService interface {
	// Login returns a signed access token. Unknown email and wrong password
	// fail identically with ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// Register creates a user profile and logs it in.
	Register(ctx context.Context, in RegisterInput) (string, error)
	// Logout revokes the token the claims were read from.
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	profiles   ProfileService
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(profiles ProfileService, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		profiles:   profiles,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("find profile: %w", err)
	}
	if profile == nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateAccessToken(profile)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if in.Email == "" || in.Password == "" {
		fields := make(map[string]string)
		if in.Email == "" {
			fields["email"] = "is required"
		}
		if in.Password == "" {
			fields["password"] = "is required"
		}
		return "", &apperrors.ValidationError{Fields: fields}
	}

	if _, err := s.profiles.Create(ctx, model.ProfileInput{
		Email:    in.Email,
		Password: in.Password,
		FullName: in.FullName,
		Role:     model.RoleUser,
	}); err != nil {
		return "", err
	}
	return s.Login(ctx, in.Email, in.Password)
}

func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return apperrors.ErrUnauthorized
	}
	return s.tokenStore.Revoke(ctx, claims.ID, s.jwtService.Remaining(claims))
}
