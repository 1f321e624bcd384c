package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"trainboard/internal/model"
	"trainboard/internal/repository"
)

const bcryptCost = 10

// ProfileService manages profiles. Lookups return nil, nil when the profile
// does not exist.
type ProfileService interface {
	FindAll(ctx context.Context) ([]model.Profile, error)
	FindOne(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	// FindByEmail includes the password hash.
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	Create(ctx context.Context, in model.ProfileInput) (*model.Profile, error)
	Update(ctx context.Context, id uuid.UUID, patch model.ProfilePatch) (*model.Profile, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type profileService struct {
	repo repository.ProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) FindAll(ctx context.Context) ([]model.Profile, error) {
	return s.repo.List(ctx)
}

func (s *profileService) FindOne(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if absent(err) {
		return nil, nil
	}
	return profile, err
}

func (s *profileService) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	profile, err := s.repo.FindByEmail(ctx, email)
	if absent(err) {
		return nil, nil
	}
	return profile, err
}

// Create hashes the password before insert. Duplicate emails surface as ErrConflict.
func (s *profileService) Create(ctx context.Context, in model.ProfileInput) (*model.Profile, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = model.RoleUser
	}

	profile := &model.Profile{
		Email:    in.Email,
		Password: hash,
		FullName: in.FullName,
		Role:     role,
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	profile.Password = ""
	return profile, nil
}

// Update applies the present fields only. A new password is re-hashed.
func (s *profileService) Update(ctx context.Context, id uuid.UUID, patch model.ProfilePatch) (*model.Profile, error) {
	if err := validate.Struct(patch); err != nil {
		return nil, err
	}

	existing, err := s.FindOne(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return existing, nil
	}

	cols := make(map[string]interface{})
	if patch.Email != nil {
		cols["email"] = *patch.Email
	}
	if patch.Password != nil {
		hash, err := hashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		cols["password"] = hash
	}
	if patch.FullName != nil {
		cols["full_name"] = *patch.FullName
	}
	if patch.Role != nil {
		cols["role"] = *patch.Role
	}

	if err := s.repo.Update(ctx, id, cols); err != nil {
		return nil, err
	}
	return s.FindOne(ctx, id)
}

// Remove deletes the profile. Missing ids are not an error.
func (s *profileService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
