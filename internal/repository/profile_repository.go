package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trainboard/internal/model"
)

// ProfileRepository defines profile persistence operations.
// FindByID and List never load the password hash; FindByEmail always does.
type ProfileRepository interface {
	CRUDRepository[model.Profile]
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
}

type profileRepository struct {
	crudRepository[model.Profile]
}

// NewProfileRepository builds a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{crudRepository: newCRUDRepository[model.Profile](db)}
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Omit("password").Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	if err := r.db.WithContext(ctx).Omit("password").Order("created_at").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// FindByEmail is the credential lookup used by login.
func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
