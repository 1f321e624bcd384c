package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trainboard/internal/model"
)

// TrainRepository defines train persistence operations.
type TrainRepository interface {
	CRUDRepository[model.Train]
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Train, error)
	CountSchedules(ctx context.Context, id uuid.UUID) (int64, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo TrainRepository) error) error
}

type trainRepository struct {
	crudRepository[model.Train]
}

// NewTrainRepository creates a new train repository.
func NewTrainRepository(db *gorm.DB) TrainRepository {
	return &trainRepository{crudRepository: newCRUDRepository[model.Train](db)}
}

func (r *trainRepository) List(ctx context.Context) ([]model.Train, error) {
	var trains []model.Train
	if err := r.db.WithContext(ctx).Order("number").Find(&trains).Error; err != nil {
		return nil, err
	}
	return trains, nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *trainRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Train, error) {
	var train model.Train
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&train).Error; err != nil {
		return nil, err
	}
	return &train, nil
}

// CountSchedules counts schedules run by the train.
func (r *trainRepository) CountSchedules(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TrainSchedule{}).
		Where("train_id = ?", id).
		Count(&count).Error
	return count, err
}

// WithTransaction executes a function within a database transaction.
func (r *trainRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo TrainRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &trainRepository{crudRepository: newCRUDRepository[model.Train](tx)})
	})
}
