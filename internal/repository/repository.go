package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "trainboard/internal/errors"
)

// CRUDRepository is the persistence surface shared by every entity.
type CRUDRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type crudRepository[T any] struct {
	db *gorm.DB
}

func newCRUDRepository[T any](db *gorm.DB) crudRepository[T] {
	return crudRepository[T]{db: db}
}

// Create inserts a new row.
func (r crudRepository[T]) Create(ctx context.Context, entity *T) error {
	return translateError(r.db.WithContext(ctx).Create(entity).Error)
}

// FindByID returns gorm.ErrRecordNotFound when no row matches.
func (r crudRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// List returns every row in storage order.
func (r crudRepository[T]) List(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Update writes only the given columns. updated_at is maintained by gorm.
func (r crudRepository[T]) Update(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(columns).Error)
}

// Delete removes the row if present. Deleting a missing id is not an error.
func (r crudRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error)
}

// translateError turns constraint violations into domain errors.
// Requires gorm.Config.TranslateError.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", apperrors.ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidReference, err)
	default:
		return err
	}
}
