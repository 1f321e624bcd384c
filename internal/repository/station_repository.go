package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trainboard/internal/model"
)

// StationRepository defines station persistence operations.
type StationRepository interface {
	CRUDRepository[model.Station]
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Station, error)
	CountSchedules(ctx context.Context, id uuid.UUID) (int64, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo StationRepository) error) error
}

type stationRepository struct {
	crudRepository[model.Station]
}

// NewStationRepository creates a new station repository.
func NewStationRepository(db *gorm.DB) StationRepository {
	return &stationRepository{crudRepository: newCRUDRepository[model.Station](db)}
}

func (r *stationRepository) List(ctx context.Context) ([]model.Station, error) {
	var stations []model.Station
	if err := r.db.WithContext(ctx).Order("name").Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *stationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Station, error) {
	var station model.Station
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&station).Error; err != nil {
		return nil, err
	}
	return &station, nil
}

// CountSchedules counts schedules departing from or arriving at the station.
func (r *stationRepository) CountSchedules(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TrainSchedule{}).
		Where("departure_station_id = ? OR arrival_station_id = ?", id, id).
		Count(&count).Error
	return count, err
}

// WithTransaction executes a function within a database transaction.
func (r *stationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo StationRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &stationRepository{crudRepository: newCRUDRepository[model.Station](tx)})
	})
}
