package service

import (
	"context"

	"github.com/google/uuid"

	"trainboard/internal/cache"
	apperrors "trainboard/internal/errors"
	"trainboard/internal/model"
	"trainboard/internal/repository"
)

// StationService manages stations. Lookups return nil, nil when the station
// does not exist.
type StationService interface {
	FindAll(ctx context.Context) ([]model.Station, error)
	FindOne(ctx context.Context, id uuid.UUID) (*model.Station, error)
	Create(ctx context.Context, in model.StationInput) (*model.Station, error)
	Update(ctx context.Context, id uuid.UUID, patch model.StationPatch) (*model.Station, error)
	// Remove refuses with *errors.ReferenceGuardError while schedules use the station.
	Remove(ctx context.Context, id uuid.UUID) error
}

type stationService struct {
	repo  repository.StationRepository
	cache cache.Store
}

// NewStationService builds a StationService with repository and cache.
func NewStationService(repo repository.StationRepository, store cache.Store) StationService {
	return &stationService{repo: repo, cache: store}
}

func (s *stationService) cacheKey(id uuid.UUID) string {
	return "station:" + id.String()
}

func (s *stationService) FindAll(ctx context.Context) ([]model.Station, error) {
	return s.repo.List(ctx)
}

func (s *stationService) FindOne(ctx context.Context, id uuid.UUID) (*model.Station, error) {
	var cached model.Station
	if cache.GetJSON(ctx, s.cache, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	station, err := s.repo.FindByID(ctx, id)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, s.cache, s.cacheKey(id), station, entityCacheTTL)
	return station, nil
}

func (s *stationService) Create(ctx context.Context, in model.StationInput) (*model.Station, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	country := in.Country
	if country == "" {
		country = model.DefaultCountry
	}

	station := &model.Station{
		Name:    in.Name,
		Code:    in.Code,
		City:    in.City,
		Country: country,
	}
	if err := s.repo.Create(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

func (s *stationService) Update(ctx context.Context, id uuid.UUID, patch model.StationPatch) (*model.Station, error) {
	if err := validate.Struct(patch); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cols := patch.Columns()
	if len(cols) == 0 {
		return existing, nil
	}
	if err := s.repo.Update(ctx, id, cols); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.cache, s.cacheKey(id))
	return s.FindOne(ctx, id)
}

func (s *stationService) Remove(ctx context.Context, id uuid.UUID) error {
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.StationRepository) error {
		if _, err := tx.FindByIDForUpdate(ctx, id); err != nil {
			if absent(err) {
				return nil
			}
			return err
		}
		count, err := tx.CountSchedules(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return &apperrors.ReferenceGuardError{Entity: "station", Count: count}
		}
		return tx.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	cache.Invalidate(ctx, s.cache, s.cacheKey(id))
	return nil
}
