package service

import (
	"context"

	"github.com/google/uuid"

	"trainboard/internal/cache"
	apperrors "trainboard/internal/errors"
	"trainboard/internal/model"
	"trainboard/internal/repository"
)

// TrainService manages trains. Lookups return nil, nil when the train
// does not exist.
type TrainService interface {
	FindAll(ctx context.Context) ([]model.Train, error)
	FindOne(ctx context.Context, id uuid.UUID) (*model.Train, error)
	Create(ctx context.Context, in model.TrainInput) (*model.Train, error)
	Update(ctx context.Context, id uuid.UUID, patch model.TrainPatch) (*model.Train, error)
	// Remove refuses with *errors.ReferenceGuardError while schedules use the train.
	Remove(ctx context.Context, id uuid.UUID) error
}

type trainService struct {
	repo  repository.TrainRepository
	cache cache.Store
}

// NewTrainService builds a TrainService with repository and cache.
func NewTrainService(repo repository.TrainRepository, store cache.Store) TrainService {
	return &trainService{repo: repo, cache: store}
}

func (s *trainService) cacheKey(id uuid.UUID) string {
	return "train:" + id.String()
}

func (s *trainService) FindAll(ctx context.Context) ([]model.Train, error) {
	return s.repo.List(ctx)
}

func (s *trainService) FindOne(ctx context.Context, id uuid.UUID) (*model.Train, error) {
	var cached model.Train
	if cache.GetJSON(ctx, s.cache, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	train, err := s.repo.FindByID(ctx, id)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, s.cache, s.cacheKey(id), train, entityCacheTTL)
	return train, nil
}

func (s *trainService) Create(ctx context.Context, in model.TrainInput) (*model.Train, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	trainType := in.Type
	if trainType == "" {
		trainType = model.TrainTypeRegional
	}

	train := &model.Train{
		Number: in.Number,
		Name:   in.Name,
		Type:   trainType,
	}
	if err := s.repo.Create(ctx, train); err != nil {
		return nil, err
	}
	return train, nil
}

func (s *trainService) Update(ctx context.Context, id uuid.UUID, patch model.TrainPatch) (*model.Train, error) {
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

func (s *trainService) Remove(ctx context.Context, id uuid.UUID) error {
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.TrainRepository) error {
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
			return &apperrors.ReferenceGuardError{Entity: "train", Count: count}
		}
		return tx.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	cache.Invalidate(ctx, s.cache, s.cacheKey(id))
	return nil
}
