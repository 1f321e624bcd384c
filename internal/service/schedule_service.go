package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "trainboard/internal/errors"
	"trainboard/internal/model"
	"trainboard/internal/repository"
)

// ScheduleQuery carries the raw listing parameters.
type ScheduleQuery struct {
	Search        string
	Sort          string
	FromStationID string
	ToStationID   string
}

// ScheduleService manages schedules. Every returned schedule has its train
// and both stations populated. Lookups return nil, nil when absent.
type ScheduleService interface {
	FindAll(ctx context.Context, q ScheduleQuery) ([]model.TrainSchedule, error)
	FindOne(ctx context.Context, id uuid.UUID) (*model.TrainSchedule, error)
	Create(ctx context.Context, in model.ScheduleInput, createdBy *uuid.UUID) (*model.TrainSchedule, error)
	Update(ctx context.Context, id uuid.UUID, patch model.SchedulePatch) (*model.TrainSchedule, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type scheduleService struct {
	repo repository.ScheduleRepository
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(repo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{repo: repo}
}

func (s *scheduleService) FindAll(ctx context.Context, q ScheduleQuery) ([]model.TrainSchedule, error) {
	sortKey, err := parseScheduleSort(q.Sort)
	if err != nil {
		return nil, err
	}
	filter := repository.ScheduleFilter{Search: q.Search, Sort: sortKey}
	if filter.FromStationID, err = parseOptionalID("from", q.FromStationID); err != nil {
		return nil, err
	}
	if filter.ToStationID, err = parseOptionalID("to", q.ToStationID); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, filter)
}

func (s *scheduleService) FindOne(ctx context.Context, id uuid.UUID) (*model.TrainSchedule, error) {
	schedule, err := s.repo.FindByID(ctx, id)
	if absent(err) {
		return nil, nil
	}
	return schedule, err
}

// Create stores a schedule that references existing train and stations by id.
// Unknown references surface as ErrInvalidReference.
func (s *scheduleService) Create(ctx context.Context, in model.ScheduleInput, createdBy *uuid.UUID) (*model.TrainSchedule, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	departure, err := parseScheduleTime("departureTime", in.DepartureTime)
	if err != nil {
		return nil, err
	}
	arrival, err := parseScheduleTime("arrivalTime", in.ArrivalTime)
	if err != nil {
		return nil, err
	}
	if err := validateTravelWindow(departure, arrival); err != nil {
		return nil, err
	}

	schedule := &model.TrainSchedule{
		TrainID:            uuid.MustParse(in.TrainID),
		DepartureStationID: uuid.MustParse(in.DepartureStationID),
		ArrivalStationID:   uuid.MustParse(in.ArrivalStationID),
		DepartureTime:      departure,
		ArrivalTime:        arrival,
		Platform:           in.Platform,
		Status:             model.ScheduleStatusOnTime,
		Price:              decimal.NewNullDecimal(*in.Price),
		AvailableSeats:     *in.AvailableSeats,
		CreatedBy:          createdBy,
	}
	if in.Status != "" {
		schedule.Status = model.ScheduleStatus(in.Status)
	}
	if in.DelayMinutes != nil {
		schedule.DelayMinutes = *in.DelayMinutes
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return s.FindOne(ctx, schedule.ID)
}

// Update applies the present fields. The merged departure and arrival
// times must still form a valid window.
func (s *scheduleService) Update(ctx context.Context, id uuid.UUID, patch model.SchedulePatch) (*model.TrainSchedule, error) {
	if err := validate.Struct(patch); err != nil {
		return nil, err
	}

	existing, err := s.FindOne(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	cols := make(map[string]interface{})
	departure, arrival := existing.DepartureTime, existing.ArrivalTime
	if patch.DepartureTime != nil {
		if departure, err = parseScheduleTime("departureTime", *patch.DepartureTime); err != nil {
			return nil, err
		}
		cols["departure_time"] = departure
	}
	if patch.ArrivalTime != nil {
		if arrival, err = parseScheduleTime("arrivalTime", *patch.ArrivalTime); err != nil {
			return nil, err
		}
		cols["arrival_time"] = arrival
	}
	if patch.DepartureTime != nil || patch.ArrivalTime != nil {
		if err := validateTravelWindow(departure, arrival); err != nil {
			return nil, err
		}
	}

	if patch.TrainID != nil {
		cols["train_id"] = uuid.MustParse(*patch.TrainID)
	}
	if patch.DepartureStationID != nil {
		cols["departure_station_id"] = uuid.MustParse(*patch.DepartureStationID)
	}
	if patch.ArrivalStationID != nil {
		cols["arrival_station_id"] = uuid.MustParse(*patch.ArrivalStationID)
	}
	if patch.Platform != nil {
		cols["platform"] = *patch.Platform
	}
	if patch.Status != nil {
		cols["status"] = *patch.Status
	}
	if patch.DelayMinutes != nil {
		cols["delay_minutes"] = *patch.DelayMinutes
	}
	if patch.Price != nil {
		cols["price"] = *patch.Price
	}
	if patch.AvailableSeats != nil {
		cols["available_seats"] = *patch.AvailableSeats
	}

	if len(cols) == 0 {
		return existing, nil
	}
	if err := s.repo.Update(ctx, id, cols); err != nil {
		return nil, err
	}
	return s.FindOne(ctx, id)
}

// Remove deletes the schedule unconditionally. Missing ids are not an error.
func (s *scheduleService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func parseOptionalID(field, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be a UUID")
	}
	return &id, nil
}
