package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trainboard/internal/model"
)

// ScheduleSort names a column schedules may be ordered by.
type ScheduleSort string

const (
	SortNone           ScheduleSort = ""
	SortDepartureTime  ScheduleSort = "departureTime"
	SortArrivalTime    ScheduleSort = "arrivalTime"
	SortPrice          ScheduleSort = "price"
	SortStatus         ScheduleSort = "status"
	SortDelayMinutes   ScheduleSort = "delayMinutes"
	SortAvailableSeats ScheduleSort = "availableSeats"
	SortPlatform       ScheduleSort = "platform"
	SortCreatedAt      ScheduleSort = "createdAt"
	SortTrainNumber    ScheduleSort = "trainNumber"
	SortTrainName      ScheduleSort = "trainName"
)

// Aliases gorm gives the eager-loaded relations in the joined query.
const (
	trainAlias            = "Train"
	departureStationAlias = "DepartureStation"
	arrivalStationAlias   = "ArrivalStation"
)

var scheduleSortColumns = map[ScheduleSort]clause.Column{
	SortDepartureTime:  {Table: clause.CurrentTable, Name: "departure_time"},
	SortArrivalTime:    {Table: clause.CurrentTable, Name: "arrival_time"},
	SortPrice:          {Table: clause.CurrentTable, Name: "price"},
	SortStatus:         {Table: clause.CurrentTable, Name: "status"},
	SortDelayMinutes:   {Table: clause.CurrentTable, Name: "delay_minutes"},
	SortAvailableSeats: {Table: clause.CurrentTable, Name: "available_seats"},
	SortPlatform:       {Table: clause.CurrentTable, Name: "platform"},
	SortCreatedAt:      {Table: clause.CurrentTable, Name: "created_at"},
	SortTrainNumber:    {Table: trainAlias, Name: "number"},
	SortTrainName:      {Table: trainAlias, Name: "name"},
}

// Column returns the column backing the sort key.
func (s ScheduleSort) Column() (clause.Column, bool) {
	col, ok := scheduleSortColumns[s]
	return col, ok
}

// ScheduleFilter narrows and orders a schedule listing.
// Search matches a literal substring of either station name, the train
// number or the train name. The station filters are ANDed with it.
type ScheduleFilter struct {
	Search        string
	Sort          ScheduleSort
	FromStationID *uuid.UUID
	ToStationID   *uuid.UUID
}

// ScheduleRepository defines schedule persistence operations. Reads always
// populate Train, DepartureStation and ArrivalStation.
type ScheduleRepository interface {
	CRUDRepository[model.TrainSchedule]
	FindAll(ctx context.Context, filter ScheduleFilter) ([]model.TrainSchedule, error)
}

type scheduleRepository struct {
	crudRepository[model.TrainSchedule]
}

// NewScheduleRepository creates a new schedule repository.
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{crudRepository: newCRUDRepository[model.TrainSchedule](db)}
}

func (r *scheduleRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins(trainAlias).
		Joins(departureStationAlias).
		Joins(arrivalStationAlias)
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TrainSchedule, error) {
	var schedule model.TrainSchedule
	err := r.withRelations(ctx).
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Value: id}).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) List(ctx context.Context) ([]model.TrainSchedule, error) {
	return r.FindAll(ctx, ScheduleFilter{})
}

// FindAll runs the search/sort/filter query in a single joined statement.
func (r *scheduleRepository) FindAll(ctx context.Context, filter ScheduleFilter) ([]model.TrainSchedule, error) {
	query := r.withRelations(ctx)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(clause.Or(
			clause.Like{Column: clause.Column{Table: departureStationAlias, Name: "name"}, Value: pattern},
			clause.Like{Column: clause.Column{Table: arrivalStationAlias, Name: "name"}, Value: pattern},
			clause.Like{Column: clause.Column{Table: trainAlias, Name: "number"}, Value: pattern},
			clause.Like{Column: clause.Column{Table: trainAlias, Name: "name"}, Value: pattern},
		))
	}
	if filter.FromStationID != nil {
		query = query.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: "departure_station_id"},
			Value:  *filter.FromStationID,
		})
	}
	if filter.ToStationID != nil {
		query = query.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: "arrival_station_id"},
			Value:  *filter.ToStationID,
		})
	}
	if col, ok := filter.Sort.Column(); ok {
		query = query.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: col},
			{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}},
		}})
	}

	var schedules []model.TrainSchedule
	if err := query.Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}
