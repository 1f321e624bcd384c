package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ScheduleStatus represents the operational state of a scheduled trip.
type ScheduleStatus string

const (
	ScheduleStatusOnTime    ScheduleStatus = "on-time"
	ScheduleStatusDelayed   ScheduleStatus = "delayed"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// Valid reports whether s belongs to the accepted vocabulary.
func (s ScheduleStatus) Valid() bool {
	switch s {
	case ScheduleStatusOnTime, ScheduleStatusDelayed, ScheduleStatusCancelled:
		return true
	}
	return false
}

// TimeLayout is the wire format for departure and arrival times.
const TimeLayout = time.RFC3339

// TrainSchedule is one planned trip of a train between two stations.
type TrainSchedule struct {
	ID                 uuid.UUID           `json:"id" gorm:"type:char(36);primaryKey"`
	TrainID            uuid.UUID           `json:"trainId" gorm:"type:char(36);not null;index"`
	DepartureStationID uuid.UUID           `json:"departureStationId" gorm:"type:char(36);not null;index"`
	ArrivalStationID   uuid.UUID           `json:"arrivalStationId" gorm:"type:char(36);not null;index"`
	DepartureTime      time.Time           `json:"departureTime" gorm:"not null;index"`
	ArrivalTime        time.Time           `json:"arrivalTime" gorm:"not null"`
	Platform           *string             `json:"platform" gorm:"size:16"`
	Status             ScheduleStatus      `json:"status" gorm:"type:varchar(20);not null;default:'on-time'"`
	DelayMinutes       int                 `json:"delayMinutes" gorm:"not null;default:0"`
	Price              decimal.NullDecimal `json:"price" gorm:"type:decimal(10,2)"`
	AvailableSeats     int                 `json:"availableSeats" gorm:"not null;default:0"`
	CreatedBy          *uuid.UUID          `json:"createdBy" gorm:"type:char(36);index"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`

	// Relations
	Train            *Train   `json:"train,omitempty" gorm:"foreignKey:TrainID;constraint:OnDelete:RESTRICT"`
	DepartureStation *Station `json:"departureStation,omitempty" gorm:"foreignKey:DepartureStationID;constraint:OnDelete:RESTRICT"`
	ArrivalStation   *Station `json:"arrivalStation,omitempty" gorm:"foreignKey:ArrivalStationID;constraint:OnDelete:RESTRICT"`
	Creator          *Profile `json:"-" gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`
}

// BeforeCreate sets UUID before creating the record.
func (s *TrainSchedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ScheduleInput is the payload for creating a schedule. Related records are
// referenced by id only.
type ScheduleInput struct {
	TrainID            string           `json:"trainId" validate:"required,uuid"`
	DepartureStationID string           `json:"departureStationId" validate:"required,uuid"`
	ArrivalStationID   string           `json:"arrivalStationId" validate:"required,uuid"`
	DepartureTime      string           `json:"departureTime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ArrivalTime        string           `json:"arrivalTime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Platform           *string          `json:"platform,omitempty"`
	Status             string           `json:"status,omitempty" validate:"omitempty,oneof=on-time delayed cancelled"`
	DelayMinutes       *int             `json:"delayMinutes,omitempty" validate:"omitempty,min=0"`
	Price              *decimal.Decimal `json:"price" validate:"required"`
	AvailableSeats     *int             `json:"availableSeats" validate:"required,min=0"`
}

// SchedulePatch lists the fields a schedule update may change.
type SchedulePatch struct {
	TrainID            *string          `json:"trainId,omitempty" validate:"omitempty,uuid"`
	DepartureStationID *string          `json:"departureStationId,omitempty" validate:"omitempty,uuid"`
	ArrivalStationID   *string          `json:"arrivalStationId,omitempty" validate:"omitempty,uuid"`
	DepartureTime      *string          `json:"departureTime,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ArrivalTime        *string          `json:"arrivalTime,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Platform           *string          `json:"platform,omitempty"`
	Status             *string          `json:"status,omitempty" validate:"omitempty,oneof=on-time delayed cancelled"`
	DelayMinutes       *int             `json:"delayMinutes,omitempty" validate:"omitempty,min=0"`
	Price              *decimal.Decimal `json:"price,omitempty"`
	AvailableSeats     *int             `json:"availableSeats,omitempty" validate:"omitempty,min=0"`
}
