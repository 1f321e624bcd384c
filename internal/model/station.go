package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCountry is assigned to stations created without a country.
const DefaultCountry = "Ukraine"

// Station is a stop a train departs from or arrives at.
type Station struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Code      string    `json:"code" gorm:"size:16;uniqueIndex;not null"`
	City      string    `json:"city" gorm:"size:255;not null"`
	Country   string    `json:"country" gorm:"size:255;not null;default:'Ukraine'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Station) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// StationInput is the payload for creating a station.
type StationInput struct {
	Name    string `json:"name" validate:"required"`
	Code    string `json:"code" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country,omitempty"`
}

// StationPatch lists the fields a station update may change.
type StationPatch struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Code    *string `json:"code,omitempty" validate:"omitempty,min=1"`
	City    *string `json:"city,omitempty" validate:"omitempty,min=1"`
	Country *string `json:"country,omitempty" validate:"omitempty,min=1"`
}

// Columns returns the changed columns keyed by column name.
func (p StationPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Code != nil {
		cols["code"] = *p.Code
	}
	if p.City != nil {
		cols["city"] = *p.City
	}
	if p.Country != nil {
		cols["country"] = *p.Country
	}
	return cols
}
