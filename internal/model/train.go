package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Train types seen in the data. The column is not constrained to these.
const (
	TrainTypeHighSpeed = "high_speed"
	TrainTypeIntercity = "intercity"
	TrainTypeRegional  = "regional"
	TrainTypeLocal     = "local"
)

// Train is a rolling-stock service identified by its public number.
type Train struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Number    string    `json:"number" gorm:"size:32;uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Type      string    `json:"type" gorm:"size:32;not null;default:'regional'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Train) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TrainInput is the payload for creating a train.
type TrainInput struct {
	Number string `json:"number" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type,omitempty"`
}

// TrainPatch lists the fields a train update may change.
type TrainPatch struct {
	Number *string `json:"number,omitempty" validate:"omitempty,min=1"`
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Type   *string `json:"type,omitempty" validate:"omitempty,min=1"`
}

// Columns returns the changed columns keyed by column name.
func (p TrainPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Number != nil {
		cols["number"] = *p.Number
	}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Type != nil {
		cols["type"] = *p.Type
	}
	return cols
}
