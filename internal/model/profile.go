package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile represents a registered user of the schedule board.
type Profile struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, loaded only by FindByEmail
	FullName  *string   `json:"fullName" gorm:"column:full_name;size:255"`
	Role      string    `json:"role" gorm:"size:50;not null;default:'user'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProfilePatch lists the fields a profile update may change. Nil means keep.
type ProfilePatch struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	FullName *string `json:"fullName,omitempty"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

// IsEmpty reports whether the patch carries no changes.
func (p ProfilePatch) IsEmpty() bool {
	return p.Email == nil && p.Password == nil && p.FullName == nil && p.Role == nil
}

// ProfileInput is the payload for creating a profile. Password is plain
// text here and hashed before it reaches storage.
type ProfileInput struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName *string `json:"fullName,omitempty"`
	Role     string  `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}
