// Package entity defines the domain entities for the blog feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups posts. NormalizedName enforces case- and
// Unicode-insensitive uniqueness; Slug is the URL-safe projection of the name.
type Category struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	NormalizedName string    `gorm:"size:255;uniqueIndex;not null" json:"-"`
	Slug           string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description    *string   `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a random UUID when none is set.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
