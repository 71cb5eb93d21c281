package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag labels posts across categories.
type Tag struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	NormalizedName string    `gorm:"size:255;uniqueIndex;not null" json:"-"`
	Description    *string   `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a random UUID when none is set.
func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
