package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a blog entry. It optionally belongs to a category (detached when
// the category is deleted) and carries any number of tags.
type Post struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	NormalizedTitle string     `gorm:"size:255;uniqueIndex;not null" json:"-"`
	Slug            string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	Published       bool       `gorm:"not null;default:false" json:"published"`
	CategoryID      *uuid.UUID `gorm:"type:uuid" json:"-"`
	Category        *Category  `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Tags            []Tag      `gorm:"many2many:post_tags" json:"-"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns a random UUID when none is set.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
