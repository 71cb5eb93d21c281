package entity

// Resource is an entity owned by exactly one user.
type Resource struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:255;not null" json:"name"`
	UserID uint   `gorm:"not null;index" json:"-"`
}

// TableName pins the table name; the default pluralization does not match
// the deployed schema.
func (Resource) TableName() string {
	return "internal_resource"
}
