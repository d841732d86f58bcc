package models

// Category is a flat record with a parent back-reference; a category with
// no parent is a top-level one.
type Category struct {
	ID     string `gorm:"primaryKey;size:64" json:"id"`
	Name   string `gorm:"not null;index" json:"name"`
	Image  string `json:"image"`
	Parent string `gorm:"size:64;index" json:"parent"`
}

func (c *Category) IsRoot() bool {
	return c.Parent == ""
}
