package models

type Tag struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"not null;unique" json:"name"`
}
