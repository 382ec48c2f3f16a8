package models

import "time"

// Tag is the curated tag vocabulary. Model.Tags stores free-form names and is
// not joined against this table.
type Tag struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Group     string    `json:"group" gorm:"size:255"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	Deleted   bool      `json:"deleted" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
