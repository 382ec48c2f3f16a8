package models

import "time"

type Category struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Slug         string    `json:"slug" gorm:"size:255;not null;index"`
	PluralTitle  string    `json:"plural_title" gorm:"size:255"`
	Icon         string    `json:"icon" gorm:"size:255"`
	DisplayOrder int       `json:"display_order" gorm:"not null;uniqueIndex"`
	Sort         int       `json:"sort" gorm:"not null;default:0"`
	Active       bool      `json:"active" gorm:"not null;default:true"`
	Deleted      bool      `json:"deleted" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
