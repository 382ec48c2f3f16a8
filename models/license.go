package models

import "time"

type License struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Active      bool      `json:"active" gorm:"not null;default:true"`
	Deleted     bool      `json:"deleted" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Counts holds denormalized totals such as "amps" and "pedals".
type Counts struct {
	Name  string `json:"name" gorm:"primarykey;size:255"`
	Count int    `json:"count" gorm:"not null"`
}
