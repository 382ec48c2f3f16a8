package models

import (
	"time"

	"github.com/lib/pq"
)

type Model struct {
	ID          string          `json:"id" gorm:"primarykey;type:text"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text"`
	AmpName     string          `json:"amp_name" gorm:"size:255"`
	ModelPath   string          `json:"model_path" gorm:"size:255"`
	Filename    string          `json:"filename" gorm:"size:255"`
	Filecount   *int            `json:"filecount"`
	Icon        string          `json:"icon" gorm:"size:255"`
	Link        string          `json:"link" gorm:"size:255"`
	Tags        pq.StringArray  `json:"tags" gorm:"type:text[]"`
	ProfileID   string          `json:"profile_id" gorm:"type:text;not null;index"`
	Profile     Profile         `json:"profile" gorm:"foreignKey:ProfileID"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index"`
	Category    Category        `json:"category" gorm:"foreignKey:CategoryID"`
	LicenseID   *uint           `json:"license_id"`
	License     *License        `json:"license,omitempty" gorm:"foreignKey:LicenseID"`
	Private     bool            `json:"private" gorm:"not null;default:false"`
	Active      bool            `json:"active" gorm:"not null;default:true"`
	Deleted     bool            `json:"deleted" gorm:"not null;default:false"`
	Favorites   []Favorite      `json:"-" gorm:"foreignKey:ModelID"`
	Downloads   []ModelDownload `json:"-" gorm:"foreignKey:ModelID"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
