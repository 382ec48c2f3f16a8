package models

import "time"

// Favorite is not unique per (model, profile): un-favoriting sets Deleted and
// favoriting again inserts a new row.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ModelID   string    `json:"model_id" gorm:"type:text;not null;index"`
	ProfileID string    `json:"profile_id" gorm:"type:text;not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
	Deleted   bool      `json:"deleted" gorm:"not null;default:false"`
}

type ModelDownload struct {
	ID        string    `json:"id" gorm:"primarykey;type:text"`
	ModelID   string    `json:"model_id" gorm:"type:text;not null;index"`
	ProfileID *string   `json:"profile_id" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Deleted   bool      `json:"deleted" gorm:"not null;default:false"`
}

// Follow is an edge from ProfileID (follower) to TargetID.
type Follow struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ProfileID string    `json:"profile_id" gorm:"type:text;not null;uniqueIndex:idx_follow_profile_target"`
	TargetID  string    `json:"target_id" gorm:"type:text;not null;uniqueIndex:idx_follow_profile_target"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	Deleted   bool      `json:"deleted" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
