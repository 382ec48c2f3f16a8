package models

import "gorm.io/datatypes"

// Profile is the public side of an account. Identity itself lives with the
// auth provider; the profile id is the token subject.
type Profile struct {
	ID        string         `json:"id" gorm:"primarykey;type:text"`
	Username  *string        `json:"username" gorm:"size:36;uniqueIndex"`
	Firstname string         `json:"firstname" gorm:"size:255"`
	Lastname  string         `json:"lastname" gorm:"size:255"`
	Avatar    string         `json:"avatar" gorm:"size:255"`
	Bio       string         `json:"bio" gorm:"type:text"`
	Socials   datatypes.JSON `json:"socials"`
	LicenseID *uint          `json:"license_id"`
	Active    bool           `json:"active" gorm:"not null;default:true"`
}
