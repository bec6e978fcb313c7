package models

import (
	"gorm.io/datatypes"
)

// SocialLinks is the structured payload stored in profile.social_links.
// Every platform is optional; absent entries are omitted from the JSON.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Profile is the site owner's bio. The table holds at most one row; the
// repository reads the first row and treats an empty table as not-found.
type Profile struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:text;not null" json:"name"`
	Title   string `gorm:"type:text;not null" json:"title"`
	Bio     string `gorm:"type:text;not null" json:"bio"`
	Summary string `gorm:"type:text;not null" json:"summary"`

	AvatarURL *string `gorm:"column:avatar_url;type:text" json:"avatarUrl"`
	ResumeURL *string `gorm:"column:resume_url;type:text" json:"resumeUrl"`

	// JSON object, nil when the owner has no links (serializes as null).
	SocialLinks datatypes.JSON `gorm:"column:social_links" json:"socialLinks"`
}

func (Profile) TableName() string { return "profile" }
