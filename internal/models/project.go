package models

import (
	"gorm.io/datatypes"
)

// Project is a showcased piece of work. TechStack keeps insertion order,
// which is display order on the site.
type Project struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"type:text;not null" json:"title"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	TechStack   datatypes.JSONSlice[string] `gorm:"column:tech_stack" json:"techStack"`
	Outcome     string                      `gorm:"type:text;not null" json:"outcome"`
	GitHubURL   *string                     `gorm:"column:github_url;type:text" json:"githubUrl"`
	DemoURL     *string                     `gorm:"column:demo_url;type:text" json:"demoUrl"`
	ImageURL    *string                     `gorm:"column:image_url;type:text" json:"imageUrl"`
	Featured    bool                        `gorm:"not null;default:false" json:"featured"`
}

func (Project) TableName() string { return "projects" }
