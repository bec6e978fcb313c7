package models

// Skill is a single entry in the skills grid. Category is a free-form
// label ("Languages", "Frameworks", "Tools", "DevOps", ...) rather than
// an enforced enum.
type Skill struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:text;not null" json:"name"`
	Category    string `gorm:"type:text;not null" json:"category"`
	Proficiency *int   `json:"proficiency"` // 0-100, nil when unrated
}

func (Skill) TableName() string { return "skills" }
