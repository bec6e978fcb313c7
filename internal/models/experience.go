package models

import (
	"gorm.io/datatypes"
)

// Experience is one employment entry. Dates are free-form strings
// ("2021", "Jan 2023"); a nil EndDate means the role is ongoing.
// Description holds the bullet points in display order.
type Experience struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Company     string                      `gorm:"type:text;not null" json:"company"`
	Role        string                      `gorm:"type:text;not null" json:"role"`
	StartDate   string                      `gorm:"column:start_date;type:text;not null" json:"startDate"`
	EndDate     *string                     `gorm:"column:end_date;type:text" json:"endDate"`
	Description datatypes.JSONSlice[string] `json:"description"`
}

func (Experience) TableName() string { return "experience" }
