package models

import "time"

// Message is a contact-form submission. Rows are append-only; CreatedAt
// is assigned by the server at insert time, never by the client.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Message) TableName() string { return "messages" }
