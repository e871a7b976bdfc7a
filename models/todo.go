package models

import "time"

type Todo struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Title        string    `gorm:"size:200;not null" json:"title"`
	DueDate      time.Time `gorm:"not null;index" json:"due_date"`
	Completed    bool      `gorm:"default:false" json:"completed"`
	ReminderSent bool      `gorm:"default:false" json:"reminder_sent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
