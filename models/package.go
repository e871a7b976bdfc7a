package models

import (
	"time"

	"gorm.io/gorm"
)

type Package struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:200;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Location    string  `gorm:"size:200" json:"location"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"` // per day per person
	ImageURL    string  `json:"image_url,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
