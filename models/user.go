package models

import (
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ValidRole reports whether r is one of the two known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FirstName   string `gorm:"size:100;not null" json:"first_name"`
	LastName    string `gorm:"size:100;not null" json:"last_name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"` // bcrypt hash
	Role        Role   `gorm:"type:varchar(20);default:'user';not null" json:"role"`
	Phone       string `gorm:"size:30" json:"phone,omitempty"`
	DOB         string `gorm:"size:10" json:"dob,omitempty"` // YYYY-MM-DD
	Gender      string `gorm:"size:20" json:"gender,omitempty"`
	Nationality string `gorm:"size:100" json:"nationality,omitempty"`
	Street      string `gorm:"size:200" json:"street,omitempty"`
	City        string `gorm:"size:100" json:"city,omitempty"`
	State       string `gorm:"size:100" json:"state,omitempty"`
	Zip         string `gorm:"size:20" json:"zip,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Bookings      []Booking `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
	BookingsCount int64     `gorm:"-" json:"bookings_count,omitempty"`
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Token     string    `gorm:"size:64;index;not null" json:"-"` // sha256 hex of the opaque token
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
