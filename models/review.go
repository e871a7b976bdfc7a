package models

import "time"

// Review is one user's rating of one booking. The composite unique index is
// the duplicate guard: concurrent submissions for the same pair surface as a
// constraint violation rather than relying on the pre-check.
type Review struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"index:idx_user_booking,unique;not null" json:"user_id"`
	BookingID uint `gorm:"index:idx_user_booking,unique;not null" json:"booking_id"`

	Rating int    `gorm:"not null" json:"rating"` // 1..5
	Title  string `gorm:"size:200" json:"title"`
	Body   string `gorm:"type:text" json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Booking  Booking   `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	Comments []Comment `gorm:"foreignKey:ReviewID" json:"comments,omitempty"`
}

// Comment is a reply to a review or to another comment on the same review.
type Comment struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	ReviewID uint  `gorm:"index;not null" json:"review_id"`
	UserID   uint  `gorm:"index;not null" json:"user_id"`
	ParentID *uint `gorm:"index" json:"parent_id,omitempty"`

	Body string `gorm:"type:text;not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
