package models

import (
	"time"

	"gorm.io/datatypes"
)

type BookingType string

const (
	BookingTypePackage     BookingType = "package"
	BookingTypeFlightHotel BookingType = "flight_hotel"
	BookingTypeItinerary   BookingType = "itinerary"
)

func ValidBookingType(t BookingType) bool {
	switch t {
	case BookingTypePackage, BookingTypeFlightHotel, BookingTypeItinerary:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
)

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCanceled:
		return true
	}
	return false
}

type InsuranceTier string

const (
	InsuranceNone    InsuranceTier = "none"
	InsuranceBasic   InsuranceTier = "basic"
	InsurancePremium InsuranceTier = "premium"
	InsuranceElite   InsuranceTier = "elite"
)

// insuranceFees is the flat per-person fee for each tier.
var insuranceFees = map[InsuranceTier]float64{
	InsuranceNone:    0,
	InsuranceBasic:   30,
	InsurancePremium: 50,
	InsuranceElite:   75,
}

func ValidInsuranceTier(t InsuranceTier) bool {
	_, ok := insuranceFees[t]
	return ok
}

// InsuranceFee returns the flat per-person fee for the tier, 0 for unknown tiers.
func InsuranceFee(t InsuranceTier) float64 {
	return insuranceFees[t]
}

type Booking struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	BookingType BookingType   `gorm:"type:varchar(20);not null;index" json:"booking_type"`
	Status      BookingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	// PackageID and PackageName are set for package bookings only. The name is
	// a snapshot so listings survive package edits.
	PackageID   *uint   `gorm:"index" json:"package_id,omitempty"`
	PackageName string  `gorm:"size:200" json:"package_name,omitempty"`

	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"` // nil only for one-way flight_hotel

	Persons       int           `gorm:"not null" json:"persons"`
	InsuranceType InsuranceTier `gorm:"type:varchar(20);default:'none'" json:"insurance_type"`
	TotalPrice    float64       `gorm:"type:decimal(10,2)" json:"total_price"`

	FlightDetails    datatypes.JSON `json:"flight_details,omitempty"`
	HotelDetails     datatypes.JSON `json:"hotel_details,omitempty"`
	ItineraryDetails datatypes.JSON `json:"itinerary_details,omitempty"`

	// PendingChanges holds a staged edit awaiting admin confirmation.
	PendingChanges datatypes.JSON `json:"pending_changes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Payments []Payment `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

// Days returns the calendar-day span of the booking, never less than one.
// One-way bookings without an end date count as a single day.
func (b *Booking) Days() int {
	if b.EndDate == nil {
		return 1
	}
	d := int(b.EndDate.Sub(b.StartDate).Hours() / 24)
	if d < 1 {
		d = 1
	}
	return d
}
