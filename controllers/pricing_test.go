package controllers

import (
	"testing"
	"time"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
)

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return &d
}

func TestComputeTotalPricePackage(t *testing.T) {
	// 100/day, 3 days, 2 persons, premium insurance => 600 + 100 = 700
	req := createBookingRequest{
		BookingType:   models.BookingTypePackage,
		Persons:       2,
		InsuranceType: models.InsurancePremium,
	}
	got := computeTotalPrice(req, 100, 3)
	if got != 700 {
		t.Errorf("package price = %v, want 700", got)
	}
}

func TestComputeTotalPriceItinerary(t *testing.T) {
	req := createBookingRequest{
		BookingType:   models.BookingTypeItinerary,
		Persons:       3,
		InsuranceType: models.InsuranceBasic,
		Activities: []models.Activity{
			{Name: "Museum tour", Price: 40},
			{Name: "River cruise", Price: 60},
		},
	}
	// (40+60)*3 + 30*3 = 390
	got := computeTotalPrice(req, 0, 5)
	if got != 390 {
		t.Errorf("itinerary price = %v, want 390", got)
	}
}

func TestComputeTotalPriceFlightHotel(t *testing.T) {
	flight := &models.FlightDetails{Price: 200}
	hotel := &models.HotelDetails{PricePerNight: 80}

	roundTrip := createBookingRequest{
		BookingType:   models.BookingTypeFlightHotel,
		Persons:       2,
		InsuranceType: models.InsuranceNone,
		EndDate:       "2030-01-05",
		FlightDetails: flight,
		HotelDetails:  hotel,
	}
	// 200*2 + 80*4*2 = 1040
	if got := computeTotalPrice(roundTrip, 0, 4); got != 1040 {
		t.Errorf("round trip price = %v, want 1040", got)
	}

	oneWay := createBookingRequest{
		BookingType:   models.BookingTypeFlightHotel,
		Persons:       2,
		InsuranceType: models.InsuranceElite,
		FlightDetails: flight,
		HotelDetails:  hotel,
	}
	// no end date: hotel component dropped. 200*2 + 75*2 = 550
	if got := computeTotalPrice(oneWay, 0, 1); got != 550 {
		t.Errorf("one way price = %v, want 550", got)
	}
}

func TestBookingDays(t *testing.T) {
	start, _ := time.Parse(dateLayout, "2030-06-01")

	if got := bookingDays(start, nil); got != 1 {
		t.Errorf("one-way days = %d, want 1", got)
	}
	if got := bookingDays(start, datePtr(t, "2030-06-04")); got != 3 {
		t.Errorf("3-night days = %d, want 3", got)
	}
	if got := bookingDays(start, datePtr(t, "2030-06-01")); got != 1 {
		t.Errorf("same-day days = %d, want 1", got)
	}
}

func TestValidateBookingDates(t *testing.T) {
	now, _ := time.Parse(dateLayout, "2030-06-10")

	tests := []struct {
		name        string
		start, end  string
		endRequired bool
		wantErr     bool
	}{
		{"valid range", "2030-06-11", "2030-06-14", true, false},
		{"start today", "2030-06-10", "2030-06-12", true, false},
		{"start in past", "2030-06-09", "2030-06-14", true, true},
		{"end before start", "2030-06-14", "2030-06-11", true, true},
		{"missing required end", "2030-06-11", "", true, true},
		{"one-way no end", "2030-06-11", "", false, false},
		{"bad start format", "11-06-2030", "2030-06-14", true, true},
		{"bad end format", "2030-06-11", "garbage", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, msg := validateBookingDates(tt.start, tt.end, tt.endRequired, now)
			if (msg != "") != tt.wantErr {
				t.Errorf("validateBookingDates(%q, %q) msg = %q, wantErr %v", tt.start, tt.end, msg, tt.wantErr)
			}
		})
	}
}

func TestRepriceBookingMissingPackageRef(t *testing.T) {
	booking := models.Booking{BookingType: models.BookingTypePackage, Persons: 2}
	if err := repriceBooking(nil, &booking); err == nil {
		t.Error("expected error for package booking without a package reference")
	}
}
