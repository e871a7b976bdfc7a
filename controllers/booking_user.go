package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
)

const dateLayout = "2006-01-02"

type createBookingRequest struct {
	BookingType   models.BookingType   `json:"booking_type"`
	PackageID     *uint                `json:"package_id"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	Persons       int                  `json:"persons"`
	InsuranceType models.InsuranceTier `json:"insurance_type"`

	FlightDetails *models.FlightDetails `json:"flight_details"`
	HotelDetails  *models.HotelDetails  `json:"hotel_details"`
	Activities    []models.Activity     `json:"activities"`
}

// bookingDays mirrors Booking.Days for dates that are not persisted yet.
func bookingDays(start time.Time, end *time.Time) int {
	if end == nil {
		return 1
	}
	d := int(end.Sub(start).Hours() / 24)
	if d < 1 {
		d = 1
	}
	return d
}

// computeTotalPrice is the single pricing rule for every booking type:
// day-rate and night components scale with days and persons, activity and
// flight prices are per person, the insurance fee is a flat per-person add-on.
func computeTotalPrice(req createBookingRequest, packageDayRate float64, days int) float64 {
	persons := float64(req.Persons)
	var total float64

	switch req.BookingType {
	case models.BookingTypePackage:
		total = packageDayRate * float64(days) * persons
	case models.BookingTypeItinerary:
		var activities float64
		for _, a := range req.Activities {
			activities += a.Price
		}
		total = activities * persons
	case models.BookingTypeFlightHotel:
		if req.FlightDetails != nil {
			total += req.FlightDetails.Price * persons
		}
		if req.HotelDetails != nil && req.EndDate != "" {
			total += req.HotelDetails.PricePerNight * float64(days) * persons
		}
	}

	return total + models.InsuranceFee(req.InsuranceType)*persons
}

// validateBookingDates parses and checks the date pair. endRequired is true
// for package and itinerary bookings; flight_hotel may be one-way.
func validateBookingDates(startStr, endStr string, endRequired bool, now time.Time) (time.Time, *time.Time, string) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, nil, "Invalid start_date, expected YYYY-MM-DD"
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return time.Time{}, nil, "start_date cannot be in the past"
	}

	if endStr == "" {
		if endRequired {
			return time.Time{}, nil, "end_date is required for this booking type"
		}
		return start, nil, ""
	}

	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, nil, "Invalid end_date, expected YYYY-MM-DD"
	}
	if end.Before(start) {
		return time.Time{}, nil, "end_date must be on or after start_date"
	}
	return start, &end, ""
}

func CreateBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid booking data"})
			return
		}

		userID := c.GetUint(ctxUserID)

		if !models.ValidBookingType(req.BookingType) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown booking_type"})
			return
		}
		if req.Persons < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "persons must be at least 1"})
			return
		}
		if req.InsuranceType == "" {
			req.InsuranceType = models.InsuranceNone
		}
		if !models.ValidInsuranceTier(req.InsuranceType) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown insurance_type"})
			return
		}

		endRequired := req.BookingType != models.BookingTypeFlightHotel
		start, end, msg := validateBookingDates(req.StartDate, req.EndDate, endRequired, time.Now())
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}

		booking := models.Booking{
			UserID:        userID,
			BookingType:   req.BookingType,
			Status:        models.BookingPending,
			StartDate:     start,
			EndDate:       end,
			Persons:       req.Persons,
			InsuranceType: req.InsuranceType,
		}

		var dayRate float64
		switch req.BookingType {
		case models.BookingTypePackage:
			if req.PackageID == nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "package_id is required for package bookings"})
				return
			}
			var pkg models.Package
			if err := db.First(&pkg, *req.PackageID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Package not found"})
				return
			}
			dayRate = pkg.Price
			booking.PackageID = req.PackageID
			booking.PackageName = pkg.Name

		case models.BookingTypeFlightHotel:
			if req.FlightDetails == nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "flight_details is required for flight_hotel bookings"})
				return
			}
			fd, _ := json.Marshal(req.FlightDetails)
			booking.FlightDetails = datatypes.JSON(fd)
			if req.HotelDetails != nil {
				hd, _ := json.Marshal(req.HotelDetails)
				booking.HotelDetails = datatypes.JSON(hd)
			}

		case models.BookingTypeItinerary:
			if len(req.Activities) == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "activities are required for itinerary bookings"})
				return
			}
			it, _ := json.Marshal(req.Activities)
			booking.ItineraryDetails = datatypes.JSON(it)
		}

		booking.TotalPrice = computeTotalPrice(req, dayRate, bookingDays(start, end))

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		if err := tx.Create(&booking).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create booking"})
			return
		}
		tx.Commit()

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Booking created successfully",
			"data":    booking,
		})
	}
}

func GetUserBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(ctxUserID)

		var bookings []models.Booking
		if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch bookings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK", "data": bookings})
	}
}

func GetBookingDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.GetUint(ctxUserID)
		role, _ := c.Get(ctxUserRole)

		var booking models.Booking
		if err := db.Preload("Payments").First(&booking, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}

		if booking.UserID != userID && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not your booking"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK", "data": booking})
	}
}

// StageBookingChanges stores an edit on the booking without applying it;
// an admin confirms or rejects it later.
func StageBookingChanges(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.GetUint(ctxUserID)

		var req models.StagedChanges
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid change data"})
			return
		}

		var booking models.Booking
		if err := db.First(&booking, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}
		if booking.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not your booking"})
			return
		}

		if req.StartDate == "" && req.EndDate == "" && req.Persons == 0 && req.InsuranceType == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No changes supplied"})
			return
		}
		if req.Persons < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "persons must be at least 1"})
			return
		}
		if req.InsuranceType != "" && !models.ValidInsuranceTier(req.InsuranceType) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown insurance_type"})
			return
		}
		if req.StartDate != "" {
			endRequired := booking.BookingType != models.BookingTypeFlightHotel
			endStr := req.EndDate
			if endStr == "" && booking.EndDate != nil {
				endStr = booking.EndDate.Format(dateLayout)
			}
			if _, _, msg := validateBookingDates(req.StartDate, endStr, endRequired, time.Now()); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
				return
			}
		} else if req.EndDate != "" {
			// End-only change: check it against the booking's current start.
			end, err := time.Parse(dateLayout, req.EndDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid end_date, expected YYYY-MM-DD"})
				return
			}
			if end.Before(booking.StartDate) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "end_date must be on or after start_date"})
				return
			}
		}

		staged, _ := json.Marshal(req)
		if err := db.Model(&booking).Update("pending_changes", datatypes.JSON(staged)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to stage changes"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Changes staged for confirmation"})
	}
}

// CancelBooking lets the owner cancel their own booking.
func CancelBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.GetUint(ctxUserID)

		var booking models.Booking
		if err := db.First(&booking, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}
		if booking.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not your booking"})
			return
		}

		if err := db.Model(&booking).Update("status", models.BookingCanceled).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to cancel booking"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking canceled"})
	}
}
