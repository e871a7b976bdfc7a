package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
)

// Admin: list all bookings with optional status/type filter and user search
func GetAllBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookings []models.Booking

		search := c.Query("search")
		status := c.Query("status")
		bookingType := c.Query("type")

		query := db.Preload("User").Preload("Payments")

		if status != "" {
			query = query.Where("bookings.status = ?", status)
		}
		if bookingType != "" {
			query = query.Where("bookings.booking_type = ?", bookingType)
		}
		if search != "" {
			query = query.Joins("JOIN users ON users.id = bookings.user_id").
				Where("LOWER(users.first_name) LIKE LOWER(?) OR LOWER(users.last_name) LIKE LOWER(?) OR LOWER(users.email) LIKE LOWER(?)",
					"%"+search+"%", "%"+search+"%", "%"+search+"%")
		}

		if err := query.Order("bookings.created_at DESC").Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch bookings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK", "data": bookings})
	}
}

// Admin: update booking status. Any valid status may be set.
func UpdateBookingStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var body struct {
			Status models.BookingStatus `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
			return
		}
		if !models.ValidBookingStatus(body.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown booking status"})
			return
		}

		var booking models.Booking
		if err := db.First(&booking, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}

		booking.Status = body.Status
		if err := db.Save(&booking).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update booking"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking status updated successfully", "data": booking})
	}
}

// Admin: apply a user's staged changes and recompute the price.
func ConfirmBookingChanges(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var booking models.Booking
		if err := db.First(&booking, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}
		if len(booking.PendingChanges) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No staged changes on this booking"})
			return
		}

		var staged models.StagedChanges
		if err := json.Unmarshal(booking.PendingChanges, &staged); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Corrupt staged changes"})
			return
		}

		if staged.StartDate != "" {
			start, err := time.Parse(dateLayout, staged.StartDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Staged start_date is invalid"})
				return
			}
			booking.StartDate = start
		}
		if staged.EndDate != "" {
			end, err := time.Parse(dateLayout, staged.EndDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Staged end_date is invalid"})
				return
			}
			booking.EndDate = &end
		}
		// Re-check the merged pair; staging validates too, but the stored
		// changes may predate the booking's current dates.
		if booking.EndDate != nil && booking.EndDate.Before(booking.StartDate) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Staged end_date is before start_date"})
			return
		}
		if staged.Persons > 0 {
			booking.Persons = staged.Persons
		}
		if staged.InsuranceType != "" {
			booking.InsuranceType = staged.InsuranceType
		}

		if err := repriceBooking(db, &booking); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to recompute price"})
			return
		}

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		updates := map[string]interface{}{
			"start_date":      booking.StartDate,
			"end_date":        booking.EndDate,
			"persons":         booking.Persons,
			"insurance_type":  booking.InsuranceType,
			"total_price":     booking.TotalPrice,
			"pending_changes": nil,
		}
		if err := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).Updates(updates).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to apply changes"})
			return
		}
		tx.Commit()
		booking.PendingChanges = nil

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Changes applied", "data": booking})
	}
}

// repriceBooking recomputes total_price from the booking's current fields.
func repriceBooking(db *gorm.DB, booking *models.Booking) error {
	req := createBookingRequest{
		BookingType:   booking.BookingType,
		Persons:       booking.Persons,
		InsuranceType: booking.InsuranceType,
		StartDate:     booking.StartDate.Format(dateLayout),
	}
	if booking.EndDate != nil {
		req.EndDate = booking.EndDate.Format(dateLayout)
	}

	var dayRate float64
	switch booking.BookingType {
	case models.BookingTypePackage:
		if booking.PackageID == nil {
			return fmt.Errorf("booking %d has no package reference", booking.ID)
		}
		var pkg models.Package
		if err := db.First(&pkg, *booking.PackageID).Error; err != nil {
			return err
		}
		dayRate = pkg.Price
	case models.BookingTypeFlightHotel:
		if len(booking.FlightDetails) > 0 {
			var fd models.FlightDetails
			if err := json.Unmarshal(booking.FlightDetails, &fd); err != nil {
				return err
			}
			req.FlightDetails = &fd
		}
		if len(booking.HotelDetails) > 0 {
			var hd models.HotelDetails
			if err := json.Unmarshal(booking.HotelDetails, &hd); err != nil {
				return err
			}
			req.HotelDetails = &hd
		}
	case models.BookingTypeItinerary:
		if len(booking.ItineraryDetails) > 0 {
			if err := json.Unmarshal(booking.ItineraryDetails, &req.Activities); err != nil {
				return err
			}
		}
	}

	booking.TotalPrice = computeTotalPrice(req, dayRate, booking.Days())
	return nil
}

// Admin: delete booking
func DeleteBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := db.Delete(&models.Booking{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete booking"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully"})
	}
}

// Admin: export bookings in a date range as an Excel report.
func ExportBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := c.DefaultQuery("start", time.Now().AddDate(0, -1, 0).Format(dateLayout))
		end := c.DefaultQuery("end", time.Now().Format(dateLayout))

		var bookings []models.Booking
		if err := db.Preload("User").
			Where("created_at BETWEEN ? AND ?", start, end+" 23:59:59").
			Order("created_at").
			Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch bookings"})
			return
		}

		f := excelize.NewFile()
		sheet := "Bookings"
		f.NewSheet(sheet)

		headers := []string{
			"ID", "Customer", "Email", "Type", "Status", "StartDate", "EndDate",
			"Persons", "Insurance", "TotalPrice", "CreatedAt",
		}
		for i, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, header)
		}

		for i, b := range bookings {
			row := i + 2
			endDate := ""
			if b.EndDate != nil {
				endDate = b.EndDate.Format(dateLayout)
			}
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), b.ID)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), b.User.FirstName+" "+b.User.LastName)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), b.User.Email)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(b.BookingType))
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(b.Status))
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), b.StartDate.Format(dateLayout))
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), endDate)
			f.SetCellValue(sheet, fmt.Sprintf("H%d", row), b.Persons)
			f.SetCellValue(sheet, fmt.Sprintf("I%d", row), string(b.InsuranceType))
			f.SetCellValue(sheet, fmt.Sprintf("J%d", row), b.TotalPrice)
			f.SetCellValue(sheet, fmt.Sprintf("K%d", row), b.CreatedAt.Format(time.RFC3339))
		}

		c.Header("Content-Disposition", `attachment; filename="bookings.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to write report"})
		}
	}
}
