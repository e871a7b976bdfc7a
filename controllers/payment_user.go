package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
	"github.com/vamshikittu22/Wanderlusttrails-sub001/utils"
)

// CreatePayment records a settlement for a booking. Submission is treated as
// settlement: the row is inserted with status completed and the booking is
// confirmed in the same transaction.
func CreatePayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			BookingID     uint                 `json:"booking_id"`
			Amount        float64              `json:"amount"`
			Method        models.PaymentMethod `json:"method"`
			TransactionID string               `json:"transaction_id"`
			PaymentDate   string               `json:"payment_date"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment data"})
			return
		}

		userID := c.GetUint(ctxUserID)

		if req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "amount must be positive"})
			return
		}
		if !models.ValidPaymentMethod(req.Method) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown payment method"})
			return
		}

		paymentDate := time.Now()
		if req.PaymentDate != "" {
			parsed, err := time.Parse(dateLayout, req.PaymentDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment_date, expected YYYY-MM-DD"})
				return
			}
			paymentDate = parsed
		}

		var booking models.Booking
		if err := db.First(&booking, req.BookingID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}
		if booking.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Booking does not belong to you"})
			return
		}

		if req.TransactionID == "" {
			req.TransactionID = utils.NewTransactionRef()
		}

		// Pre-check for a friendly message; the unique index is the backstop
		// against concurrent submissions.
		var existing models.Payment
		if err := db.Where("transaction_id = ?", req.TransactionID).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Duplicate transaction_id"})
			return
		}

		payment := models.Payment{
			BookingID:     booking.ID,
			UserID:        userID,
			Amount:        req.Amount,
			Method:        req.Method,
			Status:        models.PaymentCompleted,
			TransactionID: req.TransactionID,
			PaymentDate:   paymentDate,
		}

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		if err := tx.Create(&payment).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Duplicate transaction_id"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record payment"})
			return
		}
		if err := tx.Model(&booking).Update("status", models.BookingConfirmed).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to confirm booking"})
			return
		}
		tx.Commit()

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Payment recorded",
			"data": gin.H{
				"payment_id":     payment.ID,
				"transaction_id": payment.TransactionID,
				"booking_status": models.BookingConfirmed,
			},
		})
	}
}

// UpdatePaymentStatus moves a payment between pending/completed/failed.
// Setting the status it already has is a successful no-op.
func UpdatePaymentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactionID := c.Param("transactionId")

		var body struct {
			Status models.PaymentStatus `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
			return
		}
		if !models.ValidPaymentStatus(body.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown payment status"})
			return
		}

		var payment models.Payment
		if err := db.Where("transaction_id = ?", transactionID).First(&payment).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Payment not found"})
			return
		}

		userID := c.GetUint(ctxUserID)
		role, _ := c.Get(ctxUserRole)
		if payment.UserID != userID && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not your payment"})
			return
		}

		if payment.Status == body.Status {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status unchanged"})
			return
		}

		if err := db.Model(&payment).Update("status", body.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update payment"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment status updated"})
	}
}

// GetBookingPayments lists payments for one booking, newest first.
func GetBookingPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.GetUint(ctxUserID)
		role, _ := c.Get(ctxUserRole)

		var booking models.Booking
		if err := db.First(&booking, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
			return
		}
		if booking.UserID != userID && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not your booking"})
			return
		}

		var payments []models.Payment
		if err := db.Where("booking_id = ?", booking.ID).Order("created_at desc").Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch payments"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK", "data": payments})
	}
}
