package controllers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
)

func seedBooking(t *testing.T, db *gorm.DB, userID uint, status models.BookingStatus) models.Booking {
	t.Helper()

	start := time.Now().AddDate(0, 0, 5)
	end := start.AddDate(0, 0, 2)
	booking := models.Booking{
		UserID:      userID,
		BookingType: models.BookingTypeItinerary,
		Status:      status,
		StartDate:   start,
		EndDate:     &end,
		Persons:     2,
		TotalPrice:  500,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return booking
}

func TestCreatePaymentConfirmsBooking(t *testing.T) {
	db, r := setupTest(t)
	user, token := createUser(t, db, "payer@example.com", models.RoleUser)
	booking := seedBooking(t, db, user.ID, models.BookingPending)

	w := doJSON(t, r, http.MethodPost, "/api/user/payments", token, map[string]interface{}{
		"booking_id":     booking.ID,
		"amount":         500,
		"method":         "credit_card",
		"transaction_id": "TX-1001",
	})
	mustStatus(t, w, http.StatusCreated)

	var payment models.Payment
	if err := db.Where("transaction_id = ?", "TX-1001").First(&payment).Error; err != nil {
		t.Fatalf("payment not persisted: %v", err)
	}
	if payment.Status != models.PaymentCompleted {
		t.Errorf("payment status = %s, want completed", payment.Status)
	}
	if payment.UserID != user.ID {
		t.Errorf("payment user = %d, want %d", payment.UserID, user.ID)
	}

	var got models.Booking
	db.First(&got, booking.ID)
	if got.Status != models.BookingConfirmed {
		t.Errorf("booking status = %s, want confirmed after payment", got.Status)
	}
}

func TestCreatePaymentDuplicateTransaction(t *testing.T) {
	db, r := setupTest(t)
	user, token := createUser(t, db, "dup@example.com", models.RoleUser)
	first := seedBooking(t, db, user.ID, models.BookingPending)
	second := seedBooking(t, db, user.ID, models.BookingPending)

	w := doJSON(t, r, http.MethodPost, "/api/user/payments", token, map[string]interface{}{
		"booking_id":     first.ID,
		"amount":         500,
		"method":         "paypal",
		"transaction_id": "TX-SAME",
	})
	mustStatus(t, w, http.StatusCreated)

	// Same transaction id against a different, otherwise valid booking.
	w = doJSON(t, r, http.MethodPost, "/api/user/payments", token, map[string]interface{}{
		"booking_id":     second.ID,
		"amount":         500,
		"method":         "paypal",
		"transaction_id": "TX-SAME",
	})
	mustStatus(t, w, http.StatusConflict)

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	if count != 1 {
		t.Errorf("payments persisted = %d, want 1", count)
	}
}

func TestCreatePaymentOwnership(t *testing.T) {
	db, r := setupTest(t)
	owner, _ := createUser(t, db, "realowner@example.com", models.RoleUser)
	_, intruderToken := createUser(t, db, "intruder@example.com", models.RoleUser)
	booking := seedBooking(t, db, owner.ID, models.BookingPending)

	w := doJSON(t, r, http.MethodPost, "/api/user/payments", intruderToken, map[string]interface{}{
		"booking_id":     booking.ID,
		"amount":         500,
		"method":         "credit_card",
		"transaction_id": "TX-STEAL",
	})
	mustStatus(t, w, http.StatusForbidden)

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	if count != 0 {
		t.Errorf("forbidden payment persisted")
	}
}

func TestCreatePaymentValidation(t *testing.T) {
	db, r := setupTest(t)
	user, token := createUser(t, db, "val@example.com", models.RoleUser)
	booking := seedBooking(t, db, user.ID, models.BookingPending)

	w := doJSON(t, r, http.MethodPost, "/api/user/payments", token, map[string]interface{}{
		"booking_id": booking.ID,
		"amount":     0,
		"method":     "credit_card",
	})
	mustStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, r, http.MethodPost, "/api/user/payments", token, map[string]interface{}{
		"booking_id": booking.ID,
		"amount":     500,
		"method":     "cash",
	})
	mustStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, r, http.MethodPost, "/api/user/payments", token, map[string]interface{}{
		"booking_id": 9999,
		"amount":     500,
		"method":     "credit_card",
	})
	mustStatus(t, w, http.StatusNotFound)
}

func TestCreatePaymentGeneratesTransactionRef(t *testing.T) {
	db, r := setupTest(t)
	user, token := createUser(t, db, "noref@example.com", models.RoleUser)
	booking := seedBooking(t, db, user.ID, models.BookingPending)

	w := doJSON(t, r, http.MethodPost, "/api/user/payments", token, map[string]interface{}{
		"booking_id": booking.ID,
		"amount":     500,
		"method":     "bank_transfer",
	})
	mustStatus(t, w, http.StatusCreated)

	var payment models.Payment
	if err := db.First(&payment).Error; err != nil {
		t.Fatalf("payment not persisted: %v", err)
	}
	if payment.TransactionID == "" {
		t.Error("blank transaction_id was not replaced with a generated reference")
	}
}

func TestUpdatePaymentStatusIdempotent(t *testing.T) {
	db, r := setupTest(t)
	user, token := createUser(t, db, "idem@example.com", models.RoleUser)
	booking := seedBooking(t, db, user.ID, models.BookingConfirmed)

	payment := models.Payment{
		BookingID:     booking.ID,
		UserID:        user.ID,
		Amount:        500,
		Method:        models.MethodCreditCard,
		Status:        models.PaymentCompleted,
		TransactionID: "TX-IDEM",
		PaymentDate:   time.Now(),
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("create payment: %v", err)
	}

	firstUpdatedAt := payment.UpdatedAt

	// Setting the current status twice succeeds both times without mutating.
	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPut, "/api/user/payments/TX-IDEM/status", token,
			map[string]string{"status": "completed"})
		mustStatus(t, w, http.StatusOK)
	}

	var got models.Payment
	db.Where("transaction_id = ?", "TX-IDEM").First(&got)
	if !got.UpdatedAt.Equal(firstUpdatedAt) {
		t.Errorf("no-op status update mutated the row")
	}

	w := doJSON(t, r, http.MethodPut, "/api/user/payments/TX-IDEM/status", token,
		map[string]string{"status": "refunded"})
	mustStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, r, http.MethodPut, "/api/user/payments/TX-IDEM/status", token,
		map[string]string{"status": "failed"})
	mustStatus(t, w, http.StatusOK)

	db.Where("transaction_id = ?", "TX-IDEM").First(&got)
	if got.Status != models.PaymentFailed {
		t.Errorf("status = %s, want failed", got.Status)
	}
}

func TestDuplicatePaymentCreateIsConflictNotFailure(t *testing.T) {
	db, _ := setupTest(t)
	user, _ := createUser(t, db, "race@example.com", models.RoleUser)
	booking := seedBooking(t, db, user.ID, models.BookingPending)

	mk := func() models.Payment {
		return models.Payment{
			BookingID: booking.ID, UserID: user.ID, Amount: 500,
			Method: models.MethodPaypal, Status: models.PaymentCompleted,
			TransactionID: "TX-RACE", PaymentDate: time.Now(),
		}
	}
	first := mk()
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create payment: %v", err)
	}

	// The unique index violation must surface as the sentinel the handler
	// maps to 409; anything else gets reported as a persistence failure.
	second := mk()
	if err := db.Create(&second).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate create err = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestUpdatePaymentStatusOwnership(t *testing.T) {
	db, r := setupTest(t)
	owner, _ := createUser(t, db, "statusowner@example.com", models.RoleUser)
	_, intruderToken := createUser(t, db, "statusintruder@example.com", models.RoleUser)
	_, adminToken := createUser(t, db, "statusadmin@example.com", models.RoleAdmin)
	booking := seedBooking(t, db, owner.ID, models.BookingConfirmed)

	payment := models.Payment{
		BookingID:     booking.ID,
		UserID:        owner.ID,
		Amount:        500,
		Method:        models.MethodCreditCard,
		Status:        models.PaymentCompleted,
		TransactionID: "TX-FOREIGN",
		PaymentDate:   time.Now(),
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("create payment: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, "/api/user/payments/TX-FOREIGN/status", intruderToken,
		map[string]string{"status": "failed"})
	mustStatus(t, w, http.StatusForbidden)

	var got models.Payment
	db.Where("transaction_id = ?", "TX-FOREIGN").First(&got)
	if got.Status != models.PaymentCompleted {
		t.Errorf("status = %s after forbidden update, want completed", got.Status)
	}

	// Admins may correct any payment.
	w = doJSON(t, r, http.MethodPut, "/api/user/payments/TX-FOREIGN/status", adminToken,
		map[string]string{"status": "failed"})
	mustStatus(t, w, http.StatusOK)

	var corrected models.Payment
	db.Where("transaction_id = ?", "TX-FOREIGN").First(&corrected)
	if corrected.Status != models.PaymentFailed {
		t.Errorf("status = %s after admin update, want failed", corrected.Status)
	}
}

func TestGetBookingPaymentsNewestFirst(t *testing.T) {
	db, r := setupTest(t)
	user, token := createUser(t, db, "lister@example.com", models.RoleUser)
	booking := seedBooking(t, db, user.ID, models.BookingConfirmed)

	old := models.Payment{
		BookingID: booking.ID, UserID: user.ID, Amount: 100,
		Method: models.MethodPaypal, Status: models.PaymentFailed,
		TransactionID: "TX-OLD", PaymentDate: time.Now().Add(-48 * time.Hour),
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}
	recent := models.Payment{
		BookingID: booking.ID, UserID: user.ID, Amount: 100,
		Method: models.MethodPaypal, Status: models.PaymentCompleted,
		TransactionID: "TX-NEW", PaymentDate: time.Now(),
	}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if err := db.Create(&recent).Error; err != nil {
		t.Fatalf("create payment: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/user/bookings/"+itoa(booking.ID)+"/payments", token, nil)
	mustStatus(t, w, http.StatusOK)

	env := decodeEnvelope(t, w)
	data, ok := env["data"].([]interface{})
	if !ok || len(data) != 2 {
		t.Fatalf("data = %v, want 2 payments", env["data"])
	}
	first := data[0].(map[string]interface{})
	if first["transaction_id"] != "TX-NEW" {
		t.Errorf("first payment = %v, want newest", first["transaction_id"])
	}
}
