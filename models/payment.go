package models

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
	MethodPaypal       PaymentMethod = "paypal"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodPaypal, MethodBankTransfer:
		return true
	}
	return false
}

type Payment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"index;not null" json:"booking_id"`
	UserID    uint `gorm:"index;not null" json:"user_id"`

	Amount        float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method        PaymentMethod `gorm:"type:varchar(30);not null" json:"method"`
	Status        PaymentStatus `gorm:"type:varchar(20);default:'completed'" json:"status"`
	TransactionID string        `gorm:"size:100;uniqueIndex;not null" json:"transaction_id"`
	PaymentDate   time.Time     `json:"payment_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
