package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewTransactionRef generates a gateway-style transaction reference for
// payments submitted without one.
func NewTransactionRef() string {
	return fmt.Sprintf("PAY-%s", uuid.NewString())
}
