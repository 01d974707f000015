package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrRecordNotFound = errors.New("Record not found")
var ErrInvalidAmount = errors.New("Invalid amount")
var ErrUnauthorized = errors.New("Unauthorized")
var ErrInvalidAction = errors.New("Invalid action")
var ErrDuplicateIdentifier = errors.New("Duplicate identifier")
var ErrNotificationFailed = errors.New("Notification failed")

// InsufficientFundsError carries the current balance so the UI layer
// can display it alongside the rejection.
type InsufficientFundsError struct {
	Balance decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: current balance is %s", e.Balance.StringFixed(2))
}
