package domain

import "time"

// Customer is the profile a teller onboards. It is linked 1:1 to an
// Identity and owns every financial instrument below it.
type Customer struct {
	ID          string
	IdentityID  string
	Name        string
	Email       string
	DOB         time.Time
	Address     string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
