package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
)

// Valid reports whether s is one of the three accepted booking states.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected:
		return true
	}
	return false
}

// Booking links one customer and one painter. Both references are fixed at
// creation; only the referenced painter may change the status afterwards.
type Booking struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	PainterID    uuid.UUID
	Date         string
	Time         string
	Status       BookingStatus
	ContactName  string
	ContactEmail string
	Message      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PainterSummary is the painter subset attached to a customer's booking list.
type PainterSummary struct {
	ID           uuid.UUID
	Name         string
	City         string
	ProfileImage string
}

// CustomerSummary is the customer subset attached to a painter's booking list.
type CustomerSummary struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type CustomerBooking struct {
	Booking
	Painter PainterSummary
}

type PainterBooking struct {
	Booking
	Customer CustomerSummary
}

// AdminBooking carries both principal summaries for the admin listing.
type AdminBooking struct {
	Booking
	Customer CustomerSummary
	Painter  PainterSummary
}

type Stats struct {
	Customers int
	Painters  int
	Bookings  int
}
