package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"painter-booking-backend/internal/models"
)

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, models.BookingPending.Valid())
	assert.True(t, models.BookingApproved.Valid())
	assert.True(t, models.BookingRejected.Valid())

	assert.False(t, models.BookingStatus("cancelled").Valid())
	assert.False(t, models.BookingStatus("").Valid())
	assert.False(t, models.BookingStatus("Approved").Valid())
}
