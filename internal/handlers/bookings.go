package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"painter-booking-backend/internal/database"
	"painter-booking-backend/internal/middleware"
	"painter-booking-backend/internal/models"
	"painter-booking-backend/internal/presenter"
)

type BookingStore interface {
	CreateBooking(booking *models.Booking) (*models.Booking, error)
	GetBooking(id uuid.UUID) (*models.Booking, error)
	UpdateBookingStatus(id uuid.UUID, status models.BookingStatus) (*models.Booking, error)
	ListCustomerBookings(customerID uuid.UUID) ([]models.CustomerBooking, error)
	ListPainterBookings(painterID uuid.UUID) ([]models.PainterBooking, error)
}

// PainterFinder is the existence check used before accepting a booking.
type PainterFinder interface {
	GetPainterByID(id uuid.UUID) (*models.Painter, error)
}

type BookingsHandler struct {
	bookings BookingStore
	painters PainterFinder
}

func NewBookingsHandler(bookings BookingStore, painters PainterFinder) *BookingsHandler {
	return &BookingsHandler{
		bookings: bookings,
		painters: painters,
	}
}

// Create godoc
// @Summary     Create a booking
// @Description Creates a pending booking from the authenticated customer to the given painter.
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateBookingRequest true "Booking fields"
// @Success     201 {object} models.BookingResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /bookings [post]
func (h *BookingsHandler) Create(c *gin.Context) {
	customer, ok := middleware.CustomerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "customer not found in context"})
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if req.PainterID == "" || req.Date == "" || req.Time == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "painter_id, date and time are required"})
		return
	}

	painterID, err := uuid.Parse(req.PainterID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid painter id"})
		return
	}

	if _, err := h.painters.GetPainterByID(painterID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "painter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to check painter", Message: err.Error()})
		return
	}

	booking, err := h.bookings.CreateBooking(&models.Booking{
		CustomerID: customer.ID,
		PainterID:  painterID,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create booking", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, presenter.Booking(booking))
}

// CreatePublic godoc
// @Summary     Create a booking without a session
// @Description Unauthenticated entry point carrying the customer reference and contact fields in the body.
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       id path string true "Painter ID (UUID)"
// @Param       request body models.PublicBookingRequest true "Booking fields"
// @Success     201 {object} models.BookingResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /painters/{id}/book [post]
func (h *BookingsHandler) CreatePublic(c *gin.Context) {
	painterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid painter id"})
		return
	}

	var req models.PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if req.CustomerID == "" || req.Date == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "customer_id and date are required"})
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid customer id"})
		return
	}

	if _, err := h.painters.GetPainterByID(painterID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "painter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to check painter", Message: err.Error()})
		return
	}

	booking, err := h.bookings.CreateBooking(&models.Booking{
		CustomerID:   customerID,
		PainterID:    painterID,
		Date:         req.Date,
		Time:         req.Time,
		ContactName:  req.CustomerName,
		ContactEmail: req.CustomerEmail,
		Message:      req.Message,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create booking", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, presenter.Booking(booking))
}

// CustomerBookings godoc
// @Summary     List own bookings as customer
// @Description Returns the customer's bookings, each with a painter summary.
// @Tags        bookings
// @Produce     json
// @Security    Bearer
// @Success     200 {array} models.CustomerBookingResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /bookings/my [get]
func (h *BookingsHandler) CustomerBookings(c *gin.Context) {
	customer, ok := middleware.CustomerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "customer not found in context"})
		return
	}

	bookings, err := h.bookings.ListCustomerBookings(customer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list bookings", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, presenter.CustomerBookings(presenter.RequestBaseURL(c), bookings))
}

// PainterBookings godoc
// @Summary     List own bookings as painter
// @Description Returns the painter's bookings, each with a customer summary.
// @Tags        bookings
// @Produce     json
// @Security    Bearer
// @Success     200 {array} models.PainterBookingResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /painter/bookings [get]
func (h *BookingsHandler) PainterBookings(c *gin.Context) {
	painter, ok := middleware.PainterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "painter not found in context"})
		return
	}

	bookings, err := h.bookings.ListPainterBookings(painter.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list bookings", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, presenter.PainterBookings(bookings))
}

// UpdateStatus godoc
// @Summary     Update a booking status
// @Description Only the painter referenced by the booking may change its status, and only to pending, approved or rejected.
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       booking_id path string true "Booking ID (UUID)"
// @Param       request body models.UpdateBookingStatusRequest true "New status"
// @Success     200 {object} models.BookingResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /bookings/{booking_id}/status [put]
func (h *BookingsHandler) UpdateStatus(c *gin.Context) {
	painter, ok := middleware.PainterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "painter not found in context"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	status := models.BookingStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status", Message: "status must be pending, approved or rejected"})
		return
	}

	booking, err := h.bookings.GetBooking(bookingID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch booking", Message: err.Error()})
		return
	}

	// Strict id equality against the stored painter reference
	if booking.PainterID != painter.ID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "not authorized"})
		return
	}

	updated, err := h.bookings.UpdateBookingStatus(bookingID, status)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update booking", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, presenter.Booking(updated))
}
