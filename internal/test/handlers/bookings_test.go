package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"painter-booking-backend/internal/database"
	"painter-booking-backend/internal/handlers"
	"painter-booking-backend/internal/middleware"
	"painter-booking-backend/internal/models"
)

type fakeBookingStore struct {
	bookings map[uuid.UUID]*models.Booking
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[uuid.UUID]*models.Booking)}
}

func (f *fakeBookingStore) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	b := *booking
	b.ID = uuid.New()
	b.Status = models.BookingPending
	f.bookings[b.ID] = &b
	cp := b
	return &cp, nil
}

func (f *fakeBookingStore) GetBooking(id uuid.UUID) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingStore) UpdateBookingStatus(id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	b.Status = status
	cp := *b
	return &cp, nil
}

func (f *fakeBookingStore) ListCustomerBookings(customerID uuid.UUID) ([]models.CustomerBooking, error) {
	var out []models.CustomerBooking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, models.CustomerBooking{Booking: *b})
		}
	}
	return out, nil
}

func (f *fakeBookingStore) ListPainterBookings(painterID uuid.UUID) ([]models.PainterBooking, error) {
	var out []models.PainterBooking
	for _, b := range f.bookings {
		if b.PainterID == painterID {
			out = append(out, models.PainterBooking{Booking: *b})
		}
	}
	return out, nil
}

type fakePainterFinder struct {
	painters map[uuid.UUID]*models.Painter
}

func (f *fakePainterFinder) GetPainterByID(id uuid.UUID) (*models.Painter, error) {
	p, ok := f.painters[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func asCustomer(customer *models.Customer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CustomerKey, customer)
		c.Next()
	}
}

func asPainter(painter *models.Painter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.PainterKey, painter)
		c.Next()
	}
}

func bookingRouter(h *handlers.BookingsHandler, customer *models.Customer, painter *models.Painter) *gin.Engine {
	router := gin.New()
	if customer != nil {
		grp := router.Group("", asCustomer(customer))
		grp.POST("/bookings", h.Create)
		grp.GET("/bookings/my", h.CustomerBookings)
	}
	if painter != nil {
		grp := router.Group("", asPainter(painter))
		grp.PUT("/bookings/:booking_id/status", h.UpdateStatus)
		grp.GET("/painter/bookings", h.PainterBookings)
	}
	router.POST("/painters/:id/book", h.CreatePublic)
	return router
}

func postJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeBookingStore()
	painter := &models.Painter{ID: uuid.New(), Name: "Bob"}
	customer := &models.Customer{ID: uuid.New(), Name: "Anna"}
	h := handlers.NewBookingsHandler(store, &fakePainterFinder{painters: map[uuid.UUID]*models.Painter{painter.ID: painter}})
	router := bookingRouter(h, customer, nil)

	w := postJSON(router, "POST", "/bookings", models.CreateBookingRequest{
		PainterID: painter.ID.String(),
		Date:      "2026-09-15",
		Time:      "10:00",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, customer.ID.String(), resp.CustomerID)
	assert.Equal(t, painter.ID.String(), resp.PainterID)
}

func TestCreateBooking_UnknownPainter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeBookingStore()
	customer := &models.Customer{ID: uuid.New()}
	h := handlers.NewBookingsHandler(store, &fakePainterFinder{painters: map[uuid.UUID]*models.Painter{}})
	router := bookingRouter(h, customer, nil)

	w := postJSON(router, "POST", "/bookings", models.CreateBookingRequest{
		PainterID: uuid.New().String(),
		Date:      "2026-09-15",
		Time:      "10:00",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, store.bookings)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeBookingStore()
	customer := &models.Customer{ID: uuid.New()}
	h := handlers.NewBookingsHandler(store, &fakePainterFinder{})
	router := bookingRouter(h, customer, nil)

	w := postJSON(router, "POST", "/bookings", models.CreateBookingRequest{Date: "2026-09-15"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePublicBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeBookingStore()
	painter := &models.Painter{ID: uuid.New()}
	h := handlers.NewBookingsHandler(store, &fakePainterFinder{painters: map[uuid.UUID]*models.Painter{painter.ID: painter}})
	router := bookingRouter(h, nil, nil)

	customerID := uuid.New()
	w := postJSON(router, "POST", "/painters/"+painter.ID.String()+"/book", models.PublicBookingRequest{
		CustomerID:    customerID.String(),
		CustomerName:  "Anna",
		CustomerEmail: "anna@example.com",
		Date:          "2026-09-20",
		Time:          "14:00",
		Message:       "Two bedrooms",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, customerID.String(), resp.CustomerID)
	assert.Equal(t, "Anna", resp.ContactName)
}

func TestUpdateBookingStatus_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeBookingStore()
	painter := &models.Painter{ID: uuid.New()}
	booking, err := store.CreateBooking(&models.Booking{CustomerID: uuid.New(), PainterID: painter.ID, Date: "2026-09-15", Time: "10:00"})
	require.NoError(t, err)

	h := handlers.NewBookingsHandler(store, &fakePainterFinder{})
	router := bookingRouter(h, nil, painter)

	w := postJSON(router, "PUT", "/bookings/"+booking.ID.String()+"/status", models.UpdateBookingStatusRequest{Status: "approved"})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, models.BookingApproved, store.bookings[booking.ID].Status)
}

func TestUpdateBookingStatus_OtherPainterForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeBookingStore()
	owner := &models.Painter{ID: uuid.New()}
	other := &models.Painter{ID: uuid.New()}
	booking, err := store.CreateBooking(&models.Booking{CustomerID: uuid.New(), PainterID: owner.ID, Date: "2026-09-15", Time: "10:00"})
	require.NoError(t, err)

	h := handlers.NewBookingsHandler(store, &fakePainterFinder{})
	router := bookingRouter(h, nil, other)

	w := postJSON(router, "PUT", "/bookings/"+booking.ID.String()+"/status", models.UpdateBookingStatusRequest{Status: "approved"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	// the stored booking must be untouched
	assert.Equal(t, models.BookingPending, store.bookings[booking.ID].Status)
}

func TestUpdateBookingStatus_UnknownBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeBookingStore()
	painter := &models.Painter{ID: uuid.New()}
	h := handlers.NewBookingsHandler(store, &fakePainterFinder{})
	router := bookingRouter(h, nil, painter)

	w := postJSON(router, "PUT", "/bookings/"+uuid.New().String()+"/status", models.UpdateBookingStatusRequest{Status: "approved"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateBookingStatus_InvalidStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeBookingStore()
	painter := &models.Painter{ID: uuid.New()}
	booking, err := store.CreateBooking(&models.Booking{CustomerID: uuid.New(), PainterID: painter.ID, Date: "2026-09-15", Time: "10:00"})
	require.NoError(t, err)

	h := handlers.NewBookingsHandler(store, &fakePainterFinder{})
	router := bookingRouter(h, nil, painter)

	w := postJSON(router, "PUT", "/bookings/"+booking.ID.String()+"/status", models.UpdateBookingStatusRequest{Status: "cancelled"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.BookingPending, store.bookings[booking.ID].Status)
}

func TestCustomerBookings_ScopedToCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeBookingStore()
	customer := &models.Customer{ID: uuid.New()}
	painterID := uuid.New()

	_, err := store.CreateBooking(&models.Booking{CustomerID: customer.ID, PainterID: painterID, Date: "2026-09-15", Time: "10:00"})
	require.NoError(t, err)
	_, err = store.CreateBooking(&models.Booking{CustomerID: uuid.New(), PainterID: painterID, Date: "2026-09-16", Time: "11:00"})
	require.NoError(t, err)

	h := handlers.NewBookingsHandler(store, &fakePainterFinder{})
	router := bookingRouter(h, customer, nil)

	req, _ := http.NewRequest("GET", "/bookings/my", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.CustomerBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, customer.ID.String(), resp[0].CustomerID)
}

func TestPainterBookings_ScopedToPainter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeBookingStore()
	painter := &models.Painter{ID: uuid.New()}

	_, err := store.CreateBooking(&models.Booking{CustomerID: uuid.New(), PainterID: painter.ID, Date: "2026-09-15", Time: "10:00"})
	require.NoError(t, err)
	_, err = store.CreateBooking(&models.Booking{CustomerID: uuid.New(), PainterID: uuid.New(), Date: "2026-09-16", Time: "11:00"})
	require.NoError(t, err)

	h := handlers.NewBookingsHandler(store, &fakePainterFinder{})
	router := bookingRouter(h, nil, painter)

	req, _ := http.NewRequest("GET", "/painter/bookings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.PainterBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, painter.ID.String(), resp[0].PainterID)
}
