package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"painter-booking-backend/internal/auth"
	"painter-booking-backend/internal/config"
	"painter-booking-backend/internal/database"
	"painter-booking-backend/internal/handlers"
	"painter-booking-backend/internal/models"
)

type fakeAdminStore struct {
	admins    map[uuid.UUID]*models.Admin
	customers map[uuid.UUID]*models.Customer
	painters  map[uuid.UUID]*models.Painter
	bookings  map[uuid.UUID]*models.Booking
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{
		admins:    make(map[uuid.UUID]*models.Admin),
		customers: make(map[uuid.UUID]*models.Customer),
		painters:  make(map[uuid.UUID]*models.Painter),
		bookings:  make(map[uuid.UUID]*models.Booking),
	}
}

func (f *fakeAdminStore) CreateAdmin(admin *models.Admin) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Email == admin.Email {
			return nil, database.ErrDuplicateEmail
		}
	}
	a := *admin
	a.ID = uuid.New()
	f.admins[a.ID] = &a
	cp := a
	return &cp, nil
}

func (f *fakeAdminStore) GetAdminByEmail(email string) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeAdminStore) Stats() (models.Stats, error) {
	return models.Stats{
		Customers: len(f.customers),
		Painters:  len(f.painters),
		Bookings:  len(f.bookings),
	}, nil
}

func (f *fakeAdminStore) ListCustomers() ([]models.Customer, error) {
	out := make([]models.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeAdminStore) DeleteCustomer(id uuid.UUID) error {
	if _, ok := f.customers[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.customers, id)
	return nil
}

func (f *fakeAdminStore) ListPainters(filter models.PainterFilter) ([]models.Painter, error) {
	out := make([]models.Painter, 0, len(f.painters))
	for _, p := range f.painters {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeAdminStore) UpdatePainterStatus(id uuid.UUID, status string) (*models.Painter, error) {
	p, ok := f.painters[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	p.Status = status
	cp := *p
	return &cp, nil
}

func (f *fakeAdminStore) DeletePainter(id uuid.UUID) error {
	if _, ok := f.painters[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.painters, id)
	return nil
}

func (f *fakeAdminStore) ListAllBookings() ([]models.AdminBooking, error) {
	out := make([]models.AdminBooking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, models.AdminBooking{Booking: *b})
	}
	return out, nil
}

func (f *fakeAdminStore) DeleteBooking(id uuid.UUID) error {
	if _, ok := f.bookings[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func newAdminHandler(store handlers.AdminStore) *handlers.AdminHandler {
	return handlers.NewAdminHandler(store, &config.Config{JWTSecret: testSecret})
}

func TestAdminSignup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeAdminStore()
	h := newAdminHandler(store)
	router := gin.New()
	router.POST("/admin/signup", h.Signup)

	w := postJSON(router, "POST", "/admin/signup", models.AdminSignupRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := auth.ParseToken(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	store := newFakeAdminStore()
	_, err = store.CreateAdmin(&models.Admin{Email: "admin@example.com", Password: string(hashed)})
	require.NoError(t, err)

	h := newAdminHandler(store)
	router := gin.New()
	router.POST("/admin/login", h.Login)

	w := postJSON(router, "POST", "/admin/login", models.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeAdminStore()
	store.customers[uuid.New()] = &models.Customer{}
	store.customers[uuid.New()] = &models.Customer{}
	store.painters[uuid.New()] = &models.Painter{}
	store.bookings[uuid.New()] = &models.Booking{}

	h := newAdminHandler(store)
	router := gin.New()
	router.GET("/admin/stats", h.Stats)

	req, _ := http.NewRequest("GET", "/admin/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Customers)
	assert.Equal(t, 1, resp.Painters)
	assert.Equal(t, 1, resp.Bookings)
}

func TestAdminUpdatePainterStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeAdminStore()
	id := uuid.New()
	store.painters[id] = &models.Painter{ID: id, Name: "Bob", Status: "active"}

	h := newAdminHandler(store)
	router := gin.New()
	router.PUT("/admin/painters/:id/status", h.UpdatePainterStatus)

	w := postJSON(router, "PUT", "/admin/painters/"+id.String()+"/status", models.UpdatePainterStatusRequest{Status: "suspended"})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "suspended", store.painters[id].Status)
}

func TestAdminDeleteCustomer_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := newAdminHandler(newFakeAdminStore())
	router := gin.New()
	router.DELETE("/admin/customers/:id", h.DeleteCustomer)

	req, _ := http.NewRequest("DELETE", "/admin/customers/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminCancelBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakeAdminStore()
	id := uuid.New()
	store.bookings[id] = &models.Booking{ID: id}

	h := newAdminHandler(store)
	router := gin.New()
	router.DELETE("/admin/bookings/:id", h.CancelBooking)

	req, _ := http.NewRequest("DELETE", "/admin/bookings/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.bookings)
}
