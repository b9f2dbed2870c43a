package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"painter-booking-backend/internal/auth"
	"painter-booking-backend/internal/config"
	"painter-booking-backend/internal/database"
	"painter-booking-backend/internal/models"
	"painter-booking-backend/internal/presenter"
)

type AdminStore interface {
	CreateAdmin(admin *models.Admin) (*models.Admin, error)
	GetAdminByEmail(email string) (*models.Admin, error)
	Stats() (models.Stats, error)
	ListCustomers() ([]models.Customer, error)
	DeleteCustomer(id uuid.UUID) error
	ListPainters(filter models.PainterFilter) ([]models.Painter, error)
	UpdatePainterStatus(id uuid.UUID, status string) (*models.Painter, error)
	DeletePainter(id uuid.UUID) error
	ListAllBookings() ([]models.AdminBooking, error)
	DeleteBooking(id uuid.UUID) error
}

type AdminHandler struct {
	store AdminStore
	cfg   *config.Config
}

func NewAdminHandler(store AdminStore, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		store: store,
		cfg:   cfg,
	}
}

// Signup godoc
// @Summary     Register an admin account
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body models.AdminSignupRequest true "Credentials"
// @Success     201 {object} models.AuthResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /admin/signup [post]
func (h *AdminHandler) Signup(c *gin.Context) {
	var req models.AdminSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "email and password are required"})
		return
	}

	if _, err := h.store.GetAdminByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "admin already exists"})
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to check existing admin", Message: err.Error()})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to hash password", Message: err.Error()})
		return
	}

	admin, err := h.store.CreateAdmin(&models.Admin{
		Email:    req.Email,
		Password: string(hashed),
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "admin already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create admin", Message: err.Error()})
		return
	}

	token, err := auth.CreateToken(h.cfg.JWTSecret, admin.ID, models.RoleAdmin, auth.AdminTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to issue token", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		Message: "admin registered successfully",
		Token:   token,
		ID:      admin.ID.String(),
	})
}

// Login godoc
// @Summary     Admin login
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.AuthResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	admin, err := h.store.GetAdminByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
		return
	}

	token, err := auth.CreateToken(h.cfg.JWTSecret, admin.ID, models.RoleAdmin, auth.AdminTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to issue token", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Message: "login successful",
		Token:   token,
		ID:      admin.ID.String(),
	})
}

// Stats godoc
// @Summary     Dashboard counts
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.StatsResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.store.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch stats", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.StatsResponse{
		Customers: stats.Customers,
		Painters:  stats.Painters,
		Bookings:  stats.Bookings,
	})
}

// ListCustomers godoc
// @Summary     List all customers
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {array} models.CustomerResponse
// @Router      /admin/customers [get]
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	customers, err := h.store.ListCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list customers", Message: err.Error()})
		return
	}

	base := presenter.RequestBaseURL(c)
	out := make([]models.CustomerResponse, len(customers))
	for i := range customers {
		out[i] = presenter.Customer(base, &customers[i])
	}
	c.JSON(http.StatusOK, out)
}

// DeleteCustomer godoc
// @Summary     Delete a customer
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Customer ID (UUID)"
// @Success     200 {object} models.MessageResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/customers/{id} [delete]
func (h *AdminHandler) DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid customer id"})
		return
	}

	if err := h.store.DeleteCustomer(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete customer", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "customer deleted"})
}

// ListPainters godoc
// @Summary     List all painters
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {array} models.PainterResponse
// @Router      /admin/painters [get]
func (h *AdminHandler) ListPainters(c *gin.Context) {
	painters, err := h.store.ListPainters(models.PainterFilter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list painters", Message: err.Error()})
		return
	}

	base := presenter.RequestBaseURL(c)
	out := make([]models.PainterResponse, len(painters))
	for i := range painters {
		painters[i].Password = ""
		out[i] = presenter.Painter(base, &painters[i])
	}
	c.JSON(http.StatusOK, out)
}

// UpdatePainterStatus godoc
// @Summary     Update a painter's account status
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Painter ID (UUID)"
// @Param       request body models.UpdatePainterStatusRequest true "New status"
// @Success     200 {object} models.PainterResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/painters/{id}/status [put]
func (h *AdminHandler) UpdatePainterStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid painter id"})
		return
	}

	var req models.UpdatePainterStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if req.Status == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "status is required"})
		return
	}

	painter, err := h.store.UpdatePainterStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "painter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update painter", Message: err.Error()})
		return
	}

	painter.Password = ""
	c.JSON(http.StatusOK, presenter.Painter(presenter.RequestBaseURL(c), painter))
}

// DeletePainter godoc
// @Summary     Delete a painter
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Painter ID (UUID)"
// @Success     200 {object} models.MessageResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/painters/{id} [delete]
func (h *AdminHandler) DeletePainter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid painter id"})
		return
	}

	if err := h.store.DeletePainter(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "painter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete painter", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "painter deleted successfully"})
}

// ListBookings godoc
// @Summary     List all bookings
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {array} models.AdminBookingResponse
// @Router      /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.store.ListAllBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list bookings", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, presenter.AdminBookings(presenter.RequestBaseURL(c), bookings))
}

// CancelBooking godoc
// @Summary     Delete a booking
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Booking ID (UUID)"
// @Success     200 {object} models.MessageResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/bookings/{id} [delete]
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.store.DeleteBooking(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete booking", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "booking deleted"})
}
