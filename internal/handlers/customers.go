package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"painter-booking-backend/internal/auth"
	"painter-booking-backend/internal/config"
	"painter-booking-backend/internal/database"
	"painter-booking-backend/internal/middleware"
	"painter-booking-backend/internal/models"
	"painter-booking-backend/internal/presenter"
	"painter-booking-backend/internal/services"
)

type CustomerStore interface {
	CreateCustomer(customer *models.Customer) (*models.Customer, error)
	GetCustomerByEmail(email string) (*models.Customer, error)
	GetCustomerByID(id uuid.UUID) (*models.Customer, error)
	UpdateCustomer(id uuid.UUID, upd models.CustomerUpdate) (*models.Customer, error)
}

type CustomersHandler struct {
	store  CustomerStore
	images *services.ImageService
	cfg    *config.Config
	logger *zap.Logger
}

func NewCustomersHandler(store CustomerStore, images *services.ImageService, cfg *config.Config, logger *zap.Logger) *CustomersHandler {
	return &CustomersHandler{
		store:  store,
		images: images,
		cfg:    cfg,
		logger: logger,
	}
}

// Register godoc
// @Summary     Register a customer account
// @Description Creates a customer, optionally with a profile image, and returns a session token.
// @Tags        customers
// @Accept      json
// @Accept      multipart/form-data
// @Produce     json
// @Param       request body models.RegisterCustomerRequest true "Registration fields"
// @Success     201 {object} models.AuthResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /customers/register [post]
func (h *CustomersHandler) Register(c *gin.Context) {
	var req models.RegisterCustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name, email and password are required"})
		return
	}

	if _, err := h.store.GetCustomerByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "customer already exists"})
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to check existing customer", Message: err.Error()})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to hash password", Message: err.Error()})
		return
	}

	customer, err := h.store.CreateCustomer(&models.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "customer already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create customer", Message: err.Error()})
		return
	}

	// Optional profile image; a failed upload does not undo registration
	if file, err := c.FormFile("profileImage"); err == nil && h.images != nil {
		url, err := h.images.UploadCustomerProfileImage(customer.ID, file)
		if err != nil {
			h.logger.Warn("profile image upload failed", zap.String("customer_id", customer.ID.String()), zap.Error(err))
		} else if updated, err := h.store.UpdateCustomer(customer.ID, models.CustomerUpdate{ProfileImage: url}); err == nil {
			customer = updated
		}
	}

	token, err := auth.CreateToken(h.cfg.JWTSecret, customer.ID, models.RoleCustomer, auth.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to issue token", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		Message: "customer registered successfully",
		Token:   token,
		ID:      customer.ID.String(),
	})
}

// Login godoc
// @Summary     Customer login
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.AuthResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /customers/login [post]
func (h *CustomersHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	customer, err := h.store.GetCustomerByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
		return
	}

	token, err := auth.CreateToken(h.cfg.JWTSecret, customer.ID, models.RoleCustomer, auth.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to issue token", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Message: "login successful",
		Token:   token,
		ID:      customer.ID.String(),
	})
}

// GetProfile godoc
// @Summary     Get own customer profile
// @Tags        customers
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.CustomerResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /customers/me [get]
func (h *CustomersHandler) GetProfile(c *gin.Context) {
	customer, ok := middleware.CustomerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "customer not found in context"})
		return
	}

	c.JSON(http.StatusOK, presenter.Customer(presenter.RequestBaseURL(c), customer))
}

// UpdateProfile godoc
// @Summary     Update own customer profile
// @Description Partial update; omitted fields keep their stored values.
// @Tags        customers
// @Accept      json
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       request body models.UpdateCustomerRequest true "Fields to update"
// @Success     200 {object} models.CustomerResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /customers/me [put]
func (h *CustomersHandler) UpdateProfile(c *gin.Context) {
	customer, ok := middleware.CustomerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "customer not found in context"})
		return
	}

	var req models.UpdateCustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	upd := models.CustomerUpdate{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		City:  req.City,
		Bio:   req.Bio,
	}

	if file, err := c.FormFile("profileImage"); err == nil && h.images != nil {
		url, err := h.images.UploadCustomerProfileImage(customer.ID, file)
		if err != nil {
			h.logger.Warn("profile image upload failed", zap.String("customer_id", customer.ID.String()), zap.Error(err))
		} else {
			upd.ProfileImage = url
		}
	}

	updated, err := h.store.UpdateCustomer(customer.ID, upd)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "customer not found"})
			return
		}
		if errors.Is(err, database.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update profile", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, presenter.Customer(presenter.RequestBaseURL(c), updated))
}

// Logout godoc
// @Summary     Customer logout
// @Description Stateless tokens: the client discards its token.
// @Tags        customers
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.MessageResponse
// @Router      /customers/logout [post]
func (h *CustomersHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "logged out successfully"})
}
