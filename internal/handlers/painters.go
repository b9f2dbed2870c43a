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

type PainterStore interface {
	CreatePainter(painter *models.Painter) (*models.Painter, error)
	GetPainterByEmail(email string) (*models.Painter, error)
	GetPainterByID(id uuid.UUID) (*models.Painter, error)
	UpdatePainter(id uuid.UUID, upd models.PainterUpdate) (*models.Painter, error)
	ListPainters(filter models.PainterFilter) ([]models.Painter, error)
	GetGallery(painterID uuid.UUID) ([]models.GalleryEntry, error)
	AddGalleryEntry(entry *models.GalleryEntry) (*models.GalleryEntry, error)
	UpdateGalleryDescription(painterID, entryID uuid.UUID, description string) (*models.GalleryEntry, error)
	DeleteGalleryEntry(painterID, entryID uuid.UUID) (*models.GalleryEntry, error)
}

type PaintersHandler struct {
	store  PainterStore
	images *services.ImageService
	cfg    *config.Config
	logger *zap.Logger
}

func NewPaintersHandler(store PainterStore, images *services.ImageService, cfg *config.Config, logger *zap.Logger) *PaintersHandler {
	return &PaintersHandler{
		store:  store,
		images: images,
		cfg:    cfg,
		logger: logger,
	}
}

// Signup godoc
// @Summary     Register a painter account
// @Description Creates a painter with profile fields, optionally with a profile image, and returns a session token.
// @Tags        painters
// @Accept      json
// @Accept      multipart/form-data
// @Produce     json
// @Param       request body models.PainterSignupRequest true "Signup fields"
// @Success     201 {object} models.AuthResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /painters/signup [post]
func (h *PaintersHandler) Signup(c *gin.Context) {
	var req models.PainterSignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name, email and password are required"})
		return
	}

	if _, err := h.store.GetPainterByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "painter already exists"})
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to check existing painter", Message: err.Error()})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to hash password", Message: err.Error()})
		return
	}

	painter, err := h.store.CreatePainter(&models.Painter{
		Name:           req.Name,
		Email:          req.Email,
		Password:       string(hashed),
		PhoneNumber:    req.PhoneNumber,
		City:           req.City,
		WorkExperience: req.WorkExperience,
		Bio:            req.Bio,
		Specification:  req.Specification,
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "painter already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create painter", Message: err.Error()})
		return
	}

	if file, err := c.FormFile("profileImage"); err == nil && h.images != nil {
		url, err := h.images.UploadPainterProfileImage(painter.ID, file)
		if err != nil {
			h.logger.Warn("profile image upload failed", zap.String("painter_id", painter.ID.String()), zap.Error(err))
		} else if updated, err := h.store.UpdatePainter(painter.ID, models.PainterUpdate{ProfileImage: url}); err == nil {
			painter = updated
		}
	}

	token, err := auth.CreateToken(h.cfg.JWTSecret, painter.ID, models.RolePainter, auth.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to issue token", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		Message: "painter registered successfully",
		Token:   token,
		ID:      painter.ID.String(),
	})
}

// Login godoc
// @Summary     Painter login
// @Tags        painters
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.AuthResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /painters/login [post]
func (h *PaintersHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	painter, err := h.store.GetPainterByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(painter.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
		return
	}

	token, err := auth.CreateToken(h.cfg.JWTSecret, painter.ID, models.RolePainter, auth.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to issue token", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Message: "login successful",
		Token:   token,
		ID:      painter.ID.String(),
	})
}

// GetProfile godoc
// @Summary     Get own painter profile
// @Tags        painters
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.PainterResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /painter/profile [get]
func (h *PaintersHandler) GetProfile(c *gin.Context) {
	painter, ok := middleware.PainterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "painter not found in context"})
		return
	}

	gallery, err := h.store.GetGallery(painter.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch gallery", Message: err.Error()})
		return
	}
	painterCopy := *painter
	painterCopy.Gallery = gallery

	c.JSON(http.StatusOK, presenter.Painter(presenter.RequestBaseURL(c), &painterCopy))
}

// UpdateProfile godoc
// @Summary     Update own painter profile
// @Description Partial update; omitted fields keep their stored values.
// @Tags        painters
// @Accept      json
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       request body models.UpdatePainterRequest true "Fields to update"
// @Success     200 {object} models.PainterResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /painter/profile [put]
func (h *PaintersHandler) UpdateProfile(c *gin.Context) {
	painter, ok := middleware.PainterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "painter not found in context"})
		return
	}

	var req models.UpdatePainterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	upd := models.PainterUpdate{
		Name:           req.Name,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		City:           req.City,
		WorkExperience: req.WorkExperience,
		Bio:            req.Bio,
		Specification:  req.Specification,
	}

	if file, err := c.FormFile("profileImage"); err == nil && h.images != nil {
		url, err := h.images.UploadPainterProfileImage(painter.ID, file)
		if err != nil {
			h.logger.Warn("profile image upload failed", zap.String("painter_id", painter.ID.String()), zap.Error(err))
		} else {
			upd.ProfileImage = url
		}
	}

	updated, err := h.store.UpdatePainter(painter.ID, upd)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "painter not found"})
			return
		}
		if errors.Is(err, database.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update profile", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, presenter.Painter(presenter.RequestBaseURL(c), updated))
}

// ListPainters godoc
// @Summary     Public painter listing
// @Description Lists painters, optionally filtered by name, city or phone substring.
// @Tags        painters
// @Produce     json
// @Param       name query string false "Name filter"
// @Param       city query string false "City filter"
// @Param       phone query string false "Phone filter"
// @Success     200 {array} models.PainterCardResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /painters [get]
func (h *PaintersHandler) ListPainters(c *gin.Context) {
	filter := models.PainterFilter{
		Name:  c.Query("name"),
		City:  c.Query("city"),
		Phone: c.Query("phone"),
	}

	painters, err := h.store.ListPainters(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list painters", Message: err.Error()})
		return
	}

	base := presenter.RequestBaseURL(c)
	cards := make([]models.PainterCardResponse, 0, len(painters))
	for i := range painters {
		gallery, err := h.store.GetGallery(painters[i].ID)
		if err == nil {
			painters[i].Gallery = gallery
		}
		cards = append(cards, presenter.PainterCard(base, &painters[i]))
	}

	c.JSON(http.StatusOK, cards)
}

// GetPainter godoc
// @Summary     Public painter detail
// @Tags        painters
// @Produce     json
// @Param       id path string true "Painter ID (UUID)"
// @Success     200 {object} models.PainterResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /painters/{id} [get]
func (h *PaintersHandler) GetPainter(c *gin.Context) {
	painterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid painter id"})
		return
	}

	painter, err := h.store.GetPainterByID(painterID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "painter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch painter", Message: err.Error()})
		return
	}

	gallery, err := h.store.GetGallery(painter.ID)
	if err == nil {
		painter.Gallery = gallery
	}
	painter.Password = ""

	c.JSON(http.StatusOK, presenter.Painter(presenter.RequestBaseURL(c), painter))
}

// GetPainterGallery godoc
// @Summary     Public painter gallery
// @Tags        painters
// @Produce     json
// @Param       id path string true "Painter ID (UUID)"
// @Success     200 {array} models.GalleryEntryResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /painters/{id}/gallery [get]
func (h *PaintersHandler) GetPainterGallery(c *gin.Context) {
	painterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid painter id"})
		return
	}

	if _, err := h.store.GetPainterByID(painterID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "painter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch painter", Message: err.Error()})
		return
	}

	gallery, err := h.store.GetGallery(painterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch gallery", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, presenter.Gallery(presenter.RequestBaseURL(c), gallery))
}

// Logout godoc
// @Summary     Painter logout
// @Tags        painters
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.MessageResponse
// @Router      /painter/logout [post]
func (h *PaintersHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "logout successful"})
}
