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
	"painter-booking-backend/internal/models"
)

func TestPainterSignup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakePainterStore()
	h := newPaintersHandler(store, &fakeObjectStore{})
	router := gin.New()
	router.POST("/painters/signup", h.Signup)

	w := postJSON(router, "POST", "/painters/signup", models.PainterSignupRequest{
		Name:          "Bob",
		Email:         "bob@example.com",
		Password:      "secret123",
		City:          "Vilnius",
		Specification: []string{"interior", "exterior"},
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := auth.ParseToken(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RolePainter, claims.Role)

	id, err := claims.PrincipalID()
	require.NoError(t, err)
	stored, err := store.GetPainterByID(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"interior", "exterior"}, stored.Specification)
}

func TestPainterSignup_DuplicateEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakePainterStore()
	_, err := store.CreatePainter(&models.Painter{Name: "Bob", Email: "bob@example.com", Password: "x"})
	require.NoError(t, err)

	h := newPaintersHandler(store, &fakeObjectStore{})
	router := gin.New()
	router.POST("/painters/signup", h.Signup)

	w := postJSON(router, "POST", "/painters/signup", models.PainterSignupRequest{
		Name:     "Bob Again",
		Email:    "bob@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, store.painters, 1)
}

func TestPainterLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	store := newFakePainterStore()
	created, err := store.CreatePainter(&models.Painter{Name: "Bob", Email: "bob@example.com", Password: string(hashed)})
	require.NoError(t, err)

	h := newPaintersHandler(store, &fakeObjectStore{})
	router := gin.New()
	router.POST("/painters/login", h.Login)

	w := postJSON(router, "POST", "/painters/login", models.LoginRequest{
		Email:    "bob@example.com",
		Password: "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID.String(), resp.ID)
}

func TestPainterLogin_WrongPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	store := newFakePainterStore()
	_, err = store.CreatePainter(&models.Painter{Name: "Bob", Email: "bob@example.com", Password: string(hashed)})
	require.NoError(t, err)

	h := newPaintersHandler(store, &fakeObjectStore{})
	router := gin.New()
	router.POST("/painters/login", h.Login)

	w := postJSON(router, "POST", "/painters/login", models.LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListPainters_CityFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakePainterStore()
	_, err := store.CreatePainter(&models.Painter{Name: "Bob", Email: "bob@example.com", Password: "x", City: "Vilnius"})
	require.NoError(t, err)
	_, err = store.CreatePainter(&models.Painter{Name: "Eve", Email: "eve@example.com", Password: "x", City: "Kaunas"})
	require.NoError(t, err)

	h := newPaintersHandler(store, &fakeObjectStore{})
	router := gin.New()
	router.GET("/painters", h.ListPainters)

	req, _ := http.NewRequest("GET", "/painters?city=Kaunas", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.PainterCardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Eve", resp[0].Name)
}

func TestListPainters_GalleryPreviewCapped(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakePainterStore()
	painter, err := store.CreatePainter(&models.Painter{Name: "Bob", Email: "bob@example.com", Password: "x"})
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err := store.AddGalleryEntry(&models.GalleryEntry{PainterID: painter.ID, Image: "wall.jpg"})
		require.NoError(t, err)
	}

	h := newPaintersHandler(store, &fakeObjectStore{})
	router := gin.New()
	router.GET("/painters", h.ListPainters)

	req, _ := http.NewRequest("GET", "/painters", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.PainterCardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Len(t, resp[0].GalleryPreview, 2)
}

func TestGetPainter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakePainterStore()
	painter, err := store.CreatePainter(&models.Painter{Name: "Bob", Email: "bob@example.com", Password: "hashed-secret", ProfileImage: "face.jpg"})
	require.NoError(t, err)

	h := newPaintersHandler(store, &fakeObjectStore{})
	router := gin.New()
	router.GET("/painters/:id", h.GetPainter)

	req, _ := http.NewRequest("GET", "/painters/"+painter.ID.String(), nil)
	req.Host = "api.example.com"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hashed-secret")

	var resp models.PainterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "http://api.example.com/uploads/profileImages/face.jpg", resp.ProfileImage)
}

func TestGetPainter_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := newPaintersHandler(newFakePainterStore(), &fakeObjectStore{})
	router := gin.New()
	router.GET("/painters/:id", h.GetPainter)

	req, _ := http.NewRequest("GET", "/painters/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPainterGallery_Public(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := newFakePainterStore()
	painter, err := store.CreatePainter(&models.Painter{Name: "Bob", Email: "bob@example.com", Password: "x"})
	require.NoError(t, err)
	_, err = store.AddGalleryEntry(&models.GalleryEntry{PainterID: painter.ID, Image: "wall.jpg", Description: "hallway"})
	require.NoError(t, err)

	h := newPaintersHandler(store, &fakeObjectStore{})
	router := gin.New()
	router.GET("/painters/:id/gallery", h.GetPainterGallery)

	req, _ := http.NewRequest("GET", "/painters/"+painter.ID.String()+"/gallery", nil)
	req.Host = "api.example.com"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.GalleryEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "http://api.example.com/uploads/galleryImages/wall.jpg", resp[0].Image)
}
