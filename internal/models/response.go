package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	ID      string `json:"id"`
}

type CustomerResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	City         string    `json:"city,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PainterResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	PhoneNumber    string                 `json:"phone_number,omitempty"`
	City           string                 `json:"city,omitempty"`
	WorkExperience string                 `json:"work_experience,omitempty"`
	Bio            string                 `json:"bio,omitempty"`
	Specification  []string               `json:"specification"`
	ProfileImage   string                 `json:"profile_image,omitempty"`
	Status         string                 `json:"status,omitempty"`
	Gallery        []GalleryEntryResponse `json:"gallery,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// PainterCardResponse is the public listing shape: contact basics plus a
// short gallery preview.
type PainterCardResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Bio            string                 `json:"bio,omitempty"`
	City           string                 `json:"city,omitempty"`
	PhoneNumber    string                 `json:"phone_number,omitempty"`
	ProfileImage   string                 `json:"profile_image,omitempty"`
	GalleryPreview []GalleryEntryResponse `json:"gallery_preview"`
}

type GalleryEntryResponse struct {
	ID          string    `json:"id"`
	Image       string    `json:"image"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type GalleryResponse struct {
	Gallery []GalleryEntryResponse `json:"gallery"`
}

type BookingResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	PainterID    string    `json:"painter_id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PainterSummaryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type CustomerSummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CustomerBookingResponse struct {
	BookingResponse
	Painter PainterSummaryResponse `json:"painter"`
}

type PainterBookingResponse struct {
	BookingResponse
	Customer CustomerSummaryResponse `json:"customer"`
}

type AdminBookingResponse struct {
	BookingResponse
	Customer CustomerSummaryResponse `json:"customer"`
	Painter  PainterSummaryResponse `json:"painter"`
}

type StatsResponse struct {
	Customers int `json:"customers"`
	Painters  int `json:"painters"`
	Bookings  int `json:"bookings"`
}
