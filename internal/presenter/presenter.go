// Package presenter shapes stored records into response payloads. Image
// references that are already absolute pass through unchanged; bare
// filenames are rewritten into fully qualified URLs under a per-kind static
// path. The rewrite is deterministic and never mutates the stored record.
package presenter

import (
	"strings"

	"github.com/gin-gonic/gin"
	"painter-booking-backend/internal/models"
)

// ImageKind selects the static path segment for bare filename references.
type ImageKind int

const (
	PainterProfileImage ImageKind = iota
	UserProfileImage
	GalleryImage
)

func (k ImageKind) segment() string {
	switch k {
	case UserProfileImage:
		return "userProfileImages"
	case GalleryImage:
		return "galleryImages"
	default:
		return "profileImages"
	}
}

// ImageURL resolves an image reference against the request base address.
func ImageURL(base string, kind ImageKind, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimSuffix(base, "/") + "/uploads/" + kind.segment() + "/" + ref
}

// RequestBaseURL reconstructs the address the client reached us at.
func RequestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func Customer(base string, customer *models.Customer) models.CustomerResponse {
	return models.CustomerResponse{
		ID:           customer.ID.String(),
		Name:         customer.Name,
		Email:        customer.Email,
		Phone:        customer.Phone,
		City:         customer.City,
		Bio:          customer.Bio,
		ProfileImage: ImageURL(base, UserProfileImage, customer.ProfileImage),
		CreatedAt:    customer.CreatedAt,
		UpdatedAt:    customer.UpdatedAt,
	}
}

func Painter(base string, painter *models.Painter) models.PainterResponse {
	return models.PainterResponse{
		ID:             painter.ID.String(),
		Name:           painter.Name,
		Email:          painter.Email,
		PhoneNumber:    painter.PhoneNumber,
		City:           painter.City,
		WorkExperience: painter.WorkExperience,
		Bio:            painter.Bio,
		Specification:  painter.Specification,
		ProfileImage:   ImageURL(base, PainterProfileImage, painter.ProfileImage),
		Status:         painter.Status,
		Gallery:        Gallery(base, painter.Gallery),
		CreatedAt:      painter.CreatedAt,
		UpdatedAt:      painter.UpdatedAt,
	}
}

// PainterCard is the public listing shape with a two-entry gallery preview.
func PainterCard(base string, painter *models.Painter) models.PainterCardResponse {
	preview := painter.Gallery
	if len(preview) > 2 {
		preview = preview[:2]
	}
	return models.PainterCardResponse{
		ID:             painter.ID.String(),
		Name:           painter.Name,
		Bio:            painter.Bio,
		City:           painter.City,
		PhoneNumber:    painter.PhoneNumber,
		ProfileImage:   ImageURL(base, PainterProfileImage, painter.ProfileImage),
		GalleryPreview: Gallery(base, preview),
	}
}

func Gallery(base string, entries []models.GalleryEntry) []models.GalleryEntryResponse {
	out := make([]models.GalleryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = models.GalleryEntryResponse{
			ID:          e.ID.String(),
			Image:       ImageURL(base, GalleryImage, e.Image),
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		}
	}
	return out
}

func Booking(booking *models.Booking) models.BookingResponse {
	return models.BookingResponse{
		ID:           booking.ID.String(),
		CustomerID:   booking.CustomerID.String(),
		PainterID:    booking.PainterID.String(),
		Date:         booking.Date,
		Time:         booking.Time,
		Status:       string(booking.Status),
		ContactName:  booking.ContactName,
		ContactEmail: booking.ContactEmail,
		Message:      booking.Message,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
}

func CustomerBookings(base string, bookings []models.CustomerBooking) []models.CustomerBookingResponse {
	out := make([]models.CustomerBookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = models.CustomerBookingResponse{
			BookingResponse: Booking(&b.Booking),
			Painter: models.PainterSummaryResponse{
				ID:           b.Painter.ID.String(),
				Name:         b.Painter.Name,
				City:         b.Painter.City,
				ProfileImage: ImageURL(base, PainterProfileImage, b.Painter.ProfileImage),
			},
		}
	}
	return out
}

func PainterBookings(bookings []models.PainterBooking) []models.PainterBookingResponse {
	out := make([]models.PainterBookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = models.PainterBookingResponse{
			BookingResponse: Booking(&b.Booking),
			Customer: models.CustomerSummaryResponse{
				ID:    b.Customer.ID.String(),
				Name:  b.Customer.Name,
				Email: b.Customer.Email,
			},
		}
	}
	return out
}

func AdminBookings(base string, bookings []models.AdminBooking) []models.AdminBookingResponse {
	out := make([]models.AdminBookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = models.AdminBookingResponse{
			BookingResponse: Booking(&b.Booking),
			Customer: models.CustomerSummaryResponse{
				ID:    b.Customer.ID.String(),
				Name:  b.Customer.Name,
				Email: b.Customer.Email,
			},
			Painter: models.PainterSummaryResponse{
				ID:           b.Painter.ID.String(),
				Name:         b.Painter.Name,
				City:         b.Painter.City,
				ProfileImage: ImageURL(base, PainterProfileImage, b.Painter.ProfileImage),
			},
		}
	}
	return out
}
