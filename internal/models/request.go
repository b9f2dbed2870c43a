package models

type RegisterCustomerRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type UpdateCustomerRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Phone string `json:"phone" form:"phone"`
	City  string `json:"city" form:"city"`
	Bio   string `json:"bio" form:"bio"`
}

type PainterSignupRequest struct {
	Name           string   `json:"name" form:"name"`
	Email          string   `json:"email" form:"email"`
	Password       string   `json:"password" form:"password"`
	PhoneNumber    string   `json:"phone_number" form:"phone_number"`
	City           string   `json:"city" form:"city"`
	WorkExperience string   `json:"work_experience" form:"work_experience"`
	Bio            string   `json:"bio" form:"bio"`
	Specification  []string `json:"specification" form:"specification"`
}

type UpdatePainterRequest struct {
	Name           string   `json:"name" form:"name"`
	Email          string   `json:"email" form:"email"`
	PhoneNumber    string   `json:"phone_number" form:"phone_number"`
	City           string   `json:"city" form:"city"`
	WorkExperience string   `json:"work_experience" form:"work_experience"`
	Bio            string   `json:"bio" form:"bio"`
	Specification  []string `json:"specification" form:"specification"`
}

type CreateBookingRequest struct {
	PainterID string `json:"painter_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// PublicBookingRequest is the unauthenticated booking entry point. The
// customer reference and contact fields are carried directly in the body.
type PublicBookingRequest struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Message       string `json:"message"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

type GalleryDescriptionRequest struct {
	Description string `json:"description" form:"description"`
}

type AdminSignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdatePainterStatusRequest struct {
	Status string `json:"status"`
}
