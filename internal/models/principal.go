package models

import (
	"time"

	"github.com/google/uuid"
)

// Role tags the principal variant a token was issued for. Customers and
// painters live in separate identity spaces; a token for one never
// authorizes routes of the other.
type Role string

const (
	RoleCustomer Role = "customer"
	RolePainter  Role = "painter"
	RoleAdmin    Role = "admin"
)

type Customer struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Password     string
	Phone        string
	City         string
	Bio          string
	ProfileImage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Painter struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Password       string
	PhoneNumber    string
	City           string
	WorkExperience string
	Bio            string
	Specification  []string
	ProfileImage   string
	Status         string
	Gallery        []GalleryEntry
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type GalleryEntry struct {
	ID          uuid.UUID
	PainterID   uuid.UUID
	Image       string
	Description string
	CreatedAt   time.Time
}

type Admin struct {
	ID        uuid.UUID
	Email     string
	Password  string
	CreatedAt time.Time
}

// CustomerUpdate carries a partial profile update. Empty fields retain the
// stored value.
type CustomerUpdate struct {
	Name         string
	Email        string
	Phone        string
	City         string
	Bio          string
	ProfileImage string
}

// PainterUpdate carries a partial profile update. Empty fields retain the
// stored value; a nil Specification leaves the stored tags untouched.
type PainterUpdate struct {
	Name           string
	Email          string
	PhoneNumber    string
	City           string
	WorkExperience string
	Bio            string
	Specification  []string
	ProfileImage   string
}

// PainterFilter narrows a public painter listing. Empty fields match
// everything.
type PainterFilter struct {
	Name  string
	City  string
	Phone string
}
