package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"painter-booking-backend/internal/models"
)

func scanAdmin(row *sql.Row) (*models.Admin, error) {
	var a models.Admin
	err := row.Scan(&a.ID, &a.Email, &a.Password, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan admin: %w", err)
	}
	return &a, nil
}

func (c *Client) CreateAdmin(admin *models.Admin) (*models.Admin, error) {
	row := c.db.QueryRow(`
		INSERT INTO admins (email, password)
		VALUES ($1, $2)
		RETURNING id, email, password, created_at
	`, admin.Email, admin.Password)

	created, err := scanAdmin(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return created, nil
}

func (c *Client) GetAdminByEmail(email string) (*models.Admin, error) {
	row := c.db.QueryRow(`
		SELECT id, email, password, created_at
		FROM admins
		WHERE email = $1
	`, email)
	return scanAdmin(row)
}

func (c *Client) GetAdminByID(id uuid.UUID) (*models.Admin, error) {
	row := c.db.QueryRow(`
		SELECT id, email, password, created_at
		FROM admins
		WHERE id = $1
	`, id)
	return scanAdmin(row)
}

// Stats returns the dashboard record counts.
func (c *Client) Stats() (models.Stats, error) {
	var s models.Stats
	err := c.db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM painters),
			(SELECT COUNT(*) FROM bookings)
	`).Scan(&s.Customers, &s.Painters, &s.Bookings)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to count records: %w", err)
	}
	return s, nil
}
