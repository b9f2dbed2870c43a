package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"painter-booking-backend/internal/models"
)

const customerColumns = `id, name, email, password, phone, city, bio, profile_image, created_at, updated_at`

func scanCustomer(row *sql.Row) (*models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Password,
		&c.Phone, &c.City, &c.Bio, &c.ProfileImage,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan customer: %w", err)
	}
	return &c, nil
}

func (c *Client) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	row := c.db.QueryRow(`
		INSERT INTO customers (name, email, password, profile_image)
		VALUES ($1, $2, $3, $4)
		RETURNING `+customerColumns+`
	`, customer.Name, customer.Email, customer.Password, customer.ProfileImage)

	created, err := scanCustomer(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return created, nil
}

func (c *Client) GetCustomerByEmail(email string) (*models.Customer, error) {
	row := c.db.QueryRow(`
		SELECT `+customerColumns+`
		FROM customers
		WHERE email = $1
	`, email)
	return scanCustomer(row)
}

func (c *Client) GetCustomerByID(id uuid.UUID) (*models.Customer, error) {
	row := c.db.QueryRow(`
		SELECT `+customerColumns+`
		FROM customers
		WHERE id = $1
	`, id)
	return scanCustomer(row)
}

// UpdateCustomer applies a partial update; empty fields keep their stored
// values.
func (c *Client) UpdateCustomer(id uuid.UUID, upd models.CustomerUpdate) (*models.Customer, error) {
	row := c.db.QueryRow(`
		UPDATE customers SET
			name          = COALESCE(NULLIF($2, ''), name),
			email         = COALESCE(NULLIF($3, ''), email),
			phone         = COALESCE(NULLIF($4, ''), phone),
			city          = COALESCE(NULLIF($5, ''), city),
			bio           = COALESCE(NULLIF($6, ''), bio),
			profile_image = COALESCE(NULLIF($7, ''), profile_image),
			updated_at    = NOW()
		WHERE id = $1
		RETURNING `+customerColumns+`
	`, id, upd.Name, upd.Email, upd.Phone, upd.City, upd.Bio, upd.ProfileImage)

	updated, err := scanCustomer(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return updated, nil
}

func (c *Client) ListCustomers() ([]models.Customer, error) {
	rows, err := c.db.Query(`
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var cust models.Customer
		err := rows.Scan(
			&cust.ID, &cust.Name, &cust.Email, &cust.Password,
			&cust.Phone, &cust.City, &cust.Bio, &cust.ProfileImage,
			&cust.CreatedAt, &cust.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, cust)
	}

	return customers, rows.Err()
}

func (c *Client) DeleteCustomer(id uuid.UUID) error {
	res, err := c.db.Exec(`DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
