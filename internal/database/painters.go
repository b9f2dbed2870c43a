package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"painter-booking-backend/internal/models"
)

const painterColumns = `id, name, email, password, phone_number, city, work_experience, bio, specification, profile_image, status, created_at, updated_at`

func scanPainter(row *sql.Row) (*models.Painter, error) {
	var p models.Painter
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Password,
		&p.PhoneNumber, &p.City, &p.WorkExperience, &p.Bio,
		pq.Array(&p.Specification), &p.ProfileImage, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan painter: %w", err)
	}
	return &p, nil
}

func (c *Client) CreatePainter(painter *models.Painter) (*models.Painter, error) {
	row := c.db.QueryRow(`
		INSERT INTO painters (name, email, password, phone_number, city, work_experience, bio, specification, profile_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+painterColumns+`
	`, painter.Name, painter.Email, painter.Password, painter.PhoneNumber,
		painter.City, painter.WorkExperience, painter.Bio,
		pq.Array(painter.Specification), painter.ProfileImage)

	created, err := scanPainter(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create painter: %w", err)
	}
	return created, nil
}

func (c *Client) GetPainterByEmail(email string) (*models.Painter, error) {
	row := c.db.QueryRow(`
		SELECT `+painterColumns+`
		FROM painters
		WHERE email = $1
	`, email)
	return scanPainter(row)
}

func (c *Client) GetPainterByID(id uuid.UUID) (*models.Painter, error) {
	row := c.db.QueryRow(`
		SELECT `+painterColumns+`
		FROM painters
		WHERE id = $1
	`, id)
	return scanPainter(row)
}

// UpdatePainter applies a partial update; empty fields keep their stored
// values and a nil specification leaves the stored tags untouched.
func (c *Client) UpdatePainter(id uuid.UUID, upd models.PainterUpdate) (*models.Painter, error) {
	row := c.db.QueryRow(`
		UPDATE painters SET
			name            = COALESCE(NULLIF($2, ''), name),
			email           = COALESCE(NULLIF($3, ''), email),
			phone_number    = COALESCE(NULLIF($4, ''), phone_number),
			city            = COALESCE(NULLIF($5, ''), city),
			work_experience = COALESCE(NULLIF($6, ''), work_experience),
			bio             = COALESCE(NULLIF($7, ''), bio),
			specification   = COALESCE($8, specification),
			profile_image   = COALESCE(NULLIF($9, ''), profile_image),
			updated_at      = NOW()
		WHERE id = $1
		RETURNING `+painterColumns+`
	`, id, upd.Name, upd.Email, upd.PhoneNumber, upd.City, upd.WorkExperience,
		upd.Bio, pq.Array(upd.Specification), upd.ProfileImage)

	updated, err := scanPainter(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return updated, nil
}

// ListPainters returns painters matching the filter, newest first. Filter
// fields are case-insensitive substring matches.
func (c *Client) ListPainters(filter models.PainterFilter) ([]models.Painter, error) {
	rows, err := c.db.Query(`
		SELECT `+painterColumns+`
		FROM painters
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR city ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR phone_number ILIKE '%' || $3 || '%')
		ORDER BY created_at DESC
	`, filter.Name, filter.City, filter.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to list painters: %w", err)
	}
	defer rows.Close()

	var painters []models.Painter
	for rows.Next() {
		var p models.Painter
		err := rows.Scan(
			&p.ID, &p.Name, &p.Email, &p.Password,
			&p.PhoneNumber, &p.City, &p.WorkExperience, &p.Bio,
			pq.Array(&p.Specification), &p.ProfileImage, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan painter: %w", err)
		}
		painters = append(painters, p)
	}

	return painters, rows.Err()
}

func (c *Client) UpdatePainterStatus(id uuid.UUID, status string) (*models.Painter, error) {
	row := c.db.QueryRow(`
		UPDATE painters SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+painterColumns+`
	`, id, status)
	return scanPainter(row)
}

func (c *Client) DeletePainter(id uuid.UUID) error {
	res, err := c.db.Exec(`DELETE FROM painters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete painter: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
