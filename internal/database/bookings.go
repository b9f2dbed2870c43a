package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"painter-booking-backend/internal/models"
)

const bookingColumns = `id, customer_id, painter_id, date, time, status, contact_name, contact_email, message, created_at, updated_at`

func scanBooking(row *sql.Row) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.CustomerID, &b.PainterID, &b.Date, &b.Time, &b.Status,
		&b.ContactName, &b.ContactEmail, &b.Message,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan booking: %w", err)
	}
	return &b, nil
}

func (c *Client) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	row := c.db.QueryRow(`
		INSERT INTO bookings (customer_id, painter_id, date, time, status, contact_name, contact_email, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+bookingColumns+`
	`, booking.CustomerID, booking.PainterID, booking.Date, booking.Time,
		models.BookingPending, booking.ContactName, booking.ContactEmail, booking.Message)

	created, err := scanBooking(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return created, nil
}

func (c *Client) GetBooking(id uuid.UUID) (*models.Booking, error) {
	row := c.db.QueryRow(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = $1
	`, id)
	return scanBooking(row)
}

// UpdateBookingStatus persists the new status. Last write wins; the row is
// the unit of atomicity.
func (c *Client) UpdateBookingStatus(id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	row := c.db.QueryRow(`
		UPDATE bookings SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+bookingColumns+`
	`, id, status)
	return scanBooking(row)
}

// ListCustomerBookings returns a customer's bookings, each augmented with a
// summary of the referenced painter. Bookings whose painter reference no
// longer resolves keep an empty summary.
func (c *Client) ListCustomerBookings(customerID uuid.UUID) ([]models.CustomerBooking, error) {
	rows, err := c.db.Query(`
		SELECT b.id, b.customer_id, b.painter_id, b.date, b.time, b.status,
		       b.contact_name, b.contact_email, b.message, b.created_at, b.updated_at,
		       COALESCE(p.name, ''), COALESCE(p.city, ''), COALESCE(p.profile_image, '')
		FROM bookings b
		LEFT JOIN painters p ON p.id = b.painter_id
		WHERE b.customer_id = $1
		ORDER BY b.created_at DESC, b.id
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.CustomerBooking
	for rows.Next() {
		var cb models.CustomerBooking
		err := rows.Scan(
			&cb.ID, &cb.CustomerID, &cb.PainterID, &cb.Date, &cb.Time, &cb.Status,
			&cb.ContactName, &cb.ContactEmail, &cb.Message, &cb.CreatedAt, &cb.UpdatedAt,
			&cb.Painter.Name, &cb.Painter.City, &cb.Painter.ProfileImage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		cb.Painter.ID = cb.PainterID
		bookings = append(bookings, cb)
	}

	return bookings, rows.Err()
}

// ListPainterBookings is the painter-side counterpart with a customer
// summary per booking.
func (c *Client) ListPainterBookings(painterID uuid.UUID) ([]models.PainterBooking, error) {
	rows, err := c.db.Query(`
		SELECT b.id, b.customer_id, b.painter_id, b.date, b.time, b.status,
		       b.contact_name, b.contact_email, b.message, b.created_at, b.updated_at,
		       COALESCE(cu.name, ''), COALESCE(cu.email, '')
		FROM bookings b
		LEFT JOIN customers cu ON cu.id = b.customer_id
		WHERE b.painter_id = $1
		ORDER BY b.created_at DESC, b.id
	`, painterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list painter bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.PainterBooking
	for rows.Next() {
		var pb models.PainterBooking
		err := rows.Scan(
			&pb.ID, &pb.CustomerID, &pb.PainterID, &pb.Date, &pb.Time, &pb.Status,
			&pb.ContactName, &pb.ContactEmail, &pb.Message, &pb.CreatedAt, &pb.UpdatedAt,
			&pb.Customer.Name, &pb.Customer.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		pb.Customer.ID = pb.CustomerID
		bookings = append(bookings, pb)
	}

	return bookings, rows.Err()
}

// ListAllBookings is the admin view with both principal summaries.
func (c *Client) ListAllBookings() ([]models.AdminBooking, error) {
	rows, err := c.db.Query(`
		SELECT b.id, b.customer_id, b.painter_id, b.date, b.time, b.status,
		       b.contact_name, b.contact_email, b.message, b.created_at, b.updated_at,
		       COALESCE(cu.name, ''), COALESCE(cu.email, ''),
		       COALESCE(p.name, ''), COALESCE(p.city, ''), COALESCE(p.profile_image, '')
		FROM bookings b
		LEFT JOIN customers cu ON cu.id = b.customer_id
		LEFT JOIN painters p ON p.id = b.painter_id
		ORDER BY b.created_at DESC, b.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.AdminBooking
	for rows.Next() {
		var ab models.AdminBooking
		err := rows.Scan(
			&ab.ID, &ab.CustomerID, &ab.PainterID, &ab.Date, &ab.Time, &ab.Status,
			&ab.ContactName, &ab.ContactEmail, &ab.Message, &ab.CreatedAt, &ab.UpdatedAt,
			&ab.Customer.Name, &ab.Customer.Email,
			&ab.Painter.Name, &ab.Painter.City, &ab.Painter.ProfileImage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		ab.Customer.ID = ab.CustomerID
		ab.Painter.ID = ab.PainterID
		bookings = append(bookings, ab)
	}

	return bookings, rows.Err()
}

func (c *Client) DeleteBooking(id uuid.UUID) error {
	res, err := c.db.Exec(`DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
