package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"painter-booking-backend/internal/models"
)

func (c *Client) AddGalleryEntry(entry *models.GalleryEntry) (*models.GalleryEntry, error) {
	var created models.GalleryEntry
	err := c.db.QueryRow(`
		INSERT INTO painter_gallery (painter_id, image, description)
		VALUES ($1, $2, $3)
		RETURNING id, painter_id, image, description, created_at
	`, entry.PainterID, entry.Image, entry.Description).Scan(
		&created.ID, &created.PainterID, &created.Image,
		&created.Description, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add gallery entry: %w", err)
	}
	return &created, nil
}

func (c *Client) GetGallery(painterID uuid.UUID) ([]models.GalleryEntry, error) {
	rows, err := c.db.Query(`
		SELECT id, painter_id, image, description, created_at
		FROM painter_gallery
		WHERE painter_id = $1
		ORDER BY created_at ASC
	`, painterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery: %w", err)
	}
	defer rows.Close()

	var entries []models.GalleryEntry
	for rows.Next() {
		var e models.GalleryEntry
		if err := rows.Scan(&e.ID, &e.PainterID, &e.Image, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gallery entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// UpdateGalleryDescription changes the free-text description of one entry.
// The painter id guards against editing another painter's entry.
func (c *Client) UpdateGalleryDescription(painterID, entryID uuid.UUID, description string) (*models.GalleryEntry, error) {
	var e models.GalleryEntry
	err := c.db.QueryRow(`
		UPDATE painter_gallery SET description = $3
		WHERE id = $2 AND painter_id = $1
		RETURNING id, painter_id, image, description, created_at
	`, painterID, entryID, description).Scan(
		&e.ID, &e.PainterID, &e.Image, &e.Description, &e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update gallery entry: %w", err)
	}
	return &e, nil
}

// DeleteGalleryEntry removes one entry and returns it so callers can issue
// the follow-up storage deletion.
func (c *Client) DeleteGalleryEntry(painterID, entryID uuid.UUID) (*models.GalleryEntry, error) {
	var e models.GalleryEntry
	err := c.db.QueryRow(`
		DELETE FROM painter_gallery
		WHERE id = $2 AND painter_id = $1
		RETURNING id, painter_id, image, description, created_at
	`, painterID, entryID).Scan(
		&e.ID, &e.PainterID, &e.Image, &e.Description, &e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete gallery entry: %w", err)
	}
	return &e, nil
}
