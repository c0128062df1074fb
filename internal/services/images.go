package services

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/kbys/folio/internal/models"
)

// CreateImage stores an immutable image blob and returns its id. Size is the
// decoded byte length, not the base64 length.
func CreateImage(db *sqlx.DB, filename, contentType string, data []byte) (int64, error) {
	var id int64
	err := db.Get(&id, `
INSERT INTO images (filename, content_type, data, size)
VALUES ($1, $2, $3, $4)
RETURNING id
`, filename, contentType, data, int64(len(data)))
	return id, err
}

// ImageByID returns nil without error when no row matches; a dangling
// reference is a schema-level impossibility, but callers treat absent images
// as "no image" anyway.
func ImageByID(db *sqlx.DB, id int64) (*models.Image, error) {
	var img models.Image
	err := db.Get(&img, `
SELECT id, filename, content_type, data, size, created_at
FROM images
WHERE id = $1
`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}
