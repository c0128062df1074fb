package services

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/kbys/folio/internal/models"
)

// FirstProfile returns the canonical profile row (lowest id) or nil when no
// profile has been saved yet.
func FirstProfile(db *sqlx.DB) (*models.Profile, error) {
	var p models.Profile
	err := db.Get(&p, `
SELECT id, name, bio, avatar_id, created_at, updated_at
FROM profiles
ORDER BY id ASC
LIMIT 1
`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile replaces name, bio and avatar reference on the canonical
// profile row, creating it on first save. An absent avatarID clears the
// reference.
func SaveProfile(db *sqlx.DB, name, bio string, avatarID *int64) (models.Profile, error) {
	current, err := FirstProfile(db)
	if err != nil {
		return models.Profile{}, err
	}
	var saved models.Profile
	if current == nil {
		err = db.Get(&saved, `
INSERT INTO profiles (name, bio, avatar_id)
VALUES ($1, $2, $3)
RETURNING id, name, bio, avatar_id, created_at, updated_at
`, name, bio, avatarID)
	} else {
		err = db.Get(&saved, `
UPDATE profiles
SET name = $2, bio = $3, avatar_id = $4, updated_at = now()
WHERE id = $1
RETURNING id, name, bio, avatar_id, created_at, updated_at
`, current.ID, name, bio, avatarID)
	}
	return saved, err
}

// ClearProfileAvatar removes the avatar reference from the canonical profile
// row. When no profile exists it returns nil, nil and the caller reports
// success anyway.
func ClearProfileAvatar(db *sqlx.DB) (*models.Profile, error) {
	current, err := FirstProfile(db)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	var saved models.Profile
	err = db.Get(&saved, `
UPDATE profiles
SET avatar_id = NULL, updated_at = now()
WHERE id = $1
RETURNING id, name, bio, avatar_id, created_at, updated_at
`, current.ID)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
