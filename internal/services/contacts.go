package services

import (
	"github.com/jmoiron/sqlx"

	"github.com/kbys/folio/internal/models"
)

func CreateContact(db *sqlx.DB, name, email, message string) error {
	_, err := db.Exec(`
INSERT INTO contact_messages (name, email, message)
VALUES ($1, $2, $3)
`, name, email, message)
	return err
}

// ListContacts returns a page of messages newest first plus the total count
// for the same filter. Items and count are two independent queries.
func ListContacts(db *sqlx.DB, skip, take int, status string) ([]models.ContactMessage, int, error) {
	items := []models.ContactMessage{}
	var total int
	if status == models.ContactStatusNew || status == models.ContactStatusDone {
		err := db.Select(&items, `
SELECT id, name, email, message, status, created_at
FROM contact_messages
WHERE status = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, status, take, skip)
		if err != nil {
			return nil, 0, err
		}
		if err := db.Get(&total, `SELECT COUNT(*) FROM contact_messages WHERE status = $1`, status); err != nil {
			return nil, 0, err
		}
		return items, total, nil
	}
	err := db.Select(&items, `
SELECT id, name, email, message, status, created_at
FROM contact_messages
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, take, skip)
	if err != nil {
		return nil, 0, err
	}
	if err := db.Get(&total, `SELECT COUNT(*) FROM contact_messages`); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func UpdateContactStatus(db *sqlx.DB, id int64, status string) (models.ContactMessage, error) {
	var msg models.ContactMessage
	err := db.Get(&msg, `
UPDATE contact_messages
SET status = $2
WHERE id = $1
RETURNING id, name, email, message, status, created_at
`, id, status)
	return msg, err
}

func DeleteContact(db *sqlx.DB, id int64) error {
	_, err := db.Exec(`DELETE FROM contact_messages WHERE id = $1`, id)
	return err
}
