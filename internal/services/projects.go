package services

import (
	"github.com/jmoiron/sqlx"

	"github.com/kbys/folio/internal/models"
)

func CreateProject(db *sqlx.DB, title, description string, url *string, imageID *int64) (models.Project, error) {
	var project models.Project
	err := db.Get(&project, `
INSERT INTO projects (title, description, url, image_id)
VALUES ($1, $2, $3, $4)
RETURNING id, title, description, url, image_id, created_at
`, title, description, url, imageID)
	return project, err
}

func UpdateProject(db *sqlx.DB, id int64, title, description string, url *string, imageID *int64) (models.Project, error) {
	var project models.Project
	err := db.Get(&project, `
UPDATE projects
SET title = $2, description = $3, url = $4, image_id = $5
WHERE id = $1
RETURNING id, title, description, url, image_id, created_at
`, id, title, description, url, imageID)
	return project, err
}

func DeleteProject(db *sqlx.DB, id int64) error {
	_, err := db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	return err
}

func listProjects(db *sqlx.DB, order string) ([]models.Project, error) {
	projects := []models.Project{}
	err := db.Select(&projects, `
SELECT id, title, description, url, image_id, created_at
FROM projects
ORDER BY `+order)
	return projects, err
}

// ListProjectsByID orders newest id first, the admin listing order.
func ListProjectsByID(db *sqlx.DB) ([]models.Project, error) {
	return listProjects(db, "id DESC")
}

// ListProjectsByCreation orders newest first, the public listing order.
func ListProjectsByCreation(db *sqlx.DB) ([]models.Project, error) {
	return listProjects(db, "created_at DESC")
}
