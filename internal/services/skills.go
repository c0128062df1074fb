package services

import (
	"github.com/jmoiron/sqlx"

	"github.com/kbys/folio/internal/models"
)

func ListSkills(db *sqlx.DB) ([]models.Skill, error) {
	skills := []models.Skill{}
	err := db.Select(&skills, `SELECT id, name, level FROM skills ORDER BY id ASC`)
	return skills, err
}

// ListSkillsByLevel orders strongest first for the public home aggregate.
func ListSkillsByLevel(db *sqlx.DB) ([]models.Skill, error) {
	skills := []models.Skill{}
	err := db.Select(&skills, `SELECT id, name, level FROM skills ORDER BY level DESC`)
	return skills, err
}

func CreateSkill(db *sqlx.DB, name string, level int) (models.Skill, error) {
	var skill models.Skill
	err := db.Get(&skill, `
INSERT INTO skills (name, level)
VALUES ($1, $2)
RETURNING id, name, level
`, name, level)
	return skill, err
}

func UpdateSkill(db *sqlx.DB, id int64, name string, level int) (models.Skill, error) {
	var skill models.Skill
	err := db.Get(&skill, `
UPDATE skills
SET name = $2, level = $3
WHERE id = $1
RETURNING id, name, level
`, id, name, level)
	return skill, err
}

func DeleteSkill(db *sqlx.DB, id int64) error {
	_, err := db.Exec(`DELETE FROM skills WHERE id = $1`, id)
	return err
}
