package models

import "time"

const (
	ContactStatusNew  = "NEW"
	ContactStatusDone = "DONE"
)

type Image struct {
	ID          int64     `db:"id"`
	Filename    string    `db:"filename"`
	ContentType string    `db:"content_type"`
	Data        []byte    `db:"data"`
	Size        int64     `db:"size"`
	CreatedAt   time.Time `db:"created_at"`
}

type Profile struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Bio       string    `db:"bio"`
	AvatarID  *int64    `db:"avatar_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Skill struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Level int    `db:"level"`
}

type Project struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	URL         *string   `db:"url"`
	ImageID     *int64    `db:"image_id"`
	CreatedAt   time.Time `db:"created_at"`
}

type ContactMessage struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
