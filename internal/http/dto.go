package httpapi

import (
	"encoding/base64"
	"time"

	"github.com/kbys/folio/internal/models"
)

// Wire shapes are explicit structs mapped from storage rows so that storage
// nullability conventions never leak into responses.

type SkillDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type ContactDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ImageMetaDTO carries image metadata only; raw bytes travel exclusively as
// data URIs on the public aggregate or as base64 on upload.
type ImageMetaDTO struct {
	ID          int64  `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type AdminProfileDTO struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Bio      string        `json:"bio"`
	AvatarID *int64        `json:"avatarId"`
	Avatar   *ImageMetaDTO `json:"avatar"`
}

type AdminProjectDTO struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         *string       `json:"url"`
	ImageID     *int64        `json:"imageId"`
	Image       *ImageMetaDTO `json:"image"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type HomeProfileDTO struct {
	Name      string  `json:"name"`
	Bio       string  `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
}

type HomeProjectDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         *string `json:"url"`
	ImageURL    *string `json:"imageUrl"`
}

type HomeResponse struct {
	Profile  *HomeProfileDTO  `json:"profile"`
	Skills   []SkillDTO       `json:"skills"`
	Projects []HomeProjectDTO `json:"projects"`
}

// DataURI encodes image bytes as a data:<contentType>;base64,<bytes> string.
func DataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func dataURIOrNil(img *models.Image) *string {
	if img == nil {
		return nil
	}
	uri := DataURI(img.ContentType, img.Data)
	return &uri
}

func skillDTO(m models.Skill) SkillDTO {
	return SkillDTO{ID: m.ID, Name: m.Name, Level: m.Level}
}

func skillDTOs(items []models.Skill) []SkillDTO {
	out := make([]SkillDTO, 0, len(items))
	for _, m := range items {
		out = append(out, skillDTO(m))
	}
	return out
}

func contactDTO(m models.ContactMessage) ContactDTO {
	return ContactDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func contactDTOs(items []models.ContactMessage) []ContactDTO {
	out := make([]ContactDTO, 0, len(items))
	for _, m := range items {
		out = append(out, contactDTO(m))
	}
	return out
}

func imageMetaDTO(img *models.Image) *ImageMetaDTO {
	if img == nil {
		return nil
	}
	return &ImageMetaDTO{
		ID:          img.ID,
		Filename:    img.Filename,
		ContentType: img.ContentType,
		Size:        img.Size,
	}
}

func adminProfileDTO(p models.Profile, avatar *models.Image) AdminProfileDTO {
	return AdminProfileDTO{
		ID:       p.ID,
		Name:     p.Name,
		Bio:      p.Bio,
		AvatarID: p.AvatarID,
		Avatar:   imageMetaDTO(avatar),
	}
}

func adminProjectDTO(p models.Project, img *models.Image) AdminProjectDTO {
	return AdminProjectDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		URL:         p.URL,
		ImageID:     p.ImageID,
		Image:       imageMetaDTO(img),
		CreatedAt:   p.CreatedAt,
	}
}
