package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContactValidation(t *testing.T) {
	s, mock := newTestServer(t)

	bodies := []string{
		`{}`,
		`{"name":"Taro","email":"","message":"hi"}`,
		`{"name":"","email":"taro@example.com","message":"hi"}`,
		`{"name":"Taro","email":"taro@example.com","message":""}`,
		`not json`,
	}
	for _, body := range bodies {
		rec := doRequest(t, s, http.MethodPost, "/api/public/contact", body, false)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContactPersists(t *testing.T) {
	s, mock := newTestServer(t)

	mock.ExpectExec("INSERT INTO contact_messages").
		WithArgs("Taro", "taro@example.com", "hello").
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := doRequest(t, s, http.MethodPost, "/api/public/contact",
		`{"name":"Taro","email":"taro@example.com","message":"hello"}`, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeEncodesImagesAsDataURIs(t *testing.T) {
	s, mock := newTestServer(t)

	avatarBytes := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0xff, 0x10}
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM profiles ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "bio", "avatar_id", "created_at", "updated_at"}).
			AddRow(1, "Taro", "a developer", 7, now, now))
	mock.ExpectQuery("SELECT (.+) FROM images WHERE id =").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "content_type", "data", "size", "created_at"}).
			AddRow(7, "avatar.png", "image/png", avatarBytes, len(avatarBytes), now))
	mock.ExpectQuery("SELECT (.+) FROM skills ORDER BY level DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "level"}).
			AddRow(1, "Go", 5).
			AddRow(2, "SQL", 3))
	mock.ExpectQuery("SELECT (.+) FROM projects ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "url", "image_id", "created_at"}).
			AddRow(1, "Folio", "portfolio site", nil, nil, now))

	rec := doRequest(t, s, http.MethodGet, "/api/public/home", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HomeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.Profile)
	require.NotNil(t, resp.Profile.AvatarURL)
	assert.True(t, strings.HasPrefix(*resp.Profile.AvatarURL, "data:image/png;base64,"))

	// The data URI decodes back to the stored byte sequence.
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(*resp.Profile.AvatarURL, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, avatarBytes, decoded)

	require.Len(t, resp.Skills, 2)
	assert.Equal(t, 5, resp.Skills[0].Level)

	require.Len(t, resp.Projects, 1)
	assert.Nil(t, resp.Projects[0].ImageURL)
	assert.Nil(t, resp.Projects[0].URL)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeWithoutProfile(t *testing.T) {
	s, mock := newTestServer(t)

	mock.ExpectQuery("SELECT (.+) FROM profiles ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "bio", "avatar_id", "created_at", "updated_at"}))
	mock.ExpectQuery("SELECT (.+) FROM skills ORDER BY level DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "level"}))
	mock.ExpectQuery("SELECT (.+) FROM projects ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "url", "image_id", "created_at"}))

	rec := doRequest(t, s, http.MethodGet, "/api/public/home", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HomeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Profile)
	assert.Empty(t, resp.Skills)
	assert.Empty(t, resp.Projects)
	assert.NoError(t, mock.ExpectationsWereMet())
}
