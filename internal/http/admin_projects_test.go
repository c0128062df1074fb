package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectColumns() []string {
	return []string{"id", "title", "description", "url", "image_id", "created_at"}
}

func TestListProjectsIncludesImageMeta(t *testing.T) {
	s, mock := newTestServer(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM projects ORDER BY id DESC").
		WillReturnRows(sqlmock.NewRows(projectColumns()).
			AddRow(2, "Folio", "portfolio site", "https://example.com", 7, now).
			AddRow(1, "Older", "first project", nil, nil, now))
	mock.ExpectQuery("SELECT (.+) FROM images WHERE id =").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "content_type", "data", "size", "created_at"}).
			AddRow(7, "shot.png", "image/png", []byte{1, 2}, 2, now))

	rec := doRequest(t, s, http.MethodGet, "/api/admin/projects", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []AdminProjectDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	require.NotNil(t, resp[0].Image)
	assert.Equal(t, "shot.png", resp[0].Image.Filename)
	assert.Nil(t, resp[1].Image)
	assert.Nil(t, resp[1].URL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProject(t *testing.T) {
	s, mock := newTestServer(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO projects").
		WithArgs("Folio", "portfolio site", "https://example.com", int64(7)).
		WillReturnRows(sqlmock.NewRows(projectColumns()).
			AddRow(1, "Folio", "portfolio site", "https://example.com", 7, now))

	rec := doRequest(t, s, http.MethodPost, "/api/admin/projects",
		`{"title":"Folio","description":"portfolio site","url":"https://example.com","imageId":7}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AdminProjectDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProjectOptionalFieldsDefaultNull(t *testing.T) {
	s, mock := newTestServer(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO projects").
		WithArgs("Folio", "portfolio site", nil, nil).
		WillReturnRows(sqlmock.NewRows(projectColumns()).
			AddRow(1, "Folio", "portfolio site", nil, nil, now))

	rec := doRequest(t, s, http.MethodPost, "/api/admin/projects",
		`{"title":"Folio","description":"portfolio site"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProjectValidation(t *testing.T) {
	s, mock := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/admin/projects", `{"title":"","description":"x"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/api/admin/projects", `{"title":"x","description":""}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProject(t *testing.T) {
	s, mock := newTestServer(t)
	now := time.Now()

	mock.ExpectQuery("UPDATE projects").
		WithArgs(int64(1), "Renamed", "new text", nil, nil).
		WillReturnRows(sqlmock.NewRows(projectColumns()).
			AddRow(1, "Renamed", "new text", nil, nil, now))

	rec := doRequest(t, s, http.MethodPut, "/api/admin/projects/1",
		`{"title":"Renamed","description":"new text"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodPut, "/api/admin/projects/NaN",
		`{"title":"Renamed","description":"new text"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProject(t *testing.T) {
	s, mock := newTestServer(t)

	mock.ExpectExec("DELETE FROM projects").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(t, s, http.MethodDelete, "/api/admin/projects/1", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
