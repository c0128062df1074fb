package httpapi

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadImageDecodesBase64(t *testing.T) {
	s, mock := newTestServer(t)

	raw := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	encoded := base64.StdEncoding.EncodeToString(raw)

	// Stored size is the decoded byte length, not the base64 length.
	mock.ExpectQuery("INSERT INTO images").
		WithArgs("photo.jpg", "image/jpeg", raw, int64(len(raw))).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	body := fmt.Sprintf(`{"filename":"photo.jpg","contentType":"image/jpeg","base64":%q}`, encoded)
	rec := doRequest(t, s, http.MethodPost, "/api/admin/images", body, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":42}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadImageValidation(t *testing.T) {
	s, mock := newTestServer(t)

	bodies := []string{
		`{}`,
		`{"filename":"a.png","contentType":"image/png"}`,
		`{"filename":"a.png","base64":"QUJD"}`,
		`{"contentType":"image/png","base64":"QUJD"}`,
		`{"filename":"a.png","contentType":"image/png","base64":"%%%not-base64%%%"}`,
	}
	for _, body := range bodies {
		rec := doRequest(t, s, http.MethodPost, "/api/admin/images", body, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
