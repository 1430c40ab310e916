package response

import (
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Umangjain-9/book-review-platform/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	data := map[string]string{"title": "Dune"}
	JSON(w, http.StatusOK, data, discardLogger())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	// Success bodies are the bare resource, no envelope.
	var result map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, "Dune", result["title"])
}

func TestJSON_NilLogger(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, map[string]string{"ok": "yes"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestError_MessageBody(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusNotFound, "Book not found", discardLogger())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Book not found"}`, w.Body.String())
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(http.ResponseWriter, string, *slog.Logger)
		want int
	}{
		{"bad request", BadRequest, http.StatusBadRequest},
		{"unauthorized", Unauthorized, http.StatusUnauthorized},
		{"not found", NotFound, http.StatusNotFound},
		{"internal", InternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.fn(w, "boom", discardLogger())
			assert.Equal(t, tt.want, w.Code)
			assert.JSONEq(t, `{"message":"boom"}`, w.Body.String())
		})
	}
}

func TestHandleError_DomainError(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, errors.NotFound("Book not found"), discardLogger())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Book not found"}`, w.Body.String())
}

func TestHandleError_DuplicateEmailIs400(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, errors.AlreadyExists("User already exists"), discardLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, w.Body.String())
}

func TestHandleError_UnknownErrorIs500(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, io.ErrUnexpectedEOF, discardLogger())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, w.Body.String())
}
