package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sofa-backend/internal/shared/apperr"
)

func newContext(method string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/shows/missing", nil)
	return c, w
}

func TestJSONRenderer_Success(t *testing.T) {
	c, w := newContext(http.MethodGet)

	NewJSONRenderer().Render(c, http.StatusOK, PageShows, Data{"shows": []string{"the-wire"}})

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, PageShows, data["view"])
	assert.Equal(t, []interface{}{"the-wire"}, data["shows"])
}

func TestJSONRenderer_Error(t *testing.T) {
	c, w := newContext(http.MethodPost)

	NewJSONRenderer().Render(c, http.StatusConflict, PageShowAdd, Data{"error": "show already exists", "form": "x"})

	require.Equal(t, http.StatusConflict, w.Code)
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string                 `json:"code"`
			Message string                 `json:"message"`
			Details map[string]interface{} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "CONFLICT", body.Error.Code)
	assert.Equal(t, "show already exists", body.Error.Message)
	assert.Equal(t, PageShowAdd, body.Error.Details["view"])
	assert.NotContains(t, body.Error.Details, "error")
}

func TestNotFound(t *testing.T) {
	c, w := newContext(http.MethodGet)

	NotFound(c, NewJSONRenderer())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"NOT_FOUND"`)
}

func TestRedirect(t *testing.T) {
	c, w := newContext(http.MethodGet)
	Redirect(c, "/shows")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/shows", w.Header().Get("Location"))

	c, w = newContext(http.MethodPost)
	Redirect(c, "/shows")
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestFail(t *testing.T) {
	r := NewJSONRenderer()

	tests := []struct {
		name   string
		err    error
		status int
		page   string
	}{
		{"not found", fmt.Errorf("show not found: %w", apperr.ErrNotFound), http.StatusNotFound, PageNotFound},
		{"conflict", fmt.Errorf("dup: %w", apperr.ErrConflict), http.StatusConflict, PageShowAdd},
		{"validation", apperr.Validation(validation.Errors{"title": errors.New("title is required")}), http.StatusBadRequest, PageShowAdd},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError, PageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(http.MethodPost)

			Fail(c, r, tt.err, PageShowAdd, Data{"form": "x"})

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"view":"`+tt.page+`"`)
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestFail_ValidationFields(t *testing.T) {
	c, w := newContext(http.MethodPost)

	Fail(c, NewJSONRenderer(), apperr.Validation(validation.Errors{"title": errors.New("title is required")}), PageShowAdd, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title is required")
}
