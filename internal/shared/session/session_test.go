package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sofa-backend/pkg/jwt"
)

func newTestManager() *Manager {
	return NewManager(jwt.NewManager("test-secret", time.Hour), "sofa_session", false)
}

func TestManager_EstablishThenLoad(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestManager()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	require.NoError(t, m.Establish(c, "alice"))
	assert.Equal(t, "alice", FromContext(c).Username)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sofa_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	next, _ := gin.CreateTestContext(httptest.NewRecorder())
	next.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	next.Request.AddCookie(cookies[0])

	id := m.Load(next)
	assert.True(t, id.Is("alice"))
	assert.False(t, id.Is("bob"))
}

func TestManager_LoadRejectsForeignToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestManager()

	token, err := jwt.NewManager("other-secret", time.Hour).GenerateSessionToken("mallory")
	require.NoError(t, err)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "sofa_session", Value: token})

	assert.False(t, m.Load(c).Authenticated())
}

func TestManager_Clear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestManager()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/logout", nil)
	Set(c, Identity{Username: "alice"})

	m.Clear(c)

	assert.False(t, FromContext(c).Authenticated())
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestFromContext_Anonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.False(t, FromContext(c).Authenticated())
}
