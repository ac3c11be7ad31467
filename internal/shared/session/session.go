// Package session carries the logged-in username between requests
// in a signed HttpOnly cookie and exposes it to handlers as an Identity.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sofa-backend/pkg/jwt"
)

const contextKey = "session.identity"

// Identity là user hiện tại của request. Zero value = anonymous.
type Identity struct {
	Username string
}

func (i Identity) Authenticated() bool {
	return i.Username != ""
}

// Is reports whether the identity belongs to username
func (i Identity) Is(username string) bool {
	return i.Authenticated() && i.Username == username
}

// Set gắn identity vào gin context
func Set(c *gin.Context, id Identity) {
	c.Set(contextKey, id)
}

// FromContext trả về identity đã được middleware.Session gắn vào context
func FromContext(c *gin.Context) Identity {
	v, ok := c.Get(contextKey)
	if !ok {
		return Identity{}
	}
	id, _ := v.(Identity)
	return id
}

// Manager issues, reads and clears the session cookie
type Manager struct {
	tokens     *jwt.Manager
	cookieName string
	secure     bool
}

func NewManager(tokens *jwt.Manager, cookieName string, secure bool) *Manager {
	return &Manager{
		tokens:     tokens,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Load đọc cookie và validate token.
// Cookie thiếu, hết hạn hoặc sai chữ ký đều trả về anonymous identity.
func (m *Manager) Load(c *gin.Context) Identity {
	raw, err := c.Cookie(m.cookieName)
	if err != nil || raw == "" {
		return Identity{}
	}

	claims, err := m.tokens.ValidateSessionToken(raw)
	if err != nil {
		return Identity{}
	}
	return Identity{Username: claims.Username}
}

// Establish ghi session cookie cho username và cập nhật identity của request hiện tại
func (m *Manager) Establish(c *gin.Context, username string) error {
	token, err := m.tokens.GenerateSessionToken(username)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, int(m.tokens.TTL().Seconds()), "/", "", m.secure, true)
	Set(c, Identity{Username: username})
	return nil
}

// Clear xoá session cookie
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
	Set(c, Identity{})
}
