package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const DefaultCookieName = "token"

// CookieConfig describes the session cookie. Production serves the browser
// client from another site, so the cookie must be Secure with SameSite=None;
// everywhere else it stays SameSite=Strict.
type CookieConfig struct {
	Name     string
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

func NewCookieConfig(name string, production bool, maxAge time.Duration) CookieConfig {
	if name == "" {
		name = DefaultCookieName
	}
	cfg := CookieConfig{
		Name:     name,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	}
	if production {
		cfg.Secure = true
		cfg.SameSite = http.SameSiteNoneMode
	}
	return cfg
}

// Set writes the session cookie.
func (cfg CookieConfig) Set(c *gin.Context, token string) {
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(cfg.Name, token, int(cfg.MaxAge/time.Second), "/", "", cfg.Secure, true)
}

// Clear expires the session cookie on the client. Tokens already handed out
// stay valid until their own expiry.
func (cfg CookieConfig) Clear(c *gin.Context) {
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(cfg.Name, "", -1, "/", "", cfg.Secure, true)
}
