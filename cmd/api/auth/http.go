package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key holding the verified Identity.
const IdentityKey = "identity"

const unauthorizedMessage = "unauthorized access"

// Verifier checks a raw session token.
type Verifier interface {
	Verify(token string) (Identity, error)
}

// Gate is the single guard every protected route goes through.
type Gate struct {
	CookieName string
	Verifier   Verifier
}

func NewGate(cookieName string, verifier Verifier) Gate {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return Gate{CookieName: cookieName, Verifier: verifier}
}

// ExtractSessionToken reads the session token from the request cookie.
func ExtractSessionToken(c *gin.Context, cookieName string) (string, error) {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return "", ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// Authorize returns the caller's identity. Without a cookie it fails with
// ErrMissingToken and never reaches the verifier.
func (g Gate) Authorize(c *gin.Context) (Identity, error) {
	token, err := ExtractSessionToken(c, g.CookieName)
	if err != nil {
		return Identity{}, err
	}
	return g.Verifier.Verify(token)
}

// AbortWithUnauthorized aborts with 401. Missing, invalid and expired tokens
// all look the same to the client.
func AbortWithUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthorizedMessage})
}

type ctxKey string

const ctxKeyIdentity ctxKey = "session_identity"

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	identity, ok := ctx.Value(ctxKeyIdentity).(Identity)
	return identity, ok
}

// CurrentIdentity returns the identity attached by the session middleware.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	if v, ok := c.Get(IdentityKey); ok {
		if identity, ok := v.(Identity); ok {
			return identity, true
		}
	}
	return IdentityFromContext(c.Request.Context())
}
