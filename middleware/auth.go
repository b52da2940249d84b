package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Authorizer decides whether a request may use the admin surface. The
// interface keeps the gate swappable so a real login flow can replace
// the static token later without touching the handlers.
type Authorizer interface {
	Authorize(r *http.Request) bool
}

// AllowAll leaves the admin surface open. It preserves the site's
// current single-owner deployment where no token is configured.
type AllowAll struct{}

func (AllowAll) Authorize(*http.Request) bool { return true }

// TokenAuthorizer accepts requests carrying the configured bearer token.
type TokenAuthorizer struct {
	Token string
}

func (a TokenAuthorizer) Authorize(r *http.Request) bool {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(a.Token)) == 1
}

// ForConfig picks the authorizer for the configured admin token.
func ForConfig(token string) Authorizer {
	if token == "" {
		return AllowAll{}
	}
	return TokenAuthorizer{Token: token}
}

// RequireAdmin gates a route group behind the authorizer.
func RequireAdmin(a Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Authorize(c.Request) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}
