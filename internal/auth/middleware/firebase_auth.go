package middleware

import (
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	authpkg "github.com/specforge-io/specforge-backend/internal/auth"
)

// RequireUser validates the Firebase ID token on every request and stores
// the caller's uid in context. A nil client means identity verification is
// not configured; protected routes answer 503 rather than letting
// anonymous traffic through.
func RequireUser(client *fbauth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "authentication is not configured"})
			c.Abort()
			return
		}

		token := extractBearer(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			c.Abort()
			return
		}

		decoded, err := client.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(authpkg.CtxFirebaseUID, decoded.UID)
		if email, ok := decoded.Claims["email"].(string); ok {
			c.Set("email", email)
		}

		c.Next()
	}
}

// OptionalUser attaches a uid when a valid token is present but lets
// anonymous requests continue. Used on routes that work without an
// account (validation, test plans) yet personalize when one exists.
func OptionalUser(client *fbauth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}
		token := extractBearer(c)
		if token == "" {
			c.Next()
			return
		}
		decoded, err := client.VerifyIDToken(c.Request.Context(), token)
		if err == nil {
			c.Set(authpkg.CtxFirebaseUID, decoded.UID)
		}
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") && len(h) > 7 {
		return h[7:]
	}
	return ""
}
