package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxFirebaseUID = "firebase_uid"

// UserFirebaseUID extracts the Firebase UID set by RequireUser or
// OptionalUser. Empty means the request is anonymous.
func UserFirebaseUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxFirebaseUID))
}
