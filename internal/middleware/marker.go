package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Berley24/chamadaaaa/internal/marker"
)

// ContextHasMarker is the gin context key recording whether the caller
// presented a valid device marker for the session in the route.
const ContextHasMarker = "has_marker"

// MarkerCookieName is the per-session cookie carrying the device marker.
func MarkerCookieName(sessionID string) string {
	return "attended_" + sessionID
}

// DeviceMarker inspects the marker cookie for the session named in the
// route. It never rejects on its own; the join pipeline decides what a held
// marker means.
func DeviceMarker(issuer *marker.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		has := false
		if cookie, err := c.Cookie(MarkerCookieName(sessionID)); err == nil {
			has = issuer.Verify(cookie, sessionID)
		}

		c.Set(ContextHasMarker, has)
		c.Next()
	}
}
