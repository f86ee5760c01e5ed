package middlewares

import (
	"net/http"
	"strings"

	"axiapac.com/lms/security"
	"axiapac.com/lms/web/common"
	"github.com/gin-gonic/gin"
)

const (
	IdentityKey = "identity"
	cookieName  = "lms.ApplicationCookie"
)

// Authentication checks for a valid Bearer token, falling back to the application cookie,
// and stores the verified claims under IdentityKey.
func Authentication(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			cookie, err := c.Cookie(cookieName)
			if err != nil {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = parts[1]
		}

		claims, err := security.ParseIdentityToken(tokenStr, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		c.Set(IdentityKey, claims)
		c.Next()
	}
}

// GetIdentity returns the claims stored by Authentication.
func GetIdentity(c *gin.Context) (*security.IdentityClaims, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*security.IdentityClaims)
	return claims, ok
}
