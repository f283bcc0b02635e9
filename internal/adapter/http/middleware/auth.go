package middleware

import (
	"mototrackr/internal/infrastructure/auth"
	"mototrackr/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MechanicKey is the gin context key holding the authenticated mechanic
// username.
const MechanicKey = "mechanic"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)

// RequireAuth guards the mechanic-side endpoints with a bearer token issued
// by the auth handler.
func RequireAuth(jwt *auth.JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		username, err := jwt.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(MechanicKey, username)
		c.Next()
	}
}
