package delivery

import (
	"net/http"
	"strings"

	"notevault-backend/pkg/response"
	"notevault-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the access token and injects the user id into the
// context. The token is read from the accessToken cookie (browsers) or the
// Authorization bearer header (non-cookie clients).
func AuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := tokenFromRequest(c, "accessToken")
		if accessToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.NewUnauthorized("User is not authorized to perform this action."))
			return
		}

		userID, err := tokens.VerifyAccessToken(accessToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.NewUnauthorized("Token verification failed."))
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// tokenFromRequest returns the named cookie if present, falling back to the
// Authorization bearer header.
func tokenFromRequest(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
