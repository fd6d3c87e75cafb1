package http

import (
	"net/http"
	"strings"

	"github.com/carlog/carlog_vehicle_service/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const authorizationPayloadKey = "authorization_payload"

// AuthMiddleware verifies the bearer token and stores its payload in the
// request context.
func AuthMiddleware(tokenService ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			newErrorResponse(c, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		payload, err := tokenService.VerifyToken(parts[1])
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(authorizationPayloadKey, payload)
		c.Next()
	}
}
