package middlewares

import (
	"strings"

	"github.com/clockhouse/timesheet/internal/actorctx"
	"github.com/clockhouse/timesheet/internal/auth"
	"github.com/gin-gonic/gin"
)

// Keep this small interface so tests can fake it easily.
type TokenVerifier interface {
	VerifyAccessToken(token string) (*auth.Claims, error)
}

// IdentityMiddleware annotates requests that carry a valid bearer token with
// the actor's identity. It never rejects: the server holds no session state,
// so requests without a token (or with an unverifiable one) pass through
// unchanged.
type IdentityMiddleware struct {
	jwt TokenVerifier
}

func NewIdentityMiddleware(jwt TokenVerifier) *IdentityMiddleware {
	return &IdentityMiddleware{jwt: jwt}
}

func (m *IdentityMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))

		if raw == "" {
			c.Next()
			return
		}

		claims, err := m.jwt.VerifyAccessToken(raw)

		if err != nil {
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(actorctx.WithActor(c.Request.Context(), claims.Email))

		c.Next()
	}
}
