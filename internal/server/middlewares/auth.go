package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/dexkeeper/api/v1"
)

const (
	bearerPrefix = "Bearer "

	// SubjectKey holds the token subject in the gin context.
	SubjectKey = "auth.subject"
)

// Auth accepts requests carrying an HS256 bearer token signed with secret.
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, v1.Error{Error: "missing bearer token"})
			return
		}

		claims := jwt.RegisteredClaims{}
		_, err := parser.ParseWithClaims(strings.TrimPrefix(header, bearerPrefix), &claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil {
			zap.S().Named("auth").Debugw("rejected token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, v1.Error{Error: "invalid token"})
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}

// BearerScoped runs mw only for operations the API declares bearer-secured.
// The generated wrapper marks those by setting v1.BearerAuthScopes before the
// middlewares run.
func BearerScoped(mw gin.HandlerFunc) v1.MiddlewareFunc {
	return func(c *gin.Context) {
		if _, secured := c.Get(v1.BearerAuthScopes); !secured {
			return
		}
		mw(c)
	}
}
