package middleware

import (
	"strings"
	"time"

	"channelhub/config"
	"channelhub/helper"
	"channelhub/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = helper.NewHTTPHelper()

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the bearer token, rejects revoked jtis and stores
// the asserted identity on the request context. Services re-resolve the
// username to an active user record themselves; the middleware only asserts
// "this token says you are X".
func AuthMiddleware(tokenRepo repositories.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !token.Valid {
			HTTPHelper.SendUnauthorizedError(c, "Token is not valid", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		// Logged-out tokens stay blacklisted until they expire
		if claims.ID != "" {
			revoked, err := tokenRepo.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				HTTPHelper.SendUnauthorizedError(c, "Token has been revoked", HTTPHelper.EmptyJsonMap())
				c.Abort()
				return
			}
		}

		expiresAt := time.Now().Add(config.JWTExpiration)
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("jti", claims.ID)
		c.Set("token_expires", expiresAt)

		c.Next()
	}
}
