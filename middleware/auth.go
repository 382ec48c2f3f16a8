package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"tonehunt-catalog/config"
	"tonehunt-catalog/helper"
	"tonehunt-catalog/models"
)

var HTTPHelper = &helper.HTTPHelper{}

const viewerKey = "viewer"

// Claims follow the auth provider's access token: the subject is the
// profile id.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// OptionalAuth attaches the viewer when a bearer token is present. Requests
// without one continue anonymously; a bad token is rejected.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
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

		if !token.Valid || claims.Subject == "" {
			HTTPHelper.SendUnauthorizedError(c, "Token is not valid", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set(viewerKey, &models.Viewer{ID: claims.Subject, Username: claims.Username})
		c.Next()
	}
}

// ViewerFrom returns the viewer set by OptionalAuth, or nil.
func ViewerFrom(c *gin.Context) *models.Viewer {
	v, ok := c.Get(viewerKey)
	if !ok {
		return nil
	}
	viewer, _ := v.(*models.Viewer)
	return viewer
}
