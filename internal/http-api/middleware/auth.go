package middleware

import (
	"net/http"
	"strings"
	"time"

	"locallibrary/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const (
	claimsKey = "claims"
	viewerKey = "viewer"
)

// Clock returns the current time; swapped out in tests.
type Clock func() time.Time

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// Requests without a valid bearer token are rejected with 401.
func AuthMiddleware(authService service.AuthService, now Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			unauthorized(c, "missing or malformed authorization header")
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}

		setViewer(c, claims, now)
		c.Next()
	}
}

// OptionalAuth attaches a viewer when a valid token is present and an
// anonymous viewer otherwise. Handlers decide what anonymity means.
func OptionalAuth(authService service.AuthService, now Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := authService.ValidateToken(tokenString); err == nil {
				setViewer(c, claims, now)
				c.Next()
				return
			}
			// a bad token on an optional route is treated as no token
		}
		c.Set(viewerKey, service.Anonymous(now()))
		c.Next()
	}
}

// CurrentViewer returns the viewer attached by the auth middlewares, or an
// anonymous viewer for routes mounted without them.
func CurrentViewer(c *gin.Context) service.Viewer {
	if v, ok := c.Get(viewerKey); ok {
		if viewer, ok := v.(service.Viewer); ok {
			return viewer
		}
	}
	return service.Anonymous(time.Now())
}

func setViewer(c *gin.Context, claims *service.Claims, now Clock) {
	c.Set(claimsKey, claims)
	c.Set("userID", claims.UserID)
	c.Set("scopes", claims.Scopes)
	c.Set(viewerKey, service.NewViewer(claims.UserID, claims.Scopes, now()))
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="locallibrary"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
