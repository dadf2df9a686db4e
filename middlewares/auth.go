package middlewares

import (
	"net/http"
	"strings"

	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Bearer token and, when role flags are
// given, requires the user to hold at least one of them.
func AuthMiddleware(secret string, required ...entity.RoleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		setIdentity(c, claims)

		if !hasAnyRole(utils.CurrentRoles(c), required) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// WSAuthMiddleware is AuthMiddleware for websocket endpoints, where
// browsers cannot set headers: the token travels in ?token=.
func WSAuthMiddleware(secret string, required ...entity.RoleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			tokenStr = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		setIdentity(c, claims)

		if !hasAnyRole(utils.CurrentRoles(c), required) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminMiddleware restricts a group to the configured admin account.
func AdminMiddleware(adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminEmail == "" || utils.CurrentEmail(c) != adminEmail {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func setIdentity(c *gin.Context, claims *utils.Claims) {
	roles, err := entity.ParseRoles(claims.Roles)
	if err != nil {
		roles = 0
	}
	c.Set("userId", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("roles", roles)
}

func hasAnyRole(have entity.RoleSet, required []entity.RoleSet) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if have.Has(r) {
			return true
		}
	}
	return false
}
