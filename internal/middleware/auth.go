package middleware

import (
	"errors"
	"net/http"
	"strings"

	"finance-tracker/internal/store"
	"finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// UserKey is the gin context key holding the authenticated *models.User.
const UserKey = "currentUser"

// Auth validates the bearer JWT and loads the current user into the
// context. Requests without a valid token are rejected with 401.
func Auth(jwtSecret, jwtIssuer string, users *store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, jwtIssuer, tokenStr)
		if err != nil {
			util.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				util.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			} else {
				util.Error(c, http.StatusInternalServerError, "Server error")
			}
			c.Abort()
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}
