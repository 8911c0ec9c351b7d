package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ricardo-1112/shuiba-order/auth"
	"github.com/Ricardo-1112/shuiba-order/models"
)

const sessionKey = "session"

// ValidateToken checks the Authorization header and stores the session in
// the request context.
func ValidateToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
			c.Abort()
			return
		}

		sess, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "登录已过期，请重新登录"})
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// AdminOnly rejects non-admin sessions. The engines re-check the acting
// session themselves; this gate just keeps the noise out of the handlers.
func AdminOnly(c *gin.Context) {
	sess := SessionFrom(c)
	if sess == nil || !sess.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "仅管理员可访问"})
		c.Abort()
		return
	}
	c.Next()
}

// SessionFrom returns the session placed by ValidateToken, or nil.
func SessionFrom(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.Session)
	return sess
}
