package accountControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ricardo-1112/shuiba-order/accounts"
	"github.com/Ricardo-1112/shuiba-order/auth"
	"github.com/Ricardo-1112/shuiba-order/cart"
	"github.com/Ricardo-1112/shuiba-order/middleware"
	"github.com/Ricardo-1112/shuiba-order/models"
)

type CredentialsInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func sessionResponse(sess *models.Session, secret string) (gin.H, error) {
	token, err := auth.IssueToken(sess, secret)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"token": token,
		"user": gin.H{
			"id":       sess.UserID,
			"email":    sess.Email,
			"is_admin": sess.IsAdmin,
		},
	}, nil
}

// POST /auth/register
func Register(dir *accounts.Directory, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CredentialsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "请输入有效的邮箱和密码"})
			return
		}

		sess, err := dir.Register(input.Email, input.Password)
		if err != nil {
			if errors.Is(err, accounts.ErrDuplicateEmail) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "注册失败"})
			return
		}

		resp, err := sessionResponse(sess, secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "注册失败"})
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// POST /auth/login
func Login(dir *accounts.Directory, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CredentialsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "请输入有效的邮箱和密码"})
			return
		}

		sess, err := dir.Authenticate(input.Email, input.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		resp, err := sessionResponse(sess, secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "登录失败"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// POST /user/logout
//
// The token simply stops being used client-side; the server-side effect of
// logging out is clearing the caller's cart.
func Logout(cartEngine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
			return
		}
		if err := cartEngine.Clear(sess.Email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "登出失败"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "已登出"})
	}
}
