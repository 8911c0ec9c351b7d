// Package auth issues and parses the JWT session tokens the presentation
// layer carries. A token is the whole session: nothing server-side
// references it, so logout is the client discarding it.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Ricardo-1112/shuiba-order/models"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// IssueToken signs a token carrying the session identity.
func IssueToken(sess *models.Session, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  sess.UserID,
		"email":    sess.Email,
		"is_admin": sess.IsAdmin,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token and rebuilds the session it carries.
func ParseToken(tokenString, secret string) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	isAdmin, _ := claims["is_admin"].(bool)
	if email == "" {
		return nil, ErrInvalidToken
	}

	return &models.Session{UserID: userID, Email: email, IsAdmin: isAdmin}, nil
}
