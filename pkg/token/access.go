package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"crypto_casino/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken создает подписанный HS256 access токен с ID пользователя
func GenerateAccessToken(user *model.User, secretKey []byte, ttl time.Duration) (string, error) {
	claims := model.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        strconv.Itoa(user.ID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return t.SignedString(secretKey)
}

// VerifyToken проверяет подпись и срок действия access токена
func VerifyToken(tokenStr string, secretKey []byte) (*model.UserClaims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &model.UserClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %v", err)
	}

	claims, ok := t.Claims.(*model.UserClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
