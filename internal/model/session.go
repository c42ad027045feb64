package model

import "time"

type Session struct {
	ID           string
	UserID       int
	RefreshToken string // sha256 хэш refresh токена
	ExpiresAt    time.Time
}
