package converter

import (
	"crypto_casino/internal/api/dto/auth"
	"crypto_casino/internal/model"
)

func RegisterRequestToUserModel(req *auth.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}
