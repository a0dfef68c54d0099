package converter

import (
	dto "puzzle_place/internal/api/dto/auth"
	"puzzle_place/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}
