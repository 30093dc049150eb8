package response

import "github.com/saywin/airport-api-service/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func NewLoginResponse(token string, user domain.User) LoginResponse {
	return LoginResponse{
		Token: token,
		User:  user,
	}
}
