package services

import (
	"context"
	"net/http"

	"fastfood-ui/models"
)

type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a bearer token. Failures come back as
// *APIError so the server message can be placed next to the offending field.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	var res models.LoginResponse
	err := s.client.do(ctx, http.MethodPost, "/auth/login", "",
		models.LoginRequest{Username: username, Password: password}, &res)
	if err != nil {
		return "", err
	}
	return res.Token, nil
}

// Signup registers a new account. The API answers 201 on success.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) error {
	return s.client.do(ctx, http.MethodPost, "/auth/signup", "", req, nil)
}
