package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Me(ctx context.Context, userID int64) (*UserResponse, error)
}
