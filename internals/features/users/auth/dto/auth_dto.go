package dto

import (
	"strings"

	m "vedaschool_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	Name     string `json:"user_name" validate:"required,min=1,max=100"`
	Email    string `json:"user_email" validate:"required,email,max=160"`
	Password string `json:"user_password" validate:"required,min=8,max=72"`
	Role     string `json:"user_role" validate:"required,oneof=admin staff student parent receptionist hr"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

type LoginRequest struct {
	Email    string `json:"user_email" validate:"required,email"`
	Password string `json:"user_password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type UserResponse struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserRole  string `json:"user_role"`
}

func FromUserModel(u m.UserModel) UserResponse {
	return UserResponse{
		UserID:    u.UserID.String(),
		UserName:  u.UserName,
		UserEmail: u.UserEmail,
		UserRole:  u.UserRole,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
