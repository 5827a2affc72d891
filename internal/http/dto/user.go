package dto

import (
	"time"

	"careerline.app/studio/internal/model"
)

type UserResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type AuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type ExchangeCodeResponse struct {
	SessionID int64         `json:"session_id,string"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      *UserResponse `json:"user"`
}

type MeResponse struct {
	User      *UserResponse   `json:"user"`
	Companies []model.Company `json:"companies"`
}
