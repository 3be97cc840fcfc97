package http

import (
	"time"

	"github.com/khoahotran/portfolio/internal/application/usecase/contact"
	"github.com/khoahotran/portfolio/internal/application/usecase/section"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
)

type pageView struct {
	section.Page
	Year int
}

type contactView struct {
	Status contact.Status
	Window time.Duration
	Sent   string
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// Admin DTOs
type AdminUserDTO struct {
	UserID       int64   `json:"user_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage string  `json:"profile_image,omitempty"`
	ResumeURL    *string `json:"resume_url,omitempty"`
	IsActive     bool    `json:"is_active"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToAdminUserDTO(u portfolio.User, resolveImage func(string) string) AdminUserDTO {
	dto := AdminUserDTO{
		UserID:    u.UserID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		ResumeURL: u.ResumeURL,
		IsActive:  u.IsActive,
		UpdatedAt: u.UpdatedAt,
	}
	if u.ProfileImage != nil {
		dto.ProfileImage = resolveImage(*u.ProfileImage)
	}
	return dto
}
