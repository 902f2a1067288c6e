package dto

import (
	"time"

	"github.com/orris-inc/setracker/internal/domain/user"
)

type UserDTO struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	DisplayName  string    `json:"display_name"`
	IsTeamMember bool      `json:"is_team_member"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginDTO is returned by a successful login or refresh.
type LoginDTO struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
	User         *UserDTO `json:"user,omitempty"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	email := ""
	if u.Email() != nil {
		email = u.Email().String()
	}
	return &UserDTO{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        email,
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		DisplayName:  u.DisplayName(),
		IsTeamMember: u.IsTeamMember(),
		Role:         u.Role().String(),
		Active:       u.IsActive(),
		CreatedAt:    u.CreatedAt(),
	}
}
