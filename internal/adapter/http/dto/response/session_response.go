package response

import (
	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase"
)

type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
}

// SessionResponse reports the active user. User is null when nobody is
// signed in.
type SessionResponse struct {
	User   *UserResponse `json:"user"`
	Source string        `json:"source"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    string(u.Role),
		Phone:   u.Phone,
		Address: u.Address,
		Avatar:  u.Avatar,
	}
}

func FromResolution(r usecase.Resolution) SessionResponse {
	out := SessionResponse{Source: string(r.Source)}
	if r.User != nil {
		u := FromUser(*r.User)
		out.User = &u
	}
	return out
}
