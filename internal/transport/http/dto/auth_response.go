package dto

import "github.com/sparcom/backend/internal/domain"

type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// UserView is the compact identity block returned by login.
type UserView struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

// MeResponse is the full profile returned by /me.
type MeResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       string `json:"role"`
	Phone      string `json:"phone"`
	Bio        string `json:"bio"`
	IsVerified bool   `json:"is_verified"`
}

func ToUserView(a domain.Account) UserView {
	return UserView{
		ID:         a.User.ID,
		Username:   a.User.Username,
		Email:      a.User.Email,
		Role:       a.Profile.Role,
		IsVerified: a.Profile.IsVerified,
	}
}

func ToMeResponse(a domain.Account) MeResponse {
	return MeResponse{
		ID:         a.User.ID,
		Username:   a.User.Username,
		Email:      a.User.Email,
		FirstName:  a.User.FirstName,
		LastName:   a.User.LastName,
		Role:       a.Profile.Role,
		Phone:      a.Profile.Phone,
		Bio:        a.Profile.Bio,
		IsVerified: a.Profile.IsVerified,
	}
}
