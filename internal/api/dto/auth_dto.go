package dto

import "github.com/Zomujo/dial4inclusion/internal/domain"

// LoginRequest payload.
type LoginRequest struct {
	UserIdentifier string `json:"userIdentifier"`
	Password       string `json:"password"`
}

// RegisterRequest payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role,omitempty"`
	District string `json:"district,omitempty"`
}

// SessionResponse describes the authenticated user and role predicates.
type SessionResponse struct {
	User              *domain.User `json:"user"`
	IsAdmin           bool         `json:"isAdmin"`
	IsNavigator       bool         `json:"isNavigator"`
	IsDistrictOfficer bool         `json:"isDistrictOfficer"`
}
