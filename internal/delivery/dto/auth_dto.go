package dto

import "clinic-portal/internal/domain/entity"

// Request DTOs

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Role       string `json:"role" validate:"required"`
}

// Response DTOs

type IdentityResponse struct {
	UserID      entity.RecordID `json:"user_id"`
	Role        entity.Role     `json:"role"`
	DisplayName string          `json:"display_name"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	ExpiresIn   int64            `json:"expires_in"`
	Identity    IdentityResponse `json:"identity"`
}
