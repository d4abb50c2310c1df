package converter

import (
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
)

// IdentityToResponse converts a resolved Identity to IdentityResponse DTO
func IdentityToResponse(identity *entity.Identity) *dto.IdentityResponse {
	if identity == nil {
		return nil
	}

	return &dto.IdentityResponse{
		UserID:      identity.UserID,
		Role:        identity.Role,
		DisplayName: identity.DisplayName,
	}
}
