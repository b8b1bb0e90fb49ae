package request

import "bengal_portal/internal/domain/entities"

// LoginRequest selects one of the canned demo identities.
type LoginRequest struct {
	Role string `json:"role" binding:"required"`
}

// ProfileRequest carries the contact fields a customer may edit. Omitted
// fields are left unchanged.
type ProfileRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (r ProfileRequest) ToPatch() entities.ProfilePatch {
	return entities.ProfilePatch{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}
