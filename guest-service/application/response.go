package application

import "github.com/rafifdzaky27/tubes-iae-pria/guest-service/domain"

// GuestResponse is the guest representation returned over HTTP
type GuestResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func newGuestResponse(guest *domain.Guest) *GuestResponse {
	return &GuestResponse{
		ID:       guest.ID.Int64(),
		FullName: guest.FullName,
		Email:    guest.Email,
		Phone:    guest.Phone,
		Address:  guest.Address,
	}
}
