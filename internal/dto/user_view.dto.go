package dto

import "github.com/handyhub/marketplace-api/internal/models"

// PublicUserDTO is the safe projection of a user inlined into other
// entities' payloads (service provider, chat participant, message sender).
type PublicUserDTO struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Avatar      string   `json:"avatar"`
	Bio         string   `json:"bio"`
	LocationLat *float64 `json:"location_lat"`
	LocationLng *float64 `json:"location_lng"`
}

func PublicUser(u models.User) PublicUserDTO {
	return PublicUserDTO{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Avatar:      u.Avatar,
		Bio:         u.Bio,
		LocationLat: u.LocationLat,
		LocationLng: u.LocationLng,
	}
}
