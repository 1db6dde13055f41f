package dto

import (
	"time"

	"github.com/handyhub/marketplace-api/internal/models"
)

type ServiceDTO struct {
	ID uint `json:"id"`

	Provider PublicUserDTO   `json:"provider"`
	Category models.Category `json:"category"`

	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Description string  `json:"description"`

	LocationLat *float64 `json:"location_lat"`
	LocationLng *float64 `json:"location_lng"`

	CreatedAt time.Time `json:"created_at"`
}

func ServiceView(s models.Service) ServiceDTO {
	return ServiceDTO{
		ID:          s.ID,
		Provider:    PublicUser(s.Provider),
		Category:    s.Category,
		Name:        s.Name,
		Price:       s.Price,
		Location:    s.Location,
		Phone:       s.Phone,
		Email:       s.Email,
		Description: s.Description,
		LocationLat: s.LocationLat,
		LocationLng: s.LocationLng,
		CreatedAt:   s.CreatedAt,
	}
}
