package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint `gorm:"index;not null" json:"provider_id"`
	Provider   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	CategoryID uint     `gorm:"index;not null" json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Location    string  `gorm:"size:255;not null" json:"location"`
	Phone       string  `gorm:"size:20;not null" json:"phone"`
	Email       string  `gorm:"size:100;not null" json:"email"`
	Description string  `gorm:"size:500" json:"description"`

	LocationLat *float64 `gorm:"index" json:"location_lat"`
	LocationLng *float64 `gorm:"index" json:"location_lng"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
