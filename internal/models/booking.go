package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"index;not null" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ServiceID uint    `gorm:"index;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	Date    time.Time `gorm:"not null" json:"date"`
	Address string    `gorm:"size:255;not null" json:"address"`

	// Contact snapshot taken at booking time, independent of the
	// customer's current profile.
	ClientName      string `gorm:"size:100" json:"client_name"`
	ClientEmail     string `gorm:"size:100" json:"client_email"`
	ClientPhone     string `gorm:"size:20" json:"client_phone"`
	LocationDetails string `gorm:"size:255" json:"location_details"`

	TotalAmount   float64 `gorm:"not null" json:"total_amount"`
	PaymentStatus string  `gorm:"size:20;default:'PENDING'" json:"payment_status"`

	PaymentPreferenceID string `gorm:"size:100" json:"payment_preference_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
