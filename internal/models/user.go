package models

import "time"

// Roles assignable to a user. ADMIN is never assignable through the
// public register endpoint.
const (
	RoleCustomer = "CUSTOMER"
	RoleProvider = "PROVIDER"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'CUSTOMER'" json:"role"`

	Avatar string `gorm:"size:255" json:"avatar"`
	Phone  string `gorm:"size:20" json:"phone"`
	Bio    string `gorm:"size:500" json:"bio"`

	LocationLat *float64 `json:"location_lat"`
	LocationLng *float64 `json:"location_lng"`

	ResetPasswordToken   string     `gorm:"size:64;index" json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
