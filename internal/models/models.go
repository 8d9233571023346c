package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive = "active"
	StatusBanned = "banned"

	ProductPending     = "pending"
	ProductApproved    = "approved"
	ProductDisapproved = "disapproved"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null;default:user"    json:"role"`
	Status       string    `gorm:"not null;default:active"  json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Quantity    uint      `gorm:"not null;default:0"       json:"quantity"`
	Description string    `json:"description"`
	UserID      uint      `gorm:"index;not null"           json:"user_id"`
	Status      string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// ProductWithOwner is the joined row returned to product owners and admins.
// OwnerEmail is only filled for the admin projection.
type ProductWithOwner struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Quantity    uint      `json:"quantity"`
	Description string    `json:"description"`
	UserID      uint      `json:"user_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	OwnerName   string    `json:"owner_name"`
	OwnerEmail  string    `json:"owner_email,omitempty"`
}

// PublicProduct is the restricted projection for the unauthenticated listing:
// no owner email, no moderation status.
type PublicProduct struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Quantity    uint      `json:"quantity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerName   string    `json:"owner_name"`
}
