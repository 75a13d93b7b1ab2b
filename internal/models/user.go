// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a marketplace account. Accounts are provisioned by the
// storefront client with identity fields only; there are no credentials here.
type User struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Email             string `gorm:"uniqueIndex;not null;size:254" json:"email"`
	Username          string `gorm:"size:150" json:"username"`
	FirstName         string `gorm:"size:150" json:"first_name"`
	LastName          string `gorm:"size:150" json:"last_name"`
	ProfilePictureURL string `gorm:"size:500" json:"profile_picture_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
