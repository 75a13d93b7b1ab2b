package models

import "time"

// Category groups products for browsing. The slug is assigned once at
// creation and never re-derived on update.
type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"uniqueIndex;not null;size:100" json:"slug"`
	Image    string `gorm:"size:500" json:"image"`
	Icon     string `gorm:"size:500" json:"icon"`
	Featured bool   `gorm:"default:false" json:"featured"`
	Position int    `gorm:"default:0" json:"position"`
	// Archived hides the category from merchandising surfaces without
	// removing it. Deletion is a separate, hard operation.
	Archived bool `gorm:"default:false" json:"archived"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
