package models

import "time"

// Product is a marketplace listing. OwnerEmail and OwnerPicture are
// denormalized copies of the owner's identity captured at posting time.
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         float64   `gorm:"not null" json:"price"`
	Slug          string    `gorm:"uniqueIndex;not null;size:100" json:"slug"`
	Details       string    `gorm:"size:255" json:"details"`
	Brand         string    `gorm:"size:255" json:"brand"`
	PostedIn      string    `gorm:"size:255" json:"posted_in"`
	FeaturedImage string    `gorm:"size:500" json:"featured_image"`
	PostedDate    time.Time `json:"posted_date"`
	Featured      bool      `gorm:"default:false" json:"featured"`
	Position      int       `gorm:"default:0" json:"position"`
	Archived      bool      `gorm:"default:false" json:"archived"`
	OwnerPicture  string    `gorm:"size:500" json:"owner_picture"`
	OwnerEmail    string    `gorm:"index;size:254" json:"owner_email"`

	OwnerID    uint      `gorm:"not null;index" json:"owner_id"`
	Owner      User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner,omitempty"`
	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`

	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductImage is one gallery image attached to a product. Image references
// are opaque paths; storage happens outside the store.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	Image     string `gorm:"size:500;not null" json:"image"`
}
