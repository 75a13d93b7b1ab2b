package models

import "time"

// Wishlist marks one product as saved by one user. The (user, product) pair
// is unique; toggling flips between present and absent.
type Wishlist struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	User      User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
