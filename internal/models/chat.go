package models

import "time"

// Chat is a buyer/seller conversation about one product. A (product, buyer,
// seller) triple maps to at most one chat; starting the same chat twice
// returns the existing record.
type Chat struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Slug string `gorm:"uniqueIndex;not null;size:100" json:"slug"`

	ProductID uint    `gorm:"not null;uniqueIndex:idx_chat_triple" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	BuyerID   uint    `gorm:"not null;uniqueIndex:idx_chat_triple" json:"buyer_id"`
	Buyer     User    `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"buyer,omitempty"`
	SellerID  uint    `gorm:"not null;uniqueIndex:idx_chat_triple" json:"seller_id"`
	Seller    User    `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"seller,omitempty"`

	Messages []Message `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Message is a single chat entry. Messages are append-only and ordered by
// timestamp; there is no delivery or read tracking.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChatID    uint      `gorm:"not null;index" json:"chat_id"`
	SenderID  uint      `gorm:"not null;index" json:"sender_id"`
	Sender    User      `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}
