package repository

import (
	"context"

	"tradepost/internal/database"
	"tradepost/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WishlistRepository defines the interface for wishlist data operations
type WishlistRepository interface {
	// GetOrCreate atomically ensures an entry for (userID, productID) and
	// reports whether this call created it.
	GetOrCreate(ctx context.Context, userID, productID uint) (*models.Wishlist, bool, error)
	Delete(ctx context.Context, userID, productID uint) error
	ListProducts(ctx context.Context, userID uint) ([]models.Product, error)
	// WishlistedIDs filters productIDs down to the set the user has saved.
	WishlistedIDs(ctx context.Context, userID uint, productIDs []uint) (map[uint]bool, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new wishlist repository
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) GetOrCreate(ctx context.Context, userID, productID uint) (*models.Wishlist, bool, error) {
	entry := models.Wishlist{UserID: userID, ProductID: productID}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry)
	if res.Error != nil && !database.IsUniqueViolation(res.Error) {
		return nil, false, res.Error
	}

	created := res.Error == nil && res.RowsAffected > 0
	if created {
		return &entry, true, nil
	}

	// Lost the race or the entry already existed; fetch the winner's row.
	var existing models.Wishlist
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&existing).Error
	if err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

func (r *wishlistRepository) Delete(ctx context.Context, userID, productID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Wishlist{}).Error
}

// ListProducts returns the user's saved products, most recently saved first.
func (r *wishlistRepository) ListProducts(ctx context.Context, userID uint) ([]models.Product, error) {
	var entries []models.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, len(entries))
	for i, entry := range entries {
		products[i] = entry.Product
	}
	return products, nil
}

func (r *wishlistRepository) WishlistedIDs(ctx context.Context, userID uint, productIDs []uint) (map[uint]bool, error) {
	ids := make(map[uint]bool)
	if userID == 0 || len(productIDs) == 0 {
		return ids, nil
	}

	var entries []models.Wishlist
	err := r.db.WithContext(ctx).
		Select("product_id").
		Where("user_id = ? AND product_id IN ?", userID, productIDs).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		ids[entry.ProductID] = true
	}
	return ids, nil
}
