package service

import (
	"context"
	"errors"

	"tradepost/internal/models"
	"tradepost/internal/repository"

	"gorm.io/gorm"
)

// Wishlist toggle outcomes returned to the client.
const (
	WishlistAdded   = "added"
	WishlistRemoved = "removed"
)

// WishlistService provides saved-product business logic.
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
}

// NewWishlistService returns a new WishlistService.
func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

// Toggle flips the saved state of a product for the user and reports the
// resulting state. A concurrent duplicate toggle settles on "removed", the
// same as toggling an already-saved product.
func (s *WishlistService) Toggle(ctx context.Context, email string, productID uint) (string, error) {
	if email == "" || productID == 0 {
		return "", models.NewValidationError("Product ID and email are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.NewNotFoundError("User", email)
		}
		return "", err
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.NewNotFoundError("Product", productID)
		}
		return "", err
	}

	_, created, err := s.wishlistRepo.GetOrCreate(ctx, user.ID, productID)
	if err != nil {
		return "", err
	}
	if created {
		return WishlistAdded, nil
	}

	if err := s.wishlistRepo.Delete(ctx, user.ID, productID); err != nil {
		return "", err
	}
	return WishlistRemoved, nil
}

// List returns the user's saved products, most recently saved first.
func (s *WishlistService) List(ctx context.Context, email string) ([]models.Product, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", email)
		}
		return nil, err
	}
	return s.wishlistRepo.ListProducts(ctx, user.ID)
}

// WishlistedIDs filters productIDs down to the set userID has saved. A zero
// userID (anonymous) yields an empty set.
func (s *WishlistService) WishlistedIDs(ctx context.Context, userID uint, productIDs []uint) (map[uint]bool, error) {
	return s.wishlistRepo.WishlistedIDs(ctx, userID, productIDs)
}
