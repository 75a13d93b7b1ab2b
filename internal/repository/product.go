package repository

import (
	"context"

	"tradepost/internal/cache"
	"tradepost/internal/models"

	"gorm.io/gorm"
)

// freshLimit caps the fresh-recommendations listing.
const freshLimit = 12

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
	ListFeatured(ctx context.Context) ([]models.Product, error)
	ListFresh(ctx context.Context) ([]models.Product, error)
	ListByOwnerEmail(ctx context.Context, email string) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create persists the product together with any attached gallery images.
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	err := r.db.WithContext(ctx).Create(product).Error
	if err == nil {
		cache.InvalidateProduct(ctx, product.Slug)
		r.invalidateCategoryOf(ctx, product.CategoryID)
	}
	return err
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetBySlug returns the product with owner and gallery preloaded for the
// detail shape. The shape is cached; Create and Delete invalidate it.
func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := cache.Aside(ctx, cache.ProductKey(slug), &product, cache.ProductTTL, func() error {
		return r.db.WithContext(ctx).
			Preload("Owner").
			Preload("Images").
			Where("slug = ?", slug).
			First(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes the product and its gallery images in one transaction.
// Returns gorm.ErrRecordNotFound when no such product exists, leaving the
// store unchanged.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	var product models.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		return err
	}

	// Invalidation must follow the commit; a read during the transaction
	// would refill the key with the old row.
	cache.InvalidateProduct(ctx, product.Slug)
	r.invalidateCategoryOf(ctx, product.CategoryID)
	return nil
}

// invalidateCategoryOf drops the cached detail of the category a listing
// belongs to, so the category's product list stays current.
func (r *productRepository) invalidateCategoryOf(ctx context.Context, categoryID *uint) {
	if categoryID == nil || cache.GetClient() == nil {
		return
	}
	var category models.Category
	if err := r.db.WithContext(ctx).Select("slug").First(&category, *categoryID).Error; err == nil {
		cache.InvalidateCategory(ctx, category.Slug)
	}
}

func (r *productRepository) ListFeatured(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("position ASC, id ASC").
		Find(&products).Error
	return products, err
}

// ListFresh returns up to twelve of the newest non-archived products,
// newest first.
func (r *productRepository) ListFresh(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := cache.Aside(ctx, cache.FreshKey(), &products, cache.FreshTTL, func() error {
		return r.db.WithContext(ctx).
			Where("archived = ?", false).
			Order("posted_date DESC, id DESC").
			Limit(freshLimit).
			Find(&products).Error
	})
	return products, err
}

// ListByOwnerEmail returns the owner's products with detail-shape relations
// preloaded, newest first.
func (r *productRepository) ListByOwnerEmail(ctx context.Context, email string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Images").
		Where("owner_email = ?", email).
		Order("posted_date DESC, id DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("archived = ?", false).
		Where("name LIKE ? OR brand LIKE ? OR description LIKE ?", pattern, pattern, pattern).
		Order("posted_date DESC, id DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
