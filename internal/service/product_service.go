package service

import (
	"context"
	"errors"
	"time"

	"tradepost/internal/models"
	"tradepost/internal/repository"
	"tradepost/internal/slugger"

	"gorm.io/gorm"
)

// ProductService provides listing business logic.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

// CreateProductInput is the input for posting a listing. Image fields carry
// stored file references; the server layer handles the upload itself.
type CreateProductInput struct {
	Name          string  `validate:"required,max=100"`
	Description   string  `validate:"required"`
	Price         float64 `validate:"gte=0"`
	Details       string  `validate:"max=255"`
	Brand         string  `validate:"max=255"`
	PostedIn      string  `validate:"max=255"`
	CategoryID    uint    `validate:"required"`
	OwnerEmail    string  `validate:"required,email"`
	OwnerPicture  string
	FeaturedImage string
	Images        []string
}

// NewProductService returns a new ProductService.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

// CreateProduct posts a new listing for the owner, capturing the owner's
// email and picture on the record. Listings get an opaque token slug.
func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if err := validate.Struct(in); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Category", in.CategoryID)
		}
		return nil, err
	}

	owner, err := s.userRepo.GetByEmail(ctx, in.OwnerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", in.OwnerEmail)
		}
		return nil, err
	}

	product := &models.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Slug:          slugger.Token(),
		Details:       in.Details,
		Brand:         in.Brand,
		PostedIn:      in.PostedIn,
		FeaturedImage: in.FeaturedImage,
		PostedDate:    time.Now(),
		OwnerPicture:  in.OwnerPicture,
		OwnerEmail:    owner.Email,
		OwnerID:       owner.ID,
		CategoryID:    &category.ID,
	}
	for _, image := range in.Images {
		product.Images = append(product.Images, models.ProductImage{Image: image})
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Featured returns the curated front-page listings.
func (s *ProductService) Featured(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.ListFeatured(ctx)
}

// Fresh returns up to twelve of the newest active listings.
func (s *ProductService) Fresh(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.ListFresh(ctx)
}

// Detail returns the listing published under slug.
func (s *ProductService) Detail(ctx context.Context, slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Product", slug)
		}
		return nil, err
	}
	return product, nil
}

// Delete removes a listing and its gallery.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	err := s.productRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Product", id)
	}
	return err
}

// UserAds returns every listing the owner has posted, newest first.
func (s *ProductService) UserAds(ctx context.Context, email string) ([]models.Product, error) {
	return s.productRepo.ListByOwnerEmail(ctx, email)
}

// Search matches active listings on name, brand, or description.
func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.productRepo.Search(ctx, query)
}
