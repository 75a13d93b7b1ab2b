package service

import (
	"context"
	"errors"

	"tradepost/internal/database"
	"tradepost/internal/models"
	"tradepost/internal/repository"
	"tradepost/internal/slugger"

	"gorm.io/gorm"
)

// CategoryService provides category business logic.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// CreateCategoryInput is the input for registering a category.
type CreateCategoryInput struct {
	Name     string `validate:"required,max=100"`
	Image    string
	Icon     string
	Featured bool
	Position int
}

// NewCategoryService returns a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create registers a category, deriving a unique slug from its name. The
// collision check walks the existing category slugs; a store-level duplicate
// from a concurrent creation maps to a conflict.
func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	if err := validate.Struct(in); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	var lookupErr error
	slug, err := slugger.Unique(in.Name, func(candidate string) bool {
		exists, err := s.categoryRepo.SlugExists(ctx, candidate)
		if err != nil {
			lookupErr = err
			return false
		}
		return exists
	})
	if err != nil {
		return nil, err
	}
	if lookupErr != nil {
		return nil, lookupErr
	}

	category := &models.Category{
		Name:     in.Name,
		Slug:     slug,
		Image:    in.Image,
		Icon:     in.Icon,
		Featured: in.Featured,
		Position: in.Position,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, models.NewConflictError("A category with this slug already exists")
		}
		return nil, err
	}
	return category, nil
}

// List returns all categories in display order.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

// Detail returns the category published under slug with its products.
func (s *CategoryService) Detail(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Category", slug)
		}
		return nil, err
	}
	return category, nil
}
