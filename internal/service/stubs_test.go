package service

import (
	"context"
	"testing"

	"tradepost/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Function-field stubs for the repository interfaces. noop* constructors
// return stubs whose every call fails the test, so each test wires exactly
// the calls it expects.

type userRepoStub struct {
	t               *testing.T
	createFn        func(ctx context.Context, user *models.User) error
	getByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
}

func noopUserRepo(t *testing.T) *userRepoStub { return &userRepoStub{t: t} }

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.createFn == nil {
		s.t.Fatal("unexpected call to UserRepository.Create")
	}
	return s.createFn(ctx, user)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDFn == nil {
		s.t.Fatal("unexpected call to UserRepository.GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn == nil {
		s.t.Fatal("unexpected call to UserRepository.GetByEmail")
	}
	return s.getByEmailFn(ctx, email)
}

func (s *userRepoStub) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if s.existsByEmailFn == nil {
		s.t.Fatal("unexpected call to UserRepository.ExistsByEmail")
	}
	return s.existsByEmailFn(ctx, email)
}

type productRepoStub struct {
	t                  *testing.T
	createFn           func(ctx context.Context, product *models.Product) error
	getByIDFn          func(ctx context.Context, id uint) (*models.Product, error)
	getBySlugFn        func(ctx context.Context, slug string) (*models.Product, error)
	deleteFn           func(ctx context.Context, id uint) error
	listFeaturedFn     func(ctx context.Context) ([]models.Product, error)
	listFreshFn        func(ctx context.Context) ([]models.Product, error)
	listByOwnerEmailFn func(ctx context.Context, email string) ([]models.Product, error)
	searchFn           func(ctx context.Context, query string) ([]models.Product, error)
	slugExistsFn       func(ctx context.Context, slug string) (bool, error)
}

func noopProductRepo(t *testing.T) *productRepoStub { return &productRepoStub{t: t} }

func (s *productRepoStub) Create(ctx context.Context, product *models.Product) error {
	if s.createFn == nil {
		s.t.Fatal("unexpected call to ProductRepository.Create")
	}
	return s.createFn(ctx, product)
}

func (s *productRepoStub) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	if s.getByIDFn == nil {
		s.t.Fatal("unexpected call to ProductRepository.GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *productRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if s.getBySlugFn == nil {
		s.t.Fatal("unexpected call to ProductRepository.GetBySlug")
	}
	return s.getBySlugFn(ctx, slug)
}

func (s *productRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn == nil {
		s.t.Fatal("unexpected call to ProductRepository.Delete")
	}
	return s.deleteFn(ctx, id)
}

func (s *productRepoStub) ListFeatured(ctx context.Context) ([]models.Product, error) {
	if s.listFeaturedFn == nil {
		s.t.Fatal("unexpected call to ProductRepository.ListFeatured")
	}
	return s.listFeaturedFn(ctx)
}

func (s *productRepoStub) ListFresh(ctx context.Context) ([]models.Product, error) {
	if s.listFreshFn == nil {
		s.t.Fatal("unexpected call to ProductRepository.ListFresh")
	}
	return s.listFreshFn(ctx)
}

func (s *productRepoStub) ListByOwnerEmail(ctx context.Context, email string) ([]models.Product, error) {
	if s.listByOwnerEmailFn == nil {
		s.t.Fatal("unexpected call to ProductRepository.ListByOwnerEmail")
	}
	return s.listByOwnerEmailFn(ctx, email)
}

func (s *productRepoStub) Search(ctx context.Context, query string) ([]models.Product, error) {
	if s.searchFn == nil {
		s.t.Fatal("unexpected call to ProductRepository.Search")
	}
	return s.searchFn(ctx, query)
}

func (s *productRepoStub) SlugExists(ctx context.Context, slug string) (bool, error) {
	if s.slugExistsFn == nil {
		s.t.Fatal("unexpected call to ProductRepository.SlugExists")
	}
	return s.slugExistsFn(ctx, slug)
}

type categoryRepoStub struct {
	t            *testing.T
	createFn     func(ctx context.Context, category *models.Category) error
	listFn       func(ctx context.Context) ([]models.Category, error)
	getByIDFn    func(ctx context.Context, id uint) (*models.Category, error)
	getBySlugFn  func(ctx context.Context, slug string) (*models.Category, error)
	slugExistsFn func(ctx context.Context, slug string) (bool, error)
}

func noopCategoryRepo(t *testing.T) *categoryRepoStub { return &categoryRepoStub{t: t} }

func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	if s.createFn == nil {
		s.t.Fatal("unexpected call to CategoryRepository.Create")
	}
	return s.createFn(ctx, category)
}

func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	if s.listFn == nil {
		s.t.Fatal("unexpected call to CategoryRepository.List")
	}
	return s.listFn(ctx)
}

func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	if s.getByIDFn == nil {
		s.t.Fatal("unexpected call to CategoryRepository.GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *categoryRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if s.getBySlugFn == nil {
		s.t.Fatal("unexpected call to CategoryRepository.GetBySlug")
	}
	return s.getBySlugFn(ctx, slug)
}

func (s *categoryRepoStub) SlugExists(ctx context.Context, slug string) (bool, error) {
	if s.slugExistsFn == nil {
		s.t.Fatal("unexpected call to CategoryRepository.SlugExists")
	}
	return s.slugExistsFn(ctx, slug)
}

type wishlistRepoStub struct {
	t               *testing.T
	getOrCreateFn   func(ctx context.Context, userID, productID uint) (*models.Wishlist, bool, error)
	deleteFn        func(ctx context.Context, userID, productID uint) error
	listProductsFn  func(ctx context.Context, userID uint) ([]models.Product, error)
	wishlistedIDsFn func(ctx context.Context, userID uint, productIDs []uint) (map[uint]bool, error)
}

func noopWishlistRepo(t *testing.T) *wishlistRepoStub { return &wishlistRepoStub{t: t} }

func (s *wishlistRepoStub) GetOrCreate(ctx context.Context, userID, productID uint) (*models.Wishlist, bool, error) {
	if s.getOrCreateFn == nil {
		s.t.Fatal("unexpected call to WishlistRepository.GetOrCreate")
	}
	return s.getOrCreateFn(ctx, userID, productID)
}

func (s *wishlistRepoStub) Delete(ctx context.Context, userID, productID uint) error {
	if s.deleteFn == nil {
		s.t.Fatal("unexpected call to WishlistRepository.Delete")
	}
	return s.deleteFn(ctx, userID, productID)
}

func (s *wishlistRepoStub) ListProducts(ctx context.Context, userID uint) ([]models.Product, error) {
	if s.listProductsFn == nil {
		s.t.Fatal("unexpected call to WishlistRepository.ListProducts")
	}
	return s.listProductsFn(ctx, userID)
}

func (s *wishlistRepoStub) WishlistedIDs(ctx context.Context, userID uint, productIDs []uint) (map[uint]bool, error) {
	if s.wishlistedIDsFn == nil {
		s.t.Fatal("unexpected call to WishlistRepository.WishlistedIDs")
	}
	return s.wishlistedIDsFn(ctx, userID, productIDs)
}

type chatRepoStub struct {
	t               *testing.T
	getOrCreateFn   func(ctx context.Context, chat *models.Chat) (*models.Chat, bool, error)
	getByIDFn       func(ctx context.Context, id uint) (*models.Chat, error)
	getBySlugFn     func(ctx context.Context, slug string) (*models.Chat, error)
	listForUserFn   func(ctx context.Context, userID uint) ([]models.Chat, error)
	createMessageFn func(ctx context.Context, message *models.Message) error
}

func noopChatRepo(t *testing.T) *chatRepoStub { return &chatRepoStub{t: t} }

func (s *chatRepoStub) GetOrCreate(ctx context.Context, chat *models.Chat) (*models.Chat, bool, error) {
	if s.getOrCreateFn == nil {
		s.t.Fatal("unexpected call to ChatRepository.GetOrCreate")
	}
	return s.getOrCreateFn(ctx, chat)
}

func (s *chatRepoStub) GetByID(ctx context.Context, id uint) (*models.Chat, error) {
	if s.getByIDFn == nil {
		s.t.Fatal("unexpected call to ChatRepository.GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *chatRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Chat, error) {
	if s.getBySlugFn == nil {
		s.t.Fatal("unexpected call to ChatRepository.GetBySlug")
	}
	return s.getBySlugFn(ctx, slug)
}

func (s *chatRepoStub) ListForUser(ctx context.Context, userID uint) ([]models.Chat, error) {
	if s.listForUserFn == nil {
		s.t.Fatal("unexpected call to ChatRepository.ListForUser")
	}
	return s.listForUserFn(ctx, userID)
}

func (s *chatRepoStub) CreateMessage(ctx context.Context, message *models.Message) error {
	if s.createMessageFn == nil {
		s.t.Fatal("unexpected call to ChatRepository.CreateMessage")
	}
	return s.createMessageFn(ctx, message)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, models.IsCode(err, code), "want %s, got %v", code, err)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertCode(t, err, models.CodeValidation)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertCode(t, err, models.CodeNotFound)
}

func assertConflictError(t *testing.T, err error) {
	t.Helper()
	assertCode(t, err, models.CodeConflict)
}
