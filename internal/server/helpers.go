package server

import (
	"errors"

	"tradepost/internal/models"
	"tradepost/internal/service"
	"tradepost/internal/views"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// mapServiceError translates service error codes into HTTP statuses.
func mapServiceError(err error) int {
	switch {
	case models.IsCode(err, models.CodeNotFound):
		return fiber.StatusNotFound
	case models.IsCode(err, models.CodeValidation):
		return fiber.StatusBadRequest
	case models.IsCode(err, models.CodeConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// viewContext builds the request-scoped view inputs: the current user
// resolved from the optional bearer identity, the base URL for file
// references, and the wishlist membership for the products about to be
// shaped. An unknown or missing identity yields an anonymous context.
func (s *Server) viewContext(c *fiber.Ctx, productIDs []uint) (views.Context, error) {
	ctx := views.Context{BaseURL: c.BaseURL()}
	if s.config != nil && s.config.BaseURL != "" {
		ctx.BaseURL = s.config.BaseURL
	}

	email, _ := c.Locals("userEmail").(string)
	if email == "" {
		return ctx, nil
	}

	user, err := s.userRepo.GetByEmail(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx, nil
		}
		return ctx, err
	}
	ctx.User = user

	if len(productIDs) > 0 {
		wishlisted, err := s.wishlistSvc().WishlistedIDs(c.UserContext(), user.ID, productIDs)
		if err != nil {
			return ctx, err
		}
		ctx.Wishlisted = wishlisted
	}
	return ctx, nil
}

// productIDs collects the IDs of a product slice for wishlist lookups.
func productIDs(products []models.Product) []uint {
	ids := make([]uint, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

// Lazy service accessors so tests can construct a Server from repositories
// alone.

func (s *Server) userSvc() *service.UserService {
	if s.userService == nil {
		s.userService = service.NewUserService(s.userRepo)
	}
	return s.userService
}

func (s *Server) productSvc() *service.ProductService {
	if s.productService == nil {
		s.productService = service.NewProductService(s.productRepo, s.categoryRepo, s.userRepo)
	}
	return s.productService
}

func (s *Server) categorySvc() *service.CategoryService {
	if s.categoryService == nil {
		s.categoryService = service.NewCategoryService(s.categoryRepo)
	}
	return s.categoryService
}

func (s *Server) chatSvc() *service.ChatService {
	if s.chatService == nil {
		s.chatService = service.NewChatService(s.chatRepo, s.productRepo, s.userRepo)
	}
	return s.chatService
}

func (s *Server) wishlistSvc() *service.WishlistService {
	if s.wishlistService == nil {
		s.wishlistService = service.NewWishlistService(s.wishlistRepo, s.productRepo, s.userRepo)
	}
	return s.wishlistService
}
