package server

import (
	"tradepost/internal/models"
	"tradepost/internal/views"

	"github.com/gofiber/fiber/v2"
)

// ToggleWishlist handles POST /api/wishlist/toggle
func (s *Server) ToggleWishlist(c *fiber.Ctx) error {
	var req struct {
		ProductID uint   `json:"product_id"`
		Email     string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	status, err := s.wishlistSvc().Toggle(c.UserContext(), req.Email, req.ProductID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(fiber.Map{"status": status})
}

// WishlistItems handles GET /api/wishlist/:email
func (s *Server) WishlistItems(c *fiber.Ctx) error {
	email := c.Params("email")

	products, err := s.wishlistSvc().List(c.UserContext(), email)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(views.BuildProductSummaries(products))
}
