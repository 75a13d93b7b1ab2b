package server

import (
	"tradepost/internal/models"
	"tradepost/internal/service"
	"tradepost/internal/views"

	"github.com/gofiber/fiber/v2"
)

// ListCategories handles GET /api/categories
func (s *Server) ListCategories(c *fiber.Ctx) error {
	categories, err := s.categorySvc().List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(views.BuildCategoryItems(categories))
}

// CreateCategory handles POST /api/categories
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Image    string `json:"image"`
		Icon     string `json:"icon"`
		Featured bool   `json:"featured"`
		Position int    `json:"position"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category, err := s.categorySvc().Create(c.UserContext(), service.CreateCategoryInput{
		Name:     req.Name,
		Image:    req.Image,
		Icon:     req.Icon,
		Featured: req.Featured,
		Position: req.Position,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(views.BuildCategoryItem(category))
}

// CategoryDetail handles GET /api/categories/:slug
func (s *Server) CategoryDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	category, err := s.categorySvc().Detail(c.UserContext(), slug)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	ctx, err := s.viewContext(c, productIDs(category.Products))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(views.BuildCategoryDetail(category, ctx))
}
