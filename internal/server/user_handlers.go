package server

import (
	"tradepost/internal/models"
	"tradepost/internal/service"
	"tradepost/internal/views"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /api/users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Username          string `json:"username"`
		Email             string `json:"email"`
		FirstName         string `json:"first_name"`
		LastName          string `json:"last_name"`
		ProfilePictureURL string `json:"profile_picture_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userSvc().CreateUser(c.UserContext(), service.CreateUserInput{
		Username:          req.Username,
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	ctx, err := s.viewContext(c, nil)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(views.BuildUser(user, ctx))
}

// UserExists handles GET /api/users/exists/:email. A missing account
// answers 404 with the boolean in the body, so clients can branch on either.
func (s *Server) UserExists(c *fiber.Ctx) error {
	email := c.Params("email")

	exists, err := s.userSvc().Exists(c.UserContext(), email)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	status := fiber.StatusOK
	if !exists {
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{"exists": exists})
}

// UserAds handles GET /api/users/:email/ads
func (s *Server) UserAds(c *fiber.Ctx) error {
	email := c.Params("email")

	products, err := s.productSvc().UserAds(c.UserContext(), email)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	ctx, err := s.viewContext(c, productIDs(products))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	details := make([]views.ProductDetail, len(products))
	for i := range products {
		details[i] = views.BuildProductDetail(&products[i], ctx)
	}
	return c.JSON(details)
}
