package server

import (
	"strconv"
	"strings"

	"tradepost/internal/models"
	"tradepost/internal/service"
	"tradepost/internal/views"

	"github.com/gofiber/fiber/v2"
)

// CreateProduct handles POST /api/products. The body is multipart: listing
// fields plus any number of gallery images under the "images" key. The
// first image doubles as the featured image.
func (s *Server) CreateProduct(c *fiber.Ctx) error {
	price, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("price")), 64)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid price"))
	}
	categoryID, err := strconv.ParseUint(strings.TrimSpace(c.FormValue("category_id")), 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid category ID"))
	}

	in := service.CreateProductInput{
		Name:         c.FormValue("name"),
		Description:  c.FormValue("description"),
		Price:        price,
		Details:      c.FormValue("details"),
		Brand:        c.FormValue("brand"),
		PostedIn:     c.FormValue("posted_in"),
		CategoryID:   uint(categoryID),
		OwnerEmail:   c.FormValue("owner_email"),
		OwnerPicture: c.FormValue("owner_picture_url"),
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		refs, err := s.saveUploads(c, form.File["images"])
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest, err)
		}
		in.Images = refs
		if len(refs) > 0 {
			in.FeaturedImage = refs[0]
		}
	}

	if _, err := s.productSvc().CreateProduct(c.UserContext(), in); err != nil {
		// Creation failures answer 400 with the underlying message,
		// except genuine lookups which keep their own status.
		status := mapServiceError(err)
		if status == fiber.StatusInternalServerError {
			status = fiber.StatusBadRequest
		}
		return models.RespondWithError(c, status, err)
	}

	return c.JSON(fiber.Map{"message": "Product created successfully"})
}

// FeaturedProducts handles GET /api/products
func (s *Server) FeaturedProducts(c *fiber.Ctx) error {
	products, err := s.productSvc().Featured(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	ctx, err := s.viewContext(c, productIDs(products))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(views.BuildProductWishlistSummaries(products, ctx))
}

// FreshProducts handles GET /api/products/fresh
func (s *Server) FreshProducts(c *fiber.Ctx) error {
	products, err := s.productSvc().Fresh(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(views.BuildProductSummaries(products))
}

// SearchProducts handles GET /api/products/search?q=...
func (s *Server) SearchProducts(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))

	products, err := s.productSvc().Search(c.UserContext(), query)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	ctx, err := s.viewContext(c, productIDs(products))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(views.BuildProductWishlistSummaries(products, ctx))
}

// ProductDetail handles GET /api/products/:slug
func (s *Server) ProductDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")

	product, err := s.productSvc().Detail(c.UserContext(), slug)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	ctx, err := s.viewContext(c, []uint{product.ID})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(views.BuildProductDetail(product, ctx))
}

// DeleteProduct handles DELETE /api/products/:id
func (s *Server) DeleteProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.productSvc().Delete(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
