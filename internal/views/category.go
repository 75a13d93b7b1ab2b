package views

import "tradepost/internal/models"

// CategoryItem is the browse-list shape for categories.
type CategoryItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Slug     string `json:"slug"`
	Icon     string `json:"icon,omitempty"`
	Position int    `json:"position"`
}

// CategoryDetail is the single-category shape with its products nested as
// wishlist-aware summaries.
type CategoryDetail struct {
	ID       uint                     `json:"id"`
	Name     string                   `json:"name"`
	Image    string                   `json:"image,omitempty"`
	Products []ProductWishlistSummary `json:"products"`
}

// BuildCategoryItem shapes a category for list contexts.
func BuildCategoryItem(c *models.Category) CategoryItem {
	return CategoryItem{
		ID:       c.ID,
		Name:     c.Name,
		Image:    c.Image,
		Slug:     c.Slug,
		Icon:     c.Icon,
		Position: c.Position,
	}
}

// BuildCategoryItems shapes a category slice, preserving order.
func BuildCategoryItems(categories []models.Category) []CategoryItem {
	out := make([]CategoryItem, len(categories))
	for i := range categories {
		out[i] = BuildCategoryItem(&categories[i])
	}
	return out
}

// BuildCategoryDetail shapes a category with its preloaded products.
func BuildCategoryDetail(c *models.Category, ctx Context) CategoryDetail {
	return CategoryDetail{
		ID:       c.ID,
		Name:     c.Name,
		Image:    c.Image,
		Products: BuildProductWishlistSummaries(c.Products, ctx),
	}
}
