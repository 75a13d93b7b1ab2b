// Package views transforms stored records into the client-facing shapes
// each endpoint returns. Every builder is a pure function over the record
// and a request-scoped Context; missing optional relations never fail,
// they simply shape to zero values or nil.
package views

import (
	"strings"
	"time"

	"tradepost/internal/models"
)

// Context carries the request-scoped inputs view building depends on: the
// current user (nil when anonymous), the absolute base URL for resolving
// relative file references, and the set of product IDs the current user has
// wishlisted. Handlers thread it explicitly; nothing here reads globals.
type Context struct {
	User       *models.User
	BaseURL    string
	Wishlisted map[uint]bool
}

// IsWishlisted reports whether the current user has the product saved.
// Anonymous requests always get false.
func (ctx Context) IsWishlisted(productID uint) bool {
	if ctx.User == nil {
		return false
	}
	return ctx.Wishlisted[productID]
}

// AbsoluteURL resolves a stored file reference into an absolute URL. Already
// absolute references pass through; empty ones stay empty.
func (ctx Context) AbsoluteURL(ref string) string {
	if ref == "" || strings.Contains(ref, "://") {
		return ref
	}
	return strings.TrimSuffix(ctx.BaseURL, "/") + "/" + strings.TrimPrefix(ref, "/")
}

// UserView is the basic identity shape nested under products and chats.
type UserView struct {
	ID                uint   `json:"id"`
	Email             string `json:"email"`
	Username          string `json:"username"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

// BuildUser shapes a user record, resolving the profile picture against the
// request's base URL when the stored reference is relative.
func BuildUser(u *models.User, ctx Context) UserView {
	return UserView{
		ID:                u.ID,
		Email:             u.Email,
		Username:          u.Username,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfilePictureURL: ctx.AbsoluteURL(u.ProfilePictureURL),
	}
}

// ProductSummary is the flat listing shape used by fresh recommendations
// and wishlist listings.
type ProductSummary struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Price         float64   `json:"price"`
	Details       string    `json:"details"`
	PostedIn      string    `json:"posted_in"`
	PostedDate    time.Time `json:"posted_date"`
	Description   string    `json:"description"`
	Brand         string    `json:"brand"`
	CategoryID    *uint     `json:"category"`
	OwnerID       uint      `json:"owner"`
	FeaturedImage string    `json:"featured_image,omitempty"`
	Featured      bool      `json:"featured"`
	OwnerPicture  string    `json:"owner_picture,omitempty"`
	OwnerEmail    string    `json:"owner_email,omitempty"`
}

// ProductWishlistSummary is ProductSummary plus the computed wishlist flag,
// used by featured listings and search. OwnerEmail is not exposed here.
type ProductWishlistSummary struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Price         float64   `json:"price"`
	Details       string    `json:"details"`
	PostedIn      string    `json:"posted_in"`
	PostedDate    time.Time `json:"posted_date"`
	Description   string    `json:"description"`
	Brand         string    `json:"brand"`
	CategoryID    *uint     `json:"category"`
	OwnerID       uint      `json:"owner"`
	FeaturedImage string    `json:"featured_image,omitempty"`
	Featured      bool      `json:"featured"`
	IsWishlisted  bool      `json:"is_wishlisted"`
	OwnerPicture  string    `json:"owner_picture,omitempty"`
}

// ProductImageView is one gallery image entry under a product detail.
type ProductImageView struct {
	ID    uint   `json:"id"`
	Image string `json:"image"`
}

// ProductDetail is the full shape for a single-product page: nested owner,
// image gallery, and the computed wishlist flag.
type ProductDetail struct {
	ID            uint               `json:"id"`
	Name          string             `json:"name"`
	Slug          string             `json:"slug"`
	FeaturedImage string             `json:"featured_image,omitempty"`
	Price         float64            `json:"price"`
	Details       string             `json:"details"`
	PostedIn      string             `json:"posted_in"`
	PostedDate    time.Time          `json:"posted_date"`
	Description   string             `json:"description"`
	CategoryID    *uint              `json:"category"`
	Featured      bool               `json:"featured"`
	Images        []ProductImageView `json:"images"`
	Owner         UserView           `json:"owner"`
	IsWishlisted  bool               `json:"is_wishlisted"`
	OwnerPicture  string             `json:"owner_picture,omitempty"`
}

// BuildProductSummary shapes a product for flat list contexts.
func BuildProductSummary(p *models.Product) ProductSummary {
	return ProductSummary{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Price:         p.Price,
		Details:       p.Details,
		PostedIn:      p.PostedIn,
		PostedDate:    p.PostedDate,
		Description:   p.Description,
		Brand:         p.Brand,
		CategoryID:    p.CategoryID,
		OwnerID:       p.OwnerID,
		FeaturedImage: p.FeaturedImage,
		Featured:      p.Featured,
		OwnerPicture:  p.OwnerPicture,
		OwnerEmail:    p.OwnerEmail,
	}
}

// BuildProductSummaries shapes a product slice, preserving order.
func BuildProductSummaries(products []models.Product) []ProductSummary {
	out := make([]ProductSummary, len(products))
	for i := range products {
		out[i] = BuildProductSummary(&products[i])
	}
	return out
}

// BuildProductWishlistSummary shapes a product for list contexts that carry
// the per-user wishlist flag.
func BuildProductWishlistSummary(p *models.Product, ctx Context) ProductWishlistSummary {
	return ProductWishlistSummary{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Price:         p.Price,
		Details:       p.Details,
		PostedIn:      p.PostedIn,
		PostedDate:    p.PostedDate,
		Description:   p.Description,
		Brand:         p.Brand,
		CategoryID:    p.CategoryID,
		OwnerID:       p.OwnerID,
		FeaturedImage: p.FeaturedImage,
		Featured:      p.Featured,
		IsWishlisted:  ctx.IsWishlisted(p.ID),
		OwnerPicture:  p.OwnerPicture,
	}
}

// BuildProductWishlistSummaries shapes a product slice with wishlist flags.
func BuildProductWishlistSummaries(products []models.Product, ctx Context) []ProductWishlistSummary {
	out := make([]ProductWishlistSummary, len(products))
	for i := range products {
		out[i] = BuildProductWishlistSummary(&products[i], ctx)
	}
	return out
}

// BuildProductDetail shapes a product with its preloaded owner and images.
func BuildProductDetail(p *models.Product, ctx Context) ProductDetail {
	images := make([]ProductImageView, len(p.Images))
	for i, img := range p.Images {
		images[i] = ProductImageView{ID: img.ID, Image: img.Image}
	}

	return ProductDetail{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		FeaturedImage: p.FeaturedImage,
		Price:         p.Price,
		Details:       p.Details,
		PostedIn:      p.PostedIn,
		PostedDate:    p.PostedDate,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		Featured:      p.Featured,
		Images:        images,
		Owner:         BuildUser(&p.Owner, ctx),
		IsWishlisted:  ctx.IsWishlisted(p.ID),
		OwnerPicture:  p.OwnerPicture,
	}
}
