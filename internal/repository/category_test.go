package repository

import (
	"testing"
	"time"

	"tradepost/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCategoryRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)

	require.NoError(t, repo.Create(testCtx, &models.Category{Name: "Books", Slug: "books", Position: 2}))
	require.NoError(t, repo.Create(testCtx, &models.Category{Name: "Audio", Slug: "audio", Position: 1}))

	categories, err := repo.List(testCtx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "audio", categories[0].Slug)
	assert.Equal(t, "books", categories[1].Slug)
}

func TestCategoryRepository_GetBySlugPreloadsProducts(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	owner := mustCreateUser(t, db, "seller@example.com")

	category := &models.Category{Name: "Books", Slug: "books"}
	require.NoError(t, repo.Create(testCtx, category))

	older := mustCreateProduct(t, db, owner, "older", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := mustCreateProduct(t, db, owner, "newer", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Model(older).Update("category_id", category.ID).Error)
	require.NoError(t, db.Model(newer).Update("category_id", category.ID).Error)

	got, err := repo.GetBySlug(testCtx, "books")
	require.NoError(t, err)
	require.Len(t, got.Products, 2)
	assert.Equal(t, "newer", got.Products[0].Slug)
	assert.Equal(t, "older", got.Products[1].Slug)
}

func TestCategoryRepository_GetBySlugNotFound(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))

	_, err := repo.GetBySlug(testCtx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryRepository_SlugExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	require.NoError(t, repo.Create(testCtx, &models.Category{Name: "Books", Slug: "books"}))

	exists, err := repo.SlugExists(testCtx, "books")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists(testCtx, "books-1")
	require.NoError(t, err)
	assert.False(t, exists)
}
