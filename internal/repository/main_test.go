package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tradepost/internal/database"
	"tradepost/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database migrated with the full
// model registry. Each test gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Username: email}
	require.NoError(t, db.Create(user).Error)
	return user
}

func mustCreateProduct(t *testing.T, db *gorm.DB, owner *models.User, slug string, posted time.Time) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       slug,
		Slug:       slug,
		Price:      10,
		OwnerID:    owner.ID,
		OwnerEmail: owner.Email,
		PostedDate: posted,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedProducts(t *testing.T, db *gorm.DB, owner *models.User, n int) []*models.Product {
	t.Helper()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	products := make([]*models.Product, n)
	for i := 0; i < n; i++ {
		products[i] = mustCreateProduct(t, db, owner,
			fmt.Sprintf("item-%d", i), base.Add(time.Duration(i)*time.Hour))
	}
	return products
}

var testCtx = context.Background()
