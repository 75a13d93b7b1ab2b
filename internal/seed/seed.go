package seed

import (
	"log/slog"

	"tradepost/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the marketplace with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll wipes seeded data in dependency order.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.Message{},
		&models.Chat{},
		&models.Wishlist{},
		&models.ProductImage{},
		&models.Product{},
		&models.Category{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Where("1 = 1").Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedMarketplace creates users and listings spread across the built-in
// categories, with wishlist entries and a few buyer/seller conversations.
func (s *Seeder) SeedMarketplace(numUsers, numProducts int) error {
	if err := Categories(s.db); err != nil {
		return err
	}

	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return err
	}

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	products := make([]*models.Product, 0, numProducts)
	for i := 0; i < numProducts; i++ {
		owner := users[s.factory.rng.Intn(len(users))]
		category := &categories[s.factory.rng.Intn(len(categories))]
		product, err := s.factory.CreateProduct(owner, category)
		if err != nil {
			return err
		}
		products = append(products, product)
	}

	// Roughly a third of the users save a couple of listings and start a
	// conversation about one of them.
	for _, user := range users {
		if s.factory.rng.Intn(3) != 0 {
			continue
		}
		for i := 0; i < 2; i++ {
			product := products[s.factory.rng.Intn(len(products))]
			if product.OwnerID == user.ID {
				continue
			}
			if err := s.factory.CreateWishlistEntry(user, product); err != nil {
				return err
			}
		}
		product := products[s.factory.rng.Intn(len(products))]
		if product.OwnerID != user.ID {
			if _, err := s.factory.CreateChat(product, user, 2+s.factory.rng.Intn(5)); err != nil {
				return err
			}
		}
	}

	slog.Info("marketplace seeded",
		"users", len(users),
		"products", len(products),
		"categories", len(categories))
	return nil
}
