// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"tradepost/internal/models"
	"tradepost/internal/slugger"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a generated identity.
func (f *Factory) CreateUser() (*models.User, error) {
	person := gofakeit.Person()
	user := &models.User{
		Username:          gofakeit.Username(),
		Email:             gofakeit.Email(),
		FirstName:         person.FirstName,
		LastName:          person.LastName,
		ProfilePictureURL: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProduct persists a listing owned by owner in the given category,
// with a posting date spread over the last 90 days.
func (f *Factory) CreateProduct(owner *models.User, category *models.Category) (*models.Product, error) {
	posted := time.Now().Add(-time.Duration(f.rng.Intn(90*24)) * time.Hour)
	product := &models.Product{
		Name:          gofakeit.ProductName(),
		Description:   gofakeit.Paragraph(1, 3, 8, "\n"),
		Price:         gofakeit.Price(5, 2500),
		Slug:          slugger.Token(),
		Details:       gofakeit.Sentence(6),
		Brand:         gofakeit.Company(),
		PostedIn:      gofakeit.City(),
		FeaturedImage: fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		PostedDate:    posted,
		Featured:      f.rng.Intn(5) == 0,
		OwnerPicture:  owner.ProfilePictureURL,
		OwnerEmail:    owner.Email,
		OwnerID:       owner.ID,
		CategoryID:    &category.ID,
	}
	for i := 0; i < 1+f.rng.Intn(3); i++ {
		product.Images = append(product.Images, models.ProductImage{
			Image: fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		})
	}
	if err := f.db.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// CreateChat persists a conversation about product between buyer and the
// product's owner, with a few messages exchanged.
func (f *Factory) CreateChat(product *models.Product, buyer *models.User, messageCount int) (*models.Chat, error) {
	chat := &models.Chat{
		Slug:      slugger.Token(),
		ProductID: product.ID,
		BuyerID:   buyer.ID,
		SellerID:  product.OwnerID,
	}
	if err := f.db.Create(chat).Error; err != nil {
		return nil, err
	}

	senders := []uint{buyer.ID, product.OwnerID}
	base := time.Now().Add(-time.Duration(messageCount) * time.Minute)
	for i := 0; i < messageCount; i++ {
		message := &models.Message{
			ChatID:    chat.ID,
			SenderID:  senders[i%2],
			Text:      gofakeit.Sentence(8),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		if err := f.db.Create(message).Error; err != nil {
			return nil, err
		}
	}
	return chat, nil
}

// CreateWishlistEntry saves product for user, ignoring duplicates.
func (f *Factory) CreateWishlistEntry(user *models.User, product *models.Product) error {
	entry := &models.Wishlist{UserID: user.ID, ProductID: product.ID}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(entry).Error
}
