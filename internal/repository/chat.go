package repository

import (
	"context"

	"tradepost/internal/cache"
	"tradepost/internal/database"
	"tradepost/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChatRepository defines the interface for chat and message data operations
type ChatRepository interface {
	// GetOrCreate atomically ensures a chat for the (product, buyer, seller)
	// triple and reports whether this call created it. The caller assigns
	// the slug before the insert; the stored slug wins on a lost race.
	GetOrCreate(ctx context.Context, chat *models.Chat) (*models.Chat, bool, error)
	GetByID(ctx context.Context, id uint) (*models.Chat, error)
	GetBySlug(ctx context.Context, slug string) (*models.Chat, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Chat, error)
	CreateMessage(ctx context.Context, message *models.Message) error
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// chatPreloads attaches the relations the full chat shape needs: product,
// both parties, and the message history in timestamp order with senders.
func chatPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Product").
		Preload("Buyer").
		Preload("Seller").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC, id ASC")
		}).
		Preload("Messages.Sender")
}

func (r *chatRepository) GetOrCreate(ctx context.Context, chat *models.Chat) (*models.Chat, bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(chat)
	if res.Error != nil && !database.IsUniqueViolation(res.Error) {
		return nil, false, res.Error
	}

	created := res.Error == nil && res.RowsAffected > 0
	if created {
		full, err := r.GetByID(ctx, chat.ID)
		return full, true, err
	}

	var existing models.Chat
	err := chatPreloads(r.db.WithContext(ctx)).
		Where("product_id = ? AND buyer_id = ? AND seller_id = ?", chat.ProductID, chat.BuyerID, chat.SellerID).
		First(&existing).Error
	if err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

func (r *chatRepository) GetByID(ctx context.Context, id uint) (*models.Chat, error) {
	var chat models.Chat
	if err := chatPreloads(r.db.WithContext(ctx)).First(&chat, id).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}

// GetBySlug returns the full chat shape. The shape is cached briefly;
// CreateMessage invalidates it so new messages show up immediately.
func (r *chatRepository) GetBySlug(ctx context.Context, slug string) (*models.Chat, error) {
	var chat models.Chat
	err := cache.Aside(ctx, cache.ChatKey(slug), &chat, cache.ChatTTL, func() error {
		return chatPreloads(r.db.WithContext(ctx)).
			Where("slug = ?", slug).
			First(&chat).Error
	})
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

// ListForUser returns every chat where the user is buyer or seller.
func (r *chatRepository) ListForUser(ctx context.Context, userID uint) ([]models.Chat, error) {
	var chats []models.Chat
	err := chatPreloads(r.db.WithContext(ctx)).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("id DESC").
		Find(&chats).Error
	return chats, err
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return err
	}

	if cache.GetClient() != nil {
		var chat models.Chat
		if err := r.db.WithContext(ctx).Select("slug").First(&chat, message.ChatID).Error; err == nil {
			cache.InvalidateChat(ctx, chat.Slug)
		}
	}

	// Reload with the sender attached for the response shape.
	return r.db.WithContext(ctx).Preload("Sender").First(message, message.ID).Error
}
