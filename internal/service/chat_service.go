package service

import (
	"context"
	"errors"

	"tradepost/internal/models"
	"tradepost/internal/repository"
	"tradepost/internal/slugger"

	"gorm.io/gorm"
)

// ChatService provides buyer/seller conversation business logic.
type ChatService struct {
	chatRepo    repository.ChatRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// StartChatInput is the input for opening a conversation about a product.
type StartChatInput struct {
	ProductID  uint
	BuyerEmail string
}

// SendMessageInput is the input for appending a message to a chat.
type SendMessageInput struct {
	ChatID      uint
	SenderEmail string
	Text        string
}

// NewChatService returns a new ChatService.
func NewChatService(
	chatRepo repository.ChatRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// Start opens a conversation between the buyer and the product's owner, or
// returns the existing one for that triple. Buyers cannot start a chat on
// their own listing.
func (s *ChatService) Start(ctx context.Context, in StartChatInput) (*models.Chat, error) {
	if in.ProductID == 0 || in.BuyerEmail == "" {
		return nil, models.NewValidationError("Product ID and buyer email are required")
	}

	product, err := s.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Product", in.ProductID)
		}
		return nil, err
	}

	buyer, err := s.userRepo.GetByEmail(ctx, in.BuyerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Buyer", in.BuyerEmail)
		}
		return nil, err
	}

	if buyer.ID == product.OwnerID {
		return nil, models.NewConflictError("Cannot start a chat on your own listing")
	}

	chat, _, err := s.chatRepo.GetOrCreate(ctx, &models.Chat{
		Slug:      slugger.Token(),
		ProductID: product.ID,
		BuyerID:   buyer.ID,
		SellerID:  product.OwnerID,
	})
	return chat, err
}

// SendMessage appends a message from sender to an existing chat.
func (s *ChatService) SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	if in.ChatID == 0 || in.SenderEmail == "" || in.Text == "" {
		return nil, models.NewValidationError("Chat ID, sender email and text are required")
	}

	chat, err := s.chatRepo.GetByID(ctx, in.ChatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Chat", in.ChatID)
		}
		return nil, err
	}

	sender, err := s.userRepo.GetByEmail(ctx, in.SenderEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Sender", in.SenderEmail)
		}
		return nil, err
	}

	message := &models.Message{
		ChatID:   chat.ID,
		SenderID: sender.ID,
		Text:     in.Text,
	}
	if err := s.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// BySlug returns the full conversation published under slug.
func (s *ChatService) BySlug(ctx context.Context, slug string) (*models.Chat, error) {
	chat, err := s.chatRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Chat", slug)
		}
		return nil, err
	}
	return chat, nil
}

// ListForEmail returns every conversation the user participates in, as
// buyer or seller.
func (s *ChatService) ListForEmail(ctx context.Context, email string) ([]models.Chat, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", email)
		}
		return nil, err
	}
	return s.chatRepo.ListForUser(ctx, user.ID)
}
