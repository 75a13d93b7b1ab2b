package server

import (
	"tradepost/internal/models"
	"tradepost/internal/service"
	"tradepost/internal/views"

	"github.com/gofiber/fiber/v2"
)

// StartChat handles POST /api/chats/start. Starting the same chat twice
// returns the stored conversation.
func (s *Server) StartChat(c *fiber.Ctx) error {
	var req struct {
		ProductID  uint   `json:"product"`
		BuyerEmail string `json:"buyer"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	chat, err := s.chatSvc().Start(c.UserContext(), service.StartChatInput{
		ProductID:  req.ProductID,
		BuyerEmail: req.BuyerEmail,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	ctx, err := s.viewContext(c, nil)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(views.BuildChat(chat, ctx))
}

// SendMessage handles POST /api/chats/send
func (s *Server) SendMessage(c *fiber.Ctx) error {
	var req struct {
		ChatID      uint   `json:"chat_id"`
		SenderEmail string `json:"sender_email"`
		Text        string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.chatSvc().SendMessage(c.UserContext(), service.SendMessageInput{
		ChatID:      req.ChatID,
		SenderEmail: req.SenderEmail,
		Text:        req.Text,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	ctx, err := s.viewContext(c, nil)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(views.BuildMessage(message, ctx))
}

// ChatBySlug handles GET /api/chats/slug/:slug
func (s *Server) ChatBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	chat, err := s.chatSvc().BySlug(c.UserContext(), slug)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	ctx, err := s.viewContext(c, nil)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(views.BuildChat(chat, ctx))
}

// UserChats handles GET /api/chats/user/:email
func (s *Server) UserChats(c *fiber.Ctx) error {
	email := c.Params("email")

	chats, err := s.chatSvc().ListForEmail(c.UserContext(), email)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	ctx, err := s.viewContext(c, nil)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(views.BuildChats(chats, ctx))
}
