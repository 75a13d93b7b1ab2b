package views

import (
	"time"

	"tradepost/internal/models"
)

// MessageView is the shape of a single chat message.
type MessageView struct {
	ID        uint      `json:"id"`
	ChatID    uint      `json:"chat"`
	Sender    UserView  `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatView is the full conversation shape: product summary, both parties,
// the ordered message history and the computed last message.
type ChatView struct {
	ID          uint           `json:"id"`
	Slug        string         `json:"slug"`
	Product     ProductSummary `json:"product"`
	Buyer       UserView       `json:"buyer"`
	Seller      UserView       `json:"seller"`
	LastMessage *MessageView   `json:"last_message"`
	Messages    []MessageView  `json:"messages"`
}

// BuildMessage shapes a message with its preloaded sender.
func BuildMessage(m *models.Message, ctx Context) MessageView {
	return MessageView{
		ID:        m.ID,
		ChatID:    m.ChatID,
		Sender:    BuildUser(&m.Sender, ctx),
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

// BuildChat shapes a chat with its preloaded product, parties and messages.
// LastMessage is the highest-timestamp message, nil when the chat has none.
func BuildChat(chat *models.Chat, ctx Context) ChatView {
	messages := make([]MessageView, len(chat.Messages))
	for i := range chat.Messages {
		messages[i] = BuildMessage(&chat.Messages[i], ctx)
	}

	var last *MessageView
	for i := range messages {
		if last == nil || !messages[i].Timestamp.Before(last.Timestamp) {
			last = &messages[i]
		}
	}

	return ChatView{
		ID:          chat.ID,
		Slug:        chat.Slug,
		Product:     BuildProductSummary(&chat.Product),
		Buyer:       BuildUser(&chat.Buyer, ctx),
		Seller:      BuildUser(&chat.Seller, ctx),
		LastMessage: last,
		Messages:    messages,
	}
}

// BuildChats shapes a chat slice, preserving order.
func BuildChats(chats []models.Chat, ctx Context) []ChatView {
	out := make([]ChatView, len(chats))
	for i := range chats {
		out[i] = BuildChat(&chats[i], ctx)
	}
	return out
}
