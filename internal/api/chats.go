package api

import (
	"context"
	"net/http"

	"github.com/Limpiar-Hub/portal-core/internal/models"
)

type StartSupportInput struct {
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Text     string `json:"text"`
}

type StartSupportResult struct {
	Chat   models.Chat   `json:"chat"`
	Ticket models.Ticket `json:"ticket"`
}

type ReplyInput struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

func (c *Client) ChatThreads(ctx context.Context, userID string) ([]models.Chat, error) {
	var out []models.Chat
	err := c.get(ctx, "/chats/threads/user/"+userID, &out)
	return out, err
}

func (c *Client) SupportMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	var out []models.Message
	err := c.get(ctx, "/chats/support/messages/"+chatID, &out)
	return out, err
}

// StartSupport opens a support conversation and its backing ticket in
// one call.
func (c *Client) StartSupport(ctx context.Context, input StartSupportInput) (StartSupportResult, error) {
	if input.UserID == "" || input.Text == "" {
		return StartSupportResult{}, &Error{Status: http.StatusBadRequest, Code: "invalid_request", Message: "user_id and text are required"}
	}
	var out StartSupportResult
	err := c.post(ctx, "/chats/support/start", input, &out)
	return out, err
}

func (c *Client) Reply(ctx context.Context, input ReplyInput) (models.Message, error) {
	if input.ChatID == "" || input.Text == "" {
		return models.Message{}, &Error{Status: http.StatusBadRequest, Code: "invalid_request", Message: "chat_id and text are required"}
	}
	var out models.Message
	err := c.post(ctx, "/chats/support/reply", input, &out)
	return out, err
}

func (c *Client) MarkChatRead(ctx context.Context, chatID string) error {
	return c.patch(ctx, "/chats/support/mark-read/"+chatID, nil, nil)
}
