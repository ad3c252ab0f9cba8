package api

import (
	"context"
	"net/http"

	"github.com/Limpiar-Hub/portal-core/internal/models"
)

type ProcessRefundInput struct {
	RefundID string `json:"refund_id"`
	Approve  bool   `json:"approve"`
	Reason   string `json:"reason,omitempty"`
}

func (c *Client) WalletTransactions(ctx context.Context) ([]models.WalletTransaction, error) {
	var out []models.WalletTransaction
	err := c.get(ctx, "/wallets/", &out)
	return out, err
}

func (c *Client) Refunds(ctx context.Context) ([]models.Refund, error) {
	var out []models.Refund
	err := c.get(ctx, "/wallets/refunds", &out)
	return out, err
}

func (c *Client) ProcessRefund(ctx context.Context, input ProcessRefundInput) (models.Refund, error) {
	if input.RefundID == "" {
		return models.Refund{}, &Error{Status: http.StatusBadRequest, Code: "invalid_request", Message: "refund_id is required"}
	}
	var out models.Refund
	err := c.put(ctx, "/wallets/process-refund", input, &out)
	return out, err
}
