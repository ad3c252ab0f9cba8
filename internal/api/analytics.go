package api

import (
	"context"

	"github.com/Limpiar-Hub/portal-core/internal/models"
)

func (c *Client) PropertyManagerAnalytics(ctx context.Context, managerID string) (models.AnalyticsSummary, error) {
	var out models.AnalyticsSummary
	err := c.get(ctx, "/analytics/property-manager/"+managerID, &out)
	return out, err
}

func (c *Client) BusinessAnalytics(ctx context.Context, businessID string) (models.AnalyticsSummary, error) {
	var out models.AnalyticsSummary
	err := c.get(ctx, "/analytics/business/"+businessID, &out)
	return out, err
}

// PushToSheets asks the backend to export a report type to the shared
// spreadsheet.
func (c *Client) PushToSheets(ctx context.Context, reportType string) error {
	return c.post(ctx, "/sheets/push-to-sheets/"+reportType, nil, nil)
}
