package api

import (
	"context"

	"github.com/Limpiar-Hub/portal-core/internal/models"
)

func (c *Client) ListCleaningBusinesses(ctx context.Context) ([]models.CleaningBusiness, error) {
	var out []models.CleaningBusiness
	err := c.get(ctx, "/users/cleaning-businesses", &out)
	return out, err
}

func (c *Client) GetCleaningBusiness(ctx context.Context, businessID string) (models.CleaningBusiness, error) {
	var out models.CleaningBusiness
	err := c.get(ctx, "/users/cleaning-business/"+businessID, &out)
	return out, err
}

// VerifyCleaningBusiness flips the admin verification flag.
func (c *Client) VerifyCleaningBusiness(ctx context.Context, businessID string, verified bool) (models.CleaningBusiness, error) {
	payload := map[string]bool{"verified": verified}
	var out models.CleaningBusiness
	err := c.patch(ctx, "/cleaning-businesses/"+businessID+"/verify", payload, &out)
	return out, err
}
