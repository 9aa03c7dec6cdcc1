package client

import (
	"context"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

// GetStats fetches the admin dashboard counters.
func (c *Client) GetStats(ctx context.Context) (models.Stats, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Get("/admin/stats")
	if err != nil {
		return models.Stats{}, err
	}
	if resp.IsError() {
		return models.Stats{}, apiError(resp)
	}
	return decodeOne[models.Stats](resp.Body(), "stats")
}
