package client

import (
	"context"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Get("/notifications")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return decodeList[models.Notification](resp.Body(), "notifications")
}

// MarkAllNotificationsRead stamps read_at on every unread entry. The
// caller re-fetches afterwards; there is no optimistic local update.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Post("/notifications/mark-all-read")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

func (c *Client) ClearNotifications(ctx context.Context) error {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Delete("/notifications")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Delete("/notifications/" + id)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}
