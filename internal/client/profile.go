package client

import (
	"context"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

func (c *Client) GetProfile(ctx context.Context) (models.User, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Get("/profile")
	if err != nil {
		return models.User{}, err
	}
	if resp.IsError() {
		return models.User{}, apiError(resp)
	}
	return decodeOne[models.User](resp.Body(), "user")
}

func (c *Client) UpdateProfile(ctx context.Context, p models.ProfilePayload) (models.User, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(p).
		Put("/profile")
	if err != nil {
		return models.User{}, err
	}
	if resp.IsError() {
		return models.User{}, apiError(resp)
	}
	return decodeOne[models.User](resp.Body(), "user")
}

// UploadProfilePhoto sends the image as a multipart form and returns
// the updated profile with the new avatar URL.
func (c *Client) UploadProfilePhoto(ctx context.Context, path string) (models.User, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetFile("image", path).
		Post("/profile/photo")
	if err != nil {
		return models.User{}, err
	}
	if resp.IsError() {
		return models.User{}, apiError(resp)
	}
	return decodeOne[models.User](resp.Body(), "user")
}
