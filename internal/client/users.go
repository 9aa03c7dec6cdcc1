package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

// ListUsers is admin-only; non-admin tokens get a 403 the server turns
// into a RequestError.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Get("/users")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return decodeList[models.User](resp.Body(), "users")
}

func (c *Client) GetUser(ctx context.Context, id int) (models.User, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Get("/users/" + strconv.Itoa(id))
	if err != nil {
		return models.User{}, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.User{}, ErrNotFound
	}
	if resp.IsError() {
		return models.User{}, apiError(resp)
	}
	return decodeOne[models.User](resp.Body(), "user")
}
