package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

// ListOffices is a public endpoint; it works without a token so the
// registration form can offer an office picker.
func (c *Client) ListOffices(ctx context.Context) ([]models.Office, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Get("/offices")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return decodeList[models.Office](resp.Body(), "offices")
}

func (c *Client) GetOffice(ctx context.Context, id int) (models.Office, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Get("/offices/" + strconv.Itoa(id))
	if err != nil {
		return models.Office{}, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.Office{}, ErrNotFound
	}
	if resp.IsError() {
		return models.Office{}, apiError(resp)
	}
	return decodeOne[models.Office](resp.Body(), "office")
}

func (c *Client) CreateOffice(ctx context.Context, p models.OfficePayload) (models.Office, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(p).
		Post("/offices")
	if err != nil {
		return models.Office{}, err
	}
	if resp.IsError() {
		return models.Office{}, apiError(resp)
	}
	return decodeOne[models.Office](resp.Body(), "office")
}

func (c *Client) UpdateOffice(ctx context.Context, id int, p models.OfficePayload) (models.Office, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(p).
		Put("/offices/" + strconv.Itoa(id))
	if err != nil {
		return models.Office{}, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.Office{}, ErrNotFound
	}
	if resp.IsError() {
		return models.Office{}, apiError(resp)
	}
	return decodeOne[models.Office](resp.Body(), "office")
}

func (c *Client) DeleteOffice(ctx context.Context, id int) error {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Delete("/offices/" + strconv.Itoa(id))
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}
