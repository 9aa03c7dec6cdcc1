package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

// DeviceFilter carries the server-side filter params for the device
// list. Zero values mean "unset" and are not sent. Free-text search is
// deliberately absent: it is applied client-side only.
type DeviceFilter struct {
	CategoryID    int
	TypeID        int
	SubcategoryID int
	OfficeID      int
	Status        string
}

func (f DeviceFilter) apply(req *resty.Request) {
	if f.CategoryID != 0 {
		req.SetQueryParam("device_category_id", strconv.Itoa(f.CategoryID))
	}
	if f.TypeID != 0 {
		req.SetQueryParam("device_type_id", strconv.Itoa(f.TypeID))
	}
	if f.SubcategoryID != 0 {
		req.SetQueryParam("device_subcategory_id", strconv.Itoa(f.SubcategoryID))
	}
	if f.OfficeID != 0 {
		req.SetQueryParam("office_id", strconv.Itoa(f.OfficeID))
	}
	if f.Status != "" {
		req.SetQueryParam("status", f.Status)
	}
}

// ListDevices fetches the device list. The server filters when params
// are present; callers re-apply the equivalent filters locally through
// the view pipeline for consistency with cached data.
func (c *Client) ListDevices(ctx context.Context, f DeviceFilter) ([]models.Device, error) {
	req := c.HTTP.R().SetContext(ctx)
	f.apply(req)

	resp, err := req.Get("/devices")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return decodeList[models.Device](resp.Body(), "devices")
}

// GetDevice fetches one device by id. A missing id yields ErrNotFound,
// which renders as an empty state, not a crash.
func (c *Client) GetDevice(ctx context.Context, id int) (models.Device, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Get("/devices/" + strconv.Itoa(id))
	if err != nil {
		return models.Device{}, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.Device{}, ErrNotFound
	}
	if resp.IsError() {
		return models.Device{}, apiError(resp)
	}
	return decodeOne[models.Device](resp.Body(), "device")
}

func (c *Client) CreateDevice(ctx context.Context, p models.DevicePayload) (models.Device, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(p).
		Post("/devices")
	if err != nil {
		return models.Device{}, err
	}
	if resp.IsError() {
		return models.Device{}, apiError(resp)
	}
	return decodeOne[models.Device](resp.Body(), "device")
}

func (c *Client) UpdateDevice(ctx context.Context, id int, p models.DevicePayload) (models.Device, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(p).
		Put("/devices/" + strconv.Itoa(id))
	if err != nil {
		return models.Device{}, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.Device{}, ErrNotFound
	}
	if resp.IsError() {
		return models.Device{}, apiError(resp)
	}
	return decodeOne[models.Device](resp.Body(), "device")
}

func (c *Client) DeleteDevice(ctx context.Context, id int) error {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Delete("/devices/" + strconv.Itoa(id))
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
