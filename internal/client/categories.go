package client

import (
	"context"
	"strconv"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Get("/device-categories")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return decodeList[models.Category](resp.Body(), "categories")
}

// ListTypes fetches the types under one category. It must only be
// called with a selected category; callers discard the result whenever
// the category selection changes.
func (c *Client) ListTypes(ctx context.Context, categoryID int) ([]models.DeviceType, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetQueryParam("device_category_id", strconv.Itoa(categoryID)).
		Get("/device-types")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return decodeList[models.DeviceType](resp.Body(), "types")
}

// ListSubcategories mirrors ListTypes for the subcategory axis.
func (c *Client) ListSubcategories(ctx context.Context, categoryID int) ([]models.Subcategory, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetQueryParam("device_category_id", strconv.Itoa(categoryID)).
		Get("/device-subcategories")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return decodeList[models.Subcategory](resp.Body(), "subcategories")
}
