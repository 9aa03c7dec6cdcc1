package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

// Sort values accepted by the reports endpoint.
const (
	OrderLatest   = "latest"
	OrderEarliest = "earliest"
)

// ListReports fetches reports, optionally sorted server-side. Status
// filtering and newest/oldest re-sort are re-applied client-side by the
// view pipeline so cached lists stay consistent.
func (c *Client) ListReports(ctx context.Context, order string) ([]models.Report, error) {
	req := c.HTTP.R().SetContext(ctx)
	if order != "" {
		req.SetQueryParam("order_by_created", order)
	}

	resp, err := req.Get("/reports")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return decodeList[models.Report](resp.Body(), "reports")
}

func (c *Client) GetReport(ctx context.Context, id int) (models.Report, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		Get("/reports/" + strconv.Itoa(id))
	if err != nil {
		return models.Report{}, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.Report{}, ErrNotFound
	}
	if resp.IsError() {
		return models.Report{}, apiError(resp)
	}
	return decodeOne[models.Report](resp.Body(), "report")
}

func (c *Client) CreateReport(ctx context.Context, p models.ReportPayload) (models.Report, error) {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(p).
		Post("/reports")
	if err != nil {
		return models.Report{}, err
	}
	if resp.IsError() {
		return models.Report{}, apiError(resp)
	}
	return decodeOne[models.Report](resp.Body(), "report")
}

// ResolveReport closes a report with a resolution note.
func (c *Client) ResolveReport(ctx context.Context, id int, note string) error {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(map[string]string{"resolution_note": note}).
		Post("/reports/" + strconv.Itoa(id) + "/resolve")
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

// UpdateReportStatus patches just the status field.
func (c *Client) UpdateReportStatus(ctx context.Context, id int, status string) error {
	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetBody(map[string]string{"status": status}).
		Patch("/reports/" + strconv.Itoa(id) + "/status")
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
