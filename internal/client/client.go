// Package client is the single configured gateway to the SMCH REST API.
// It attaches the bearer token, normalizes the backend's inconsistent
// response envelopes and maps failures onto a small error taxonomy.
package client

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	HTTP *resty.Client
}

// New builds a client against baseURL. token may be empty for the
// public endpoints (login, register, password reset, office list).
func New(baseURL, token string) *Client {
	r := resty.New()
	r.SetBaseURL(baseURL)
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")
	if token != "" {
		r.SetAuthToken(token)
	}

	// 401 handling is cross-cutting: every call site sees the same
	// sentinel and the session store is cleared exactly once upstream.
	r.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			return ErrUnauthorized
		}
		return nil
	})

	return &Client{HTTP: r}
}
