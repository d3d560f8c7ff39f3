// Package ghl talks to the GoHighLevel CRM REST API on behalf of the
// import pipeline and the pipeline-discovery tool. The surface is
// deliberately small: it covers the calls this workflow needs, not the
// whole CRM API. Credentials always arrive through [Config] — nothing in
// this package reads the process environment.
package ghl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/propflow/leadboard/models"
)

// Config carries the connection settings for one CRM account.
type Config struct {
	// BaseURL is the API root. Empty selects the public v1 endpoint.
	BaseURL string
	// APIKey is sent as a bearer token on every request.
	APIKey string
	// LocationID selects the CRM sub-account to operate on.
	LocationID string
	// Timeout bounds a single API call.
	Timeout time.Duration
}

// Client is a GoHighLevel API client. It performs no retries: a failed
// call is reported to the caller as-is.
type Client struct {
	http       *resty.Client
	locationID string
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://rest.gohighlevel.com/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey)

	return &Client{http: cli, locationID: cfg.LocationID}
}

// Ping performs a cheap authenticated call to verify connectivity and
// credentials before any automation runs.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/pipelines/")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	return mapHTTPError(resp)
}

// Pipelines returns every pipeline of the account together with its
// stages. Stage IDs are what automation setup is after: they identify
// where a created opportunity lands.
func (c *Client) Pipelines(ctx context.Context) ([]models.Pipeline, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/pipelines/")
	if err != nil {
		return nil, fmt.Errorf("pipelines request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var pr pipelinesResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return nil, fmt.Errorf("decode pipelines response: %w", err)
	}

	return pr.Pipelines, nil
}

type pipelinesResponse struct {
	Pipelines []models.Pipeline `json:"pipelines"`
}
