// Package practicum is the client for the homework status API.
package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// ErrTransport wraps every failure to obtain a JSON payload: network errors,
// timeouts, non-200 responses and undecodable bodies.
var ErrTransport = errors.New("status api request failed")

// Client fetches homework statuses with a static OAuth token.
type Client struct {
	http     *resty.Client
	endpoint string
}

// New creates a client for endpoint. A zero timeout leaves requests unbounded.
func New(endpoint, token string, timeout time.Duration, log zerolog.Logger) *Client {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Authorization", "OAuth "+token).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: log})

	instrument(client, log)

	return &Client{http: client, endpoint: endpoint}
}

// Fetch requests statuses updated since from and returns the decoded JSON
// body. The payload shape is not checked here.
func (c *Client) Fetch(ctx context.Context, from time.Time) (any, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("from_date", strconv.FormatInt(from.Unix(), 10)).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrTransport, res.StatusCode())
	}

	var payload any
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode body: %w", ErrTransport, err)
	}

	return payload, nil
}
