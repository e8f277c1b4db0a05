// Package ovh implements the provider driver for the OVH REST API (v1),
// including request signing and clock drift correction.
package ovh

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ovhops/ovhops/domain/model"
)

// endpoints maps endpoint aliases to API base URLs.
var endpoints = map[string]string{
	"ovh-eu":        "https://eu.api.ovh.com/1.0",
	"ovh-ca":        "https://ca.api.ovh.com/1.0",
	"ovh-us":        "https://api.us.ovhcloud.com/1.0",
	"kimsufi-eu":    "https://eu.api.kimsufi.com/1.0",
	"kimsufi-ca":    "https://ca.api.kimsufi.com/1.0",
	"soyoustart-eu": "https://eu.api.soyoustart.com/1.0",
	"soyoustart-ca": "https://ca.api.soyoustart.com/1.0",
}

// Client issues signed requests against one OVH API endpoint.
type Client struct {
	baseURL     string
	appKey      string
	appSecret   string
	consumerKey string
	client      *http.Client

	// timeDelta is local clock minus server clock, fetched once on first
	// signed request. Signatures with a skewed timestamp are rejected by
	// the API.
	timeDelta    time.Duration
	timeDeltaSet bool
}

// NewClient creates a client for the given endpoint alias or base URL.
func NewClient(endpoint, appKey, appSecret, consumerKey string) (*Client, error) {
	base, ok := endpoints[endpoint]
	if !ok {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			return nil, fmt.Errorf("ovh: unknown endpoint %q", endpoint)
		}
		base = endpoint
	}
	if appKey == "" {
		return nil, fmt.Errorf("ovh: missing application key")
	}
	return &Client{
		baseURL:     strings.TrimRight(base, "/"),
		appKey:      appKey,
		appSecret:   appSecret,
		consumerKey: consumerKey,
		client:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// serverTime fetches the API server time for signature timestamps.
func (c *Client) serverTime(ctx context.Context) (time.Time, error) {
	var epoch int64
	if err := c.doUnsigned(ctx, http.MethodGet, "/auth/time", nil, &epoch); err != nil {
		return time.Time{}, err
	}
	return time.Unix(epoch, 0), nil
}

func (c *Client) timestamp(ctx context.Context) (int64, error) {
	if !c.timeDeltaSet {
		st, err := c.serverTime(ctx)
		if err != nil {
			return 0, err
		}
		c.timeDelta = time.Since(st)
		c.timeDeltaSet = true
	}
	return time.Now().Add(-c.timeDelta).Unix(), nil
}

// sign computes the X-Ovh-Signature header value.
func sign(appSecret, consumerKey, method, url, body string, ts int64) string {
	h := sha1.New()
	fmt.Fprintf(h, "%s+%s+%s+%s+%s+%d", appSecret, consumerKey, method, url, body, ts)
	return "$1$" + fmt.Sprintf("%x", h.Sum(nil))
}

// do issues a signed request and decodes the 2xx response body into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ovh: marshal request body: %w", err)
		}
	}

	ts, err := c.timestamp(ctx)
	if err != nil {
		return err
	}

	url := c.baseURL + path
	req, err := newRequest(ctx, method, url, payload)
	if err != nil {
		return err
	}
	req.Header.Set("X-Ovh-Application", c.appKey)
	req.Header.Set("X-Ovh-Consumer", c.consumerKey)
	req.Header.Set("X-Ovh-Timestamp", strconv.FormatInt(ts, 10))
	req.Header.Set("X-Ovh-Signature", sign(c.appSecret, c.consumerKey, method, url, string(payload), ts))

	return c.send(req, out)
}

// doUnsigned issues a request carrying only the application key header.
// Used for /auth/time and /auth/credential.
func (c *Client) doUnsigned(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ovh: marshal request body: %w", err)
		}
	}
	req, err := newRequest(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("X-Ovh-Application", c.appKey)
	return c.send(req, out)
}

func newRequest(ctx context.Context, method, url string, payload []byte) (*http.Request, error) {
	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, fmt.Errorf("ovh: build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return &model.ProviderError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		data, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(data))
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return &model.ProviderError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &model.ProviderError{Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}
