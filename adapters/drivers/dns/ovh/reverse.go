package ovh

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ovhops/ovhops/domain/model"
)

// reversePath builds the /ip/{ip}%2F32/reverse base path. The API accepts a
// single address only as its /32 (or /128) block, slash escaped.
func reversePath(ip string) string {
	return fmt.Sprintf("/ip/%s/reverse", url.PathEscape(ip+"/32"))
}

// GetReverse returns the reverse record for the IP, or nil when the IP is
// manageable but has no reverse set.
func (c *Client) GetReverse(ctx context.Context, ip string) (*model.Reverse, error) {
	var names []string
	if err := c.do(ctx, http.MethodGet, reversePath(ip), nil, &names); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}
	// Only one reverse is expected for a /32.
	var rev model.Reverse
	path := reversePath(ip) + "/" + url.PathEscape(names[0])
	if err := c.do(ctx, http.MethodGet, path, nil, &rev); err != nil {
		return nil, err
	}
	return &rev, nil
}

// SetReverse creates or replaces the reverse record for the IP.
func (c *Client) SetReverse(ctx context.Context, ip, reverse string) error {
	body := map[string]any{"ipReverse": ip, "reverse": reverse}
	return c.do(ctx, http.MethodPost, reversePath(ip), body, nil)
}

// DeleteReverse removes the reverse record for the IP.
func (c *Client) DeleteReverse(ctx context.Context, ip, ipReverse string) error {
	path := reversePath(ip) + "/" + url.PathEscape(ipReverse)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

var _ model.ReversePort = (*Client)(nil)
