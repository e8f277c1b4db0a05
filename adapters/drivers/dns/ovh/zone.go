package ovh

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ovhops/ovhops/domain/model"
)

// ListZones returns the zone names manageable by the credentials.
func (c *Client) ListZones(ctx context.Context) ([]string, error) {
	var zones []string
	if err := c.do(ctx, http.MethodGet, "/domain/zone", nil, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// ListRecordIDs returns record IDs in the zone, filtered server-side by
// field type and subdomain when given.
func (c *Client) ListRecordIDs(ctx context.Context, zone string, filter model.RecordFilter) ([]int64, error) {
	q := url.Values{}
	if filter.Type != "" {
		q.Set("fieldType", string(filter.Type))
	}
	if filter.Name != "" {
		q.Set("subDomain", filter.Name)
	}
	path := fmt.Sprintf("/domain/zone/%s/record", url.PathEscape(zone))
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var ids []int64
	if err := c.do(ctx, http.MethodGet, path, nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetRecord fetches one record by ID.
func (c *Client) GetRecord(ctx context.Context, zone string, id int64) (*model.Record, error) {
	var rec model.Record
	path := fmt.Sprintf("/domain/zone/%s/record/%d", url.PathEscape(zone), id)
	if err := c.do(ctx, http.MethodGet, path, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateRecord adds a record to the zone.
func (c *Client) CreateRecord(ctx context.Context, zone string, payload *model.RecordPayload) (*model.Record, error) {
	var rec model.Record
	path := fmt.Sprintf("/domain/zone/%s/record", url.PathEscape(zone))
	if err := c.do(ctx, http.MethodPost, path, payload, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateRecord modifies the target and TTL of an existing record.
func (c *Client) UpdateRecord(ctx context.Context, zone string, id int64, target string, ttl int64) error {
	body := map[string]any{"target": target}
	if ttl > 0 {
		body["ttl"] = ttl
	}
	path := fmt.Sprintf("/domain/zone/%s/record/%d", url.PathEscape(zone), id)
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// DeleteRecord removes a record by ID.
func (c *Client) DeleteRecord(ctx context.Context, zone string, id int64) error {
	path := fmt.Sprintf("/domain/zone/%s/record/%d", url.PathEscape(zone), id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// RefreshZone commits pending zone changes to the DNS servers.
func (c *Client) RefreshZone(ctx context.Context, zone string) error {
	path := fmt.Sprintf("/domain/zone/%s/refresh", url.PathEscape(zone))
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

var _ model.ZonePort = (*Client)(nil)
