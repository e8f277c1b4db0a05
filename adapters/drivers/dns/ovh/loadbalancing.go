package ovh

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ovhops/ovhops/domain/model"
)

// ListLoadBalancers returns the legacy IP load-balancing service names.
func (c *Client) ListLoadBalancers(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.do(ctx, http.MethodGet, "/ip/loadBalancing", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// ListPendingTasks returns the IDs of background tasks still running
// against the load balancer.
func (c *Client) ListPendingTasks(ctx context.Context, name string) ([]int64, error) {
	var ids []int64
	path := fmt.Sprintf("/ip/loadBalancing/%s/task", url.PathEscape(name))
	if err := c.do(ctx, http.MethodGet, path, nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// ListBackends returns the backend IPs attached to the load balancer.
func (c *Client) ListBackends(ctx context.Context, name string) ([]string, error) {
	var ips []string
	path := fmt.Sprintf("/ip/loadBalancing/%s/backend", url.PathEscape(name))
	if err := c.do(ctx, http.MethodGet, path, nil, &ips); err != nil {
		return nil, err
	}
	return ips, nil
}

// GetBackend fetches one backend's properties.
func (c *Client) GetBackend(ctx context.Context, name, ip string) (*model.Backend, error) {
	var b model.Backend
	path := fmt.Sprintf("/ip/loadBalancing/%s/backend/%s", url.PathEscape(name), url.PathEscape(ip))
	if err := c.do(ctx, http.MethodGet, path, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBackend attaches a backend to the load balancer.
func (c *Client) CreateBackend(ctx context.Context, name string, backend *model.Backend) error {
	body := map[string]any{
		"ipBackend": backend.IP,
		"probe":     backend.Probe,
		"weight":    backend.Weight,
	}
	path := fmt.Sprintf("/ip/loadBalancing/%s/backend", url.PathEscape(name))
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// SetBackendWeight changes the weight of an existing backend.
func (c *Client) SetBackendWeight(ctx context.Context, name, ip string, weight int64) error {
	body := map[string]any{"weight": weight}
	path := fmt.Sprintf("/ip/loadBalancing/%s/backend/%s/setWeight", url.PathEscape(name), url.PathEscape(ip))
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// UpdateBackendProbe changes the probe of an existing backend.
func (c *Client) UpdateBackendProbe(ctx context.Context, name, ip string, probe model.BackendProbe) error {
	body := map[string]any{"probe": probe}
	path := fmt.Sprintf("/ip/loadBalancing/%s/backend/%s", url.PathEscape(name), url.PathEscape(ip))
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// DeleteBackend detaches a backend from the load balancer.
func (c *Client) DeleteBackend(ctx context.Context, name, ip string) error {
	path := fmt.Sprintf("/ip/loadBalancing/%s/backend/%s", url.PathEscape(name), url.PathEscape(ip))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

var _ model.LoadBalancingPort = (*Client)(nil)
