package ovh

import (
	"context"
	"fmt"
	"net/http"

	dnsdrv "github.com/ovhops/ovhops/adapters/drivers/dns"
	"github.com/ovhops/ovhops/domain/model"
)

func init() {
	dnsdrv.Register("ovh", func(settings map[string]string) (dnsdrv.Driver, error) {
		return NewDriver(settings)
	})
}

// Driver implements dnsdrv.Driver backed by the OVH REST API.
type Driver struct {
	client *Client
}

// NewDriver creates an OVH driver from the given settings map.
// Required settings: endpoint, application_key, application_secret.
// consumer_key may be empty only for the setup bootstrap.
func NewDriver(settings map[string]string) (*Driver, error) {
	endpoint := settings["endpoint"]
	if endpoint == "" {
		return nil, fmt.Errorf("ovh: missing required setting 'endpoint'")
	}
	appKey := settings["application_key"]
	if appKey == "" {
		return nil, fmt.Errorf("ovh: missing required setting 'application_key'")
	}
	appSecret := settings["application_secret"]
	if appSecret == "" {
		return nil, fmt.Errorf("ovh: missing required setting 'application_secret'")
	}

	client, err := NewClient(endpoint, appKey, appSecret, settings["consumer_key"])
	if err != nil {
		return nil, err
	}
	return &Driver{client: client}, nil
}

func (d *Driver) ID() string { return "ovh" }

func (d *Driver) Zone() model.ZonePort { return d.client }

func (d *Driver) LoadBalancing() model.LoadBalancingPort { return d.client }

func (d *Driver) Reverse() model.ReversePort { return d.client }

// accessRule is one entry of a consumer key request.
type accessRule struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// defaultAccessRules cover every API path the reconciler touches.
var defaultAccessRules = []accessRule{
	{Method: "GET", Path: "/domain/*"},
	{Method: "PUT", Path: "/domain/*"},
	{Method: "POST", Path: "/domain/*"},
	{Method: "DELETE", Path: "/domain/*"},
	{Method: "GET", Path: "/ip/*"},
	{Method: "PUT", Path: "/ip/*"},
	{Method: "POST", Path: "/ip/*"},
	{Method: "DELETE", Path: "/ip/*"},
}

// RequestConsumerKey asks the API for a new consumer key. The operator must
// visit the returned URL to validate it before the key works.
func (d *Driver) RequestConsumerKey(ctx context.Context) (*dnsdrv.ConsumerKeyValidation, error) {
	body := map[string]any{"accessRules": defaultAccessRules}
	var out dnsdrv.ConsumerKeyValidation
	if err := d.client.doUnsigned(ctx, http.MethodPost, "/auth/credential", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ dnsdrv.Driver = (*Driver)(nil)
