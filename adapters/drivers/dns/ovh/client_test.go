package ovh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ovhops/ovhops/domain/model"
)

// Known vector from the provider's signature documentation.
func TestSign(t *testing.T) {
	got := sign("AS", "CK", "GET", "https://eu.api.ovh.com/1.0/domains/", "", 1366560945)
	want := "$1$d3705e8afb27a0d2970a322b96550abfc67bb798"
	if got != want {
		t.Errorf("sign = %s, want %s", got, want)
	}
}

// newTestServer serves /auth/time plus the given handler and returns a
// client pointed at it.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/time", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%d", 1700000000)
	})
	mux.HandleFunc("/", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, "app-key", "app-secret", "consumer-key")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv
}

func TestClientSignedHeaders(t *testing.T) {
	var gotHeaders http.Header
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		json.NewEncoder(w).Encode([]string{"example.com"})
	})

	zones, err := client.ListZones(context.Background())
	if err != nil {
		t.Fatalf("ListZones: %v", err)
	}
	if len(zones) != 1 || zones[0] != "example.com" {
		t.Errorf("zones = %v, want [example.com]", zones)
	}

	for _, h := range []string{"X-Ovh-Application", "X-Ovh-Consumer", "X-Ovh-Timestamp", "X-Ovh-Signature"} {
		if gotHeaders.Get(h) == "" {
			t.Errorf("missing header %s", h)
		}
	}
	if got := gotHeaders.Get("X-Ovh-Application"); got != "app-key" {
		t.Errorf("X-Ovh-Application = %s, want app-key", got)
	}
}

func TestClientProviderError(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "This call has not been granted"})
	})

	_, err := client.GetRecord(context.Background(), "example.com", 42)
	var perr *model.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ProviderError", err)
	}
	if perr.Status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", perr.Status)
	}
	if perr.Message != "This call has not been granted" {
		t.Errorf("message = %q", perr.Message)
	}
}

func TestClientRecordRoundTrip(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/domain/zone/example.com/record":
			if r.URL.Query().Get("fieldType") != "A" || r.URL.Query().Get("subDomain") != "db1" {
				t.Errorf("unexpected query %s", r.URL.RawQuery)
			}
			json.NewEncoder(w).Encode([]int64{101})
		case r.Method == http.MethodGet && r.URL.Path == "/domain/zone/example.com/record/101":
			json.NewEncoder(w).Encode(model.Record{ID: 101, Zone: "example.com", SubDomain: "db1", FieldType: model.RecordTypeA, Target: "10.10.10.10", TTL: 3600})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()
	ids, err := client.ListRecordIDs(ctx, "example.com", model.RecordFilter{Type: model.RecordTypeA, Name: "db1"})
	if err != nil {
		t.Fatalf("ListRecordIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != 101 {
		t.Fatalf("ids = %v, want [101]", ids)
	}
	rec, err := client.GetRecord(ctx, "example.com", ids[0])
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if rec.SubDomain != "db1" || rec.Target != "10.10.10.10" {
		t.Errorf("record = %+v", rec)
	}
}

func TestGetReverseAbsent(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]string{})
	})

	rev, err := client.GetReverse(context.Background(), "10.10.10.10")
	if err != nil {
		t.Fatalf("GetReverse: %v", err)
	}
	if rev != nil {
		t.Errorf("reverse = %+v, want nil", rev)
	}
}

func TestNewClientUnknownEndpoint(t *testing.T) {
	if _, err := NewClient("ovh-mars", "k", "s", "ck"); err == nil {
		t.Error("expected error for unknown endpoint alias")
	}
}
