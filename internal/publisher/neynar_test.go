package publisher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPublishCast(t *testing.T) {
	var gotReq castRequest
	var gotKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/farcaster/cast" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotKey = r.Header.Get("api_key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decoding request: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"cast": map[string]any{"hash": "0xdeadbeef"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	hash, err := client.PublishCast(context.Background(), "signer-123", "hello farcaster")
	if err != nil {
		t.Fatalf("publishing cast: %v", err)
	}

	if hash != "0xdeadbeef" {
		t.Errorf("hash = %q", hash)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if gotReq.SignerUUID != "signer-123" || gotReq.Text != "hello farcaster" {
		t.Errorf("request = %+v", gotReq)
	}
}

func TestPublishCastTooLong(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.PublishCast(context.Background(), "signer", strings.Repeat("a", 321))
	if err == nil {
		t.Fatal("expected error for over-length cast")
	}
	if called {
		t.Error("over-length cast must not reach the provider")
	}
}

func TestPublishCastProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid signer"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.PublishCast(context.Background(), "signer", "hello")
	if err == nil {
		t.Fatal("expected error for provider rejection")
	}
}

func TestPublishCastMissingHash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"cast": map[string]any{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.PublishCast(context.Background(), "signer", "hello")
	if err == nil {
		t.Fatal("expected error for missing hash")
	}
}
