package lastfm

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config",
			cfg: Config{
				APIKey:    "key",
				APISecret: "secret",
			},
		},
		{
			name: "missing api key",
			cfg: Config{
				APISecret: "secret",
			},
			wantErr:     true,
			errContains: "APIKey is required",
		},
		{
			name: "missing api secret",
			cfg: Config{
				APIKey: "key",
			},
			wantErr:     true,
			errContains: "APISecret is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client == nil {
				t.Fatal("expected non-nil client")
			}
			if client.User() == nil {
				t.Fatal("expected non-nil user service")
			}
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{
		APIKey:    "key",
		APISecret: "secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected default base URL %q, got %q", DefaultBaseURL, client.baseURL)
	}
	if client.httpClient != http.DefaultClient {
		t.Error("expected http.DefaultClient as default HTTP client")
	}
}

func TestNewClient_CustomHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}

	client, err := NewClient(Config{
		APIKey:     "key",
		APISecret:  "secret",
		HTTPClient: custom,
		BaseURL:    "http://example.invalid/2.0/",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.httpClient != custom {
		t.Error("expected custom HTTP client to be used")
	}
	if client.baseURL != "http://example.invalid/2.0/" {
		t.Errorf("expected custom base URL, got %q", client.baseURL)
	}
}
