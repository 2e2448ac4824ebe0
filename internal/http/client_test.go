package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_GetJSON(t *testing.T) {
	var gotUA, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Space84 StudyCafe","version":"1.0.0"}`))
	}))
	defer srv.Close()

	client := NewClient(WithUserAgent("test-agent"))

	var info struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := client.GetJSON(context.Background(), srv.URL, &info); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}

	if info.Name != "Space84 StudyCafe" || info.Version != "1.0.0" {
		t.Errorf("info = %+v", info)
	}
	if gotUA != "test-agent" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "test-agent")
	}
	if len(gotRequestID) != 36 {
		t.Errorf("X-Request-ID = %q, want a uuid", gotRequestID)
	}
}

func TestClient_AcceptHeader(t *testing.T) {
	var accept []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = append(accept, r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient()
	var v map[string]any
	if err := client.GetJSON(context.Background(), srv.URL, &v); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if _, err := client.DownloadBytes(context.Background(), srv.URL); err != nil {
		t.Fatalf("DownloadBytes failed: %v", err)
	}

	if len(accept) != 2 {
		t.Fatalf("got %d requests, want 2", len(accept))
	}
	if accept[0] != "application/json" {
		t.Errorf("GetJSON Accept = %q, want %q", accept[0], "application/json")
	}
	if accept[1] != "" {
		t.Errorf("DownloadBytes Accept = %q, want none", accept[1])
	}
}

func TestClient_StatusError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		wantNotFnd bool
	}{
		{"fastapi 404", http.StatusNotFound, `{"detail":"Artist 'x' not found"}`, "Artist 'x' not found", true},
		{"plain 500", http.StatusInternalServerError, `boom`, "", false},
		{"message field", http.StatusBadGateway, `{"message":"upstream down"}`, "upstream down", false},
		{"non-string detail", http.StatusUnprocessableEntity, `{"detail":[{"loc":["path"]}]}`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient().Get(context.Background(), srv.URL)

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error = %v, want *StatusError", err)
			}
			if statusErr.Code != tt.status {
				t.Errorf("Code = %d, want %d", statusErr.Code, tt.status)
			}
			if statusErr.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", statusErr.Detail, tt.wantDetail)
			}
			if statusErr.NotFound() != tt.wantNotFnd {
				t.Errorf("NotFound() = %v, want %v", statusErr.NotFound(), tt.wantNotFnd)
			}
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewClient(WithTimeout(50 * time.Millisecond))
	if _, err := client.Get(context.Background(), srv.URL); err == nil {
		t.Error("expected timeout error but got none")
	}
}

func TestClient_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	var v map[string]any
	if err := NewClient().GetJSON(context.Background(), srv.URL, &v); err == nil {
		t.Error("expected decode error but got none")
	}
}
