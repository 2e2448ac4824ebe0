package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/space84/studycafe/internal/model"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/info", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Space84 Fanfic API","version":"1.0.0","description":"팬픽 API"}`))
	})
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})
	mux.HandleFunc("/api/artists", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"artists":[
			{"slug":"banana","name":"Banana","tracks_count":3},
			{"slug":"apple","name":"Apple","tracks_count":0}
		],"total":2}`))
	})
	mux.HandleFunc("/api/artists/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/artists/banana/fanfic" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Artist not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"artist_name": "Banana",
			"title": "Banana Story",
			"story": "첫 문단\n\n둘째 문단",
			"metadata": {"country": "KR", "genres": "indie", "tracks_count": 1, "tracks": ["One"], "similar_artists": []},
			"youtube_videos": [{"title": "Live", "video_id": "abc"}],
			"images": []
		}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, apiURL string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{
		"--config", filepath.Join(t.TempDir(), "missing.toml"),
		"--api-url", apiURL,
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestCLIInfo(t *testing.T) {
	srv := newAPIServer(t)

	out, err := runCLI(t, srv.URL, "info")
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	if !strings.Contains(out, "API 연결 성공: Space84 Fanfic API v1.0.0") {
		t.Errorf("info output = %q", out)
	}
}

func TestCLIHealth(t *testing.T) {
	srv := newAPIServer(t)

	out, err := runCLI(t, srv.URL, "health")
	if err != nil {
		t.Fatalf("health failed: %v", err)
	}
	if !strings.Contains(out, "healthy") {
		t.Errorf("health output = %q", out)
	}
}

func TestCLIArtistsTable(t *testing.T) {
	srv := newAPIServer(t)

	out, err := runCLI(t, srv.URL, "artists")
	if err != nil {
		t.Fatalf("artists failed: %v", err)
	}
	apple := strings.Index(out, "Apple")
	banana := strings.Index(out, "Banana")
	if apple < 0 || banana < 0 || apple > banana {
		t.Errorf("artists should be sorted by name:\n%s", out)
	}
	if !strings.Contains(out, "2명") {
		t.Errorf("missing count:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("output to a buffer should not be colorized:\n%s", out)
	}
}

func TestCLIArtistsQueryJSON(t *testing.T) {
	srv := newAPIServer(t)

	out, err := runCLI(t, srv.URL, "artists", "--query", "BAN", "--json")
	if err != nil {
		t.Fatalf("artists failed: %v", err)
	}
	var artists []model.Artist
	if err := json.Unmarshal([]byte(out), &artists); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(artists) != 1 || artists[0].Slug != "banana" {
		t.Errorf("artists = %+v, want [banana]", artists)
	}
}

func TestCLIArtistsNoResults(t *testing.T) {
	srv := newAPIServer(t)

	out, err := runCLI(t, srv.URL, "artists", "-q", "zzz")
	if err != nil {
		t.Fatalf("artists failed: %v", err)
	}
	if !strings.Contains(out, "검색 결과가 없습니다") {
		t.Errorf("output = %q", out)
	}
}

func TestCLIFanficText(t *testing.T) {
	srv := newAPIServer(t)

	out, err := runCLI(t, srv.URL, "fanfic", "banana")
	if err != nil {
		t.Fatalf("fanfic failed: %v", err)
	}
	for _, want := range []string{"Banana Story", "[KR] [indie]", "Playlist tracks (1)", "https://www.youtube.com/embed/abc", "https://www.youtube.com/watch?v=abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"이미지 갤러리", "유사 아티스트"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("output should omit %q:\n%s", unwanted, out)
		}
	}
}

func TestCLIFanficYAML(t *testing.T) {
	srv := newAPIServer(t)

	out, err := runCLI(t, srv.URL, "fanfic", "banana", "-o", "yaml")
	if err != nil {
		t.Fatalf("fanfic failed: %v", err)
	}
	var n model.Narrative
	if err := yaml.Unmarshal([]byte(out), &n); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if n.Title != "Banana Story" || len(n.Videos) != 1 || n.Videos[0].VideoID != "abc" {
		t.Errorf("narrative = %+v", n)
	}
}

func TestCLIFanficNotFound(t *testing.T) {
	srv := newAPIServer(t)

	_, err := runCLI(t, srv.URL, "fanfic", "nobody")
	if err == nil {
		t.Fatal("expected error for unknown artist")
	}
	if !strings.Contains(err.Error(), "팬픽을 찾을 수 없습니다") {
		t.Errorf("error = %v, want not-found message", err)
	}
}

func TestCLIFanficBadOutput(t *testing.T) {
	srv := newAPIServer(t)

	if _, err := runCLI(t, srv.URL, "fanfic", "banana", "-o", "xml"); err == nil {
		t.Fatal("expected error for unsupported output")
	}
}

func TestCLIInvalidAPIURL(t *testing.T) {
	if _, err := runCLI(t, "ftp://example.com", "info"); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}
