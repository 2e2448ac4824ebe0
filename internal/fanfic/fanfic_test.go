package fanfic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apihttp "github.com/space84/studycafe/internal/http"
)

const fanficBody = `{
	"artist_name": "Banana",
	"title": "Banana의 잃어버린 앨범",
	"story": "첫 문단\n\n둘째 문단",
	"metadata": {
		"country": "KR",
		"genres": ["indie", "rock"],
		"tracks_count": 2,
		"tracks": ["One", "Two"],
		"similar_artists": ["Apple"]
	},
	"youtube_videos": [{"title": "X", "video_id": "abc"}],
	"images": []
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/info", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Space84 StudyCafe","version":"1.0.0","description":"desc"}`))
	})
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})
	mux.HandleFunc("/api/artists", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"artists":[
			{"slug":"b","name":"Banana","tracks_count":2},
			{"slug":"a","name":"Apple","tracks_count":0},
			{"slug":"","name":"Broken","tracks_count":1}
		],"total":3}`))
	})
	mux.HandleFunc("/api/artists/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/artists/b/fanfic":
			_, _ = w.Write([]byte(fanficBody))
		case "/api/artists/ghost/fanfic":
			_, _ = w.Write([]byte(`null`))
		case "/api/artists/broken/fanfic":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Artist not found"}`))
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Info(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL+"/", nil)

	info, err := client.Info(context.Background())
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.Name != "Space84 StudyCafe" || info.Version != "1.0.0" {
		t.Errorf("info = %+v", info)
	}
	if client.BaseURL() != srv.URL {
		t.Errorf("BaseURL() = %q, want %q", client.BaseURL(), srv.URL)
	}
}

func TestClient_Health(t *testing.T) {
	srv := newTestServer(t)

	status, err := NewClient(srv.URL, nil).Health(context.Background())
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if status != "healthy" {
		t.Errorf("status = %q, want %q", status, "healthy")
	}
}

func TestClient_Artists(t *testing.T) {
	srv := newTestServer(t)

	artists, err := NewClient(srv.URL, nil).Artists(context.Background())
	if err != nil {
		t.Fatalf("Artists failed: %v", err)
	}

	if len(artists) != 2 {
		t.Fatalf("got %d artists, want 2 (entry without slug skipped)", len(artists))
	}
	if artists[0].Slug != "b" || artists[1].Slug != "a" {
		t.Errorf("artists should keep server order, got %+v", artists)
	}
}

func TestClient_Fanfic(t *testing.T) {
	srv := newTestServer(t)

	n, err := NewClient(srv.URL, nil).Fanfic(context.Background(), "b")
	if err != nil {
		t.Fatalf("Fanfic failed: %v", err)
	}

	if n.ArtistName != "Banana" {
		t.Errorf("ArtistName = %q, want %q", n.ArtistName, "Banana")
	}
	if len(n.Metadata.Genres) != 2 || n.Metadata.Genres[0] != "indie" {
		t.Errorf("Genres = %v", n.Metadata.Genres)
	}
	if n.HasGallery() {
		t.Error("gallery should be empty")
	}
	if len(n.Videos) != 1 || n.Videos[0].EmbedURL() != "https://www.youtube.com/embed/abc" {
		t.Errorf("Videos = %+v", n.Videos)
	}
	if got := n.Paragraphs(); len(got) != 2 {
		t.Errorf("Paragraphs() = %q", got)
	}
}

func TestClient_FanficErrors(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, nil)

	tests := []struct {
		slug string
		want Kind
	}{
		{"unknown-slug", KindNotFound},
		{"broken", KindNetwork},
		{"", KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			n, err := client.Fanfic(context.Background(), tt.slug)
			if err == nil {
				t.Fatalf("expected error, got narrative %+v", n)
			}
			if got := Classify(err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", err, got, tt.want)
			}
		})
	}
}

func TestClient_FanficNullBody(t *testing.T) {
	srv := newTestServer(t)

	n, err := NewClient(srv.URL, nil).Fanfic(context.Background(), "ghost")
	if n != nil {
		t.Errorf("narrative = %+v, want nil", n)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if got := Classify(err); got != KindNotFound {
		t.Errorf("Classify(%v) = %v, want %v", err, got, KindNotFound)
	}
}

func TestClient_NotFoundKeepsStatus(t *testing.T) {
	srv := newTestServer(t)

	_, err := NewClient(srv.URL, nil).Fanfic(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	var statusErr *apihttp.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError in chain", err)
	}
	if statusErr.Detail != "Artist not found" {
		t.Errorf("Detail = %q", statusErr.Detail)
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := newTestServer(t)
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, nil).Artists(context.Background())
	if got := Classify(err); got != KindNetwork {
		t.Errorf("Classify(%v) = %v, want %v", err, got, KindNetwork)
	}
}

func TestClassify_Canceled(t *testing.T) {
	srv := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, nil).Artists(ctx)
	if got := Classify(err); got != KindCanceled {
		t.Errorf("Classify(%v) = %v, want %v", err, got, KindCanceled)
	}
	if !strings.Contains(err.Error(), "fetch artists") {
		t.Errorf("error should name the operation: %v", err)
	}
}
