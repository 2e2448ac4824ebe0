package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/space84/studycafe/internal/gallery"
	"github.com/space84/studycafe/internal/model"
)

// Message types
type (
	// InfoMsg carries the result of GET /api/info.
	InfoMsg struct {
		Info model.ServiceInfo
		Err  error
	}

	// ArtistsMsg carries the result of the directory fetch tagged Seq.
	ArtistsMsg struct {
		Seq     uint64
		Artists []model.Artist
		Err     error
	}

	// FanficMsg carries the result of the detail fetch tagged Seq.
	FanficMsg struct {
		Seq       uint64
		Narrative *model.Narrative
		Err       error
	}

	// GalleryMsg carries rendered thumbnails for the detail load tagged Seq.
	GalleryMsg struct {
		Seq    uint64
		Thumbs []gallery.Thumbnail
		Err    error
	}
)

// The commands below capture everything they need by value so they never
// read Model state from the command goroutine.

func fetchInfo(ctx context.Context, api API) tea.Cmd {
	return func() tea.Msg {
		info, err := api.Info(ctx)
		return InfoMsg{Info: info, Err: err}
	}
}

func fetchArtists(ctx context.Context, api API, seq uint64) tea.Cmd {
	return func() tea.Msg {
		artists, err := api.Artists(ctx)
		return ArtistsMsg{Seq: seq, Artists: artists, Err: err}
	}
}

func fetchFanfic(ctx context.Context, api API, seq uint64, slug string) tea.Cmd {
	return func() tea.Msg {
		n, err := api.Fanfic(ctx, slug)
		return FanficMsg{Seq: seq, Narrative: n, Err: err}
	}
}

func fetchGallery(ctx context.Context, loader *gallery.Loader, seq uint64, urls []string) tea.Cmd {
	return func() tea.Msg {
		thumbs, err := loader.Load(ctx, urls)
		return GalleryMsg{Seq: seq, Thumbs: thumbs, Err: err}
	}
}
