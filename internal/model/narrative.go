package model

import "strings"

// PlaceholderVideoID is embedded when a video entry carries no id.
const PlaceholderVideoID = "dQw4w9WgXcQ"

const (
	youtubeEmbedBase = "https://www.youtube.com/embed/"
	youtubeWatchBase = "https://www.youtube.com/watch?v="
)

// Narrative is the generated fanfiction for one artist.
//
// A Narrative is always replaced wholesale when a newer one is fetched;
// callers never merge two narratives.
type Narrative struct {
	// Title is the story headline.
	Title string `json:"title" yaml:"title"`

	// ArtistName is the artist the story was generated for.
	ArtistName string `json:"artist_name" yaml:"artist_name"`

	// Story is the multi-paragraph body. Paragraphs are separated by blank lines.
	Story string `json:"story" yaml:"story"`

	// Metadata holds country, genres and track information.
	Metadata Metadata `json:"metadata" yaml:"metadata"`

	// Images are gallery image URLs in display order.
	Images []string `json:"images" yaml:"images"`

	// Videos are representative YouTube videos in display order.
	Videos []Video `json:"youtube_videos" yaml:"youtube_videos"`

	// SpotifyURL is optional; empty when the API sent none.
	SpotifyURL string `json:"spotify_url,omitempty" yaml:"spotify_url,omitempty"`
}

// Metadata describes the artist behind a narrative.
type Metadata struct {
	Country        string   `json:"country" yaml:"country"`
	Genres         []string `json:"genres" yaml:"genres"`
	Tracks         []string `json:"tracks" yaml:"tracks"`
	TracksCount    int      `json:"tracks_count" yaml:"tracks_count"`
	SimilarArtists []string `json:"similar_artists" yaml:"similar_artists"`
}

// Video is a single YouTube video attached to a narrative.
type Video struct {
	Title   string `json:"title" yaml:"title"`
	VideoID string `json:"video_id" yaml:"video_id"`
}

// ID returns the video id, or PlaceholderVideoID when the entry has none.
func (v Video) ID() string {
	id := strings.TrimSpace(v.VideoID)
	if id == "" {
		return PlaceholderVideoID
	}
	return id
}

// EmbedURL returns the embeddable player URL for the video.
//
// Example:
//
//	Video{VideoID: "abc"}.EmbedURL() // "https://www.youtube.com/embed/abc"
//	Video{}.EmbedURL()               // ".../embed/dQw4w9WgXcQ"
func (v Video) EmbedURL() string {
	return youtubeEmbedBase + v.ID()
}

// WatchURL returns the regular watch page URL, which terminals can open.
func (v Video) WatchURL() string {
	return youtubeWatchBase + v.ID()
}

// Paragraphs splits Story on blank lines, trimming each paragraph and
// dropping empty ones. Line breaks inside a paragraph are kept.
func (n *Narrative) Paragraphs() []string {
	normalized := strings.ReplaceAll(n.Story, "\r\n", "\n")
	blocks := strings.Split(normalized, "\n\n")

	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block != "" {
			paragraphs = append(paragraphs, block)
		}
	}
	return paragraphs
}

// HasGallery reports whether the gallery section should be shown.
func (n *Narrative) HasGallery() bool {
	return len(n.Images) > 0
}

// HasVideos reports whether the video section should be shown.
func (n *Narrative) HasVideos() bool {
	return len(n.Videos) > 0
}

// HasSimilarArtists reports whether the similar-artists section should be shown.
func (n *Narrative) HasSimilarArtists() bool {
	return len(n.Metadata.SimilarArtists) > 0
}
