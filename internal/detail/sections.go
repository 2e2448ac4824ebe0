package detail

import (
	"fmt"

	"github.com/space84/studycafe/internal/model"
)

// Sections is the render-ready breakdown of a narrative. Optional sections
// are nil when the narrative has nothing for them.
type Sections struct {
	Title      string
	Artist     string
	Chips      []string
	Paragraphs []string

	TracksHeading string
	Tracks        []string

	SimilarArtists []string
	Gallery        []GalleryImage
	Videos         []VideoEmbed
}

// GalleryImage is one gallery entry.
type GalleryImage struct {
	URL string
	Alt string
}

// VideoEmbed is one video entry.
type VideoEmbed struct {
	Title    string
	EmbedURL string
	WatchURL string
}

// HasGallery reports whether the gallery section is present.
func (s Sections) HasGallery() bool { return s.Gallery != nil }

// HasVideos reports whether the video section is present.
func (s Sections) HasVideos() bool { return s.Videos != nil }

// HasSimilarArtists reports whether the similar-artists section is present.
func (s Sections) HasSimilarArtists() bool { return s.SimilarArtists != nil }

// BuildSections derives Sections from n.
func BuildSections(n *model.Narrative) Sections {
	s := Sections{
		Title:         n.Title,
		Artist:        n.ArtistName,
		Paragraphs:    n.Paragraphs(),
		TracksHeading: fmt.Sprintf("Playlist tracks (%d)", n.Metadata.TracksCount),
		Tracks:        n.Metadata.Tracks,
	}

	if n.Metadata.Country != "" {
		s.Chips = append(s.Chips, n.Metadata.Country)
	}
	s.Chips = append(s.Chips, n.Metadata.Genres...)

	if n.HasSimilarArtists() {
		s.SimilarArtists = n.Metadata.SimilarArtists
	}

	if n.HasGallery() {
		s.Gallery = make([]GalleryImage, len(n.Images))
		for i, url := range n.Images {
			s.Gallery[i] = GalleryImage{
				URL: url,
				Alt: fmt.Sprintf("%s %d", n.ArtistName, i+1),
			}
		}
	}

	if n.HasVideos() {
		s.Videos = make([]VideoEmbed, len(n.Videos))
		for i, video := range n.Videos {
			s.Videos[i] = VideoEmbed{
				Title:    video.Title,
				EmbedURL: video.EmbedURL(),
				WatchURL: video.WatchURL(),
			}
		}
	}

	return s
}
