package model

import "fmt"

// Artist represents one artist in the fanfic directory.
//
// Slug is unique across the directory and is the only key used to request
// the artist's narrative.
type Artist struct {
	// Slug is the URL-safe identifier, e.g. "2-day-old-sneakers".
	Slug string `json:"slug" yaml:"slug"`

	// Name is the display name used for sorting and searching.
	Name string `json:"name" yaml:"name"`

	// TracksCount is the number of known tracks. Never negative.
	TracksCount int `json:"tracks_count" yaml:"tracks_count"`
}

// HasTracks reports whether the artist has at least one track.
func (a Artist) HasTracks() bool {
	return a.TracksCount > 0
}

// TracksLabel returns the chip label shown next to the artist name.
func (a Artist) TracksLabel() string {
	return fmt.Sprintf("%d tracks", a.TracksCount)
}

// ServiceInfo is the response of GET /api/info.
type ServiceInfo struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// String formats the info the way the home banner shows it.
func (i ServiceInfo) String() string {
	return fmt.Sprintf("%s v%s", i.Name, i.Version)
}
