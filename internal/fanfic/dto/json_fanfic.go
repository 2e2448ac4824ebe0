package dto

import (
	"encoding/json"

	"github.com/space84/studycafe/internal/model"
)

// JSONFanfic is the body of GET /api/artists/{slug}/fanfic.
type JSONFanfic struct {
	ArtistName string       `json:"artist_name"`
	Title      string       `json:"title"`
	Story      string       `json:"story"`
	Metadata   JSONMetadata `json:"metadata"`
	Videos     []JSONVideo  `json:"youtube_videos"`
	Images     []string     `json:"images"`
	SpotifyURL string       `json:"spotify_url"`
}

// JSONMetadata is the nested metadata object.
type JSONMetadata struct {
	Country        string       `json:"country"`
	Genres         StringOrList `json:"genres"`
	TracksCount    int          `json:"tracks_count"`
	Tracks         []string     `json:"tracks"`
	SimilarArtists []string     `json:"similar_artists"`
}

// JSONVideo is one YouTube video entry.
type JSONVideo struct {
	Title   string `json:"title"`
	VideoID string `json:"video_id"`
}

// StringOrList accepts either a JSON string or a list of strings.
// The API normalises genres to a list, but raw artist files may hold a
// bare string.
type StringOrList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*s = nil
		return nil
	}
	*s = []string{single}
	return nil
}

// ToNarrative converts the body to a model.Narrative.
//
// Missing arrays become empty slices so callers can range without nil
// checks. When tracks_count is absent it is derived from the track list.
func (f *JSONFanfic) ToNarrative() *model.Narrative {
	videos := make([]model.Video, 0, len(f.Videos))
	for _, v := range f.Videos {
		videos = append(videos, model.Video{Title: v.Title, VideoID: v.VideoID})
	}

	tracks := nonNil(f.Metadata.Tracks)
	count := f.Metadata.TracksCount
	if count <= 0 {
		count = len(tracks)
	}

	return &model.Narrative{
		Title:      f.Title,
		ArtistName: f.ArtistName,
		Story:      f.Story,
		Metadata: model.Metadata{
			Country:        f.Metadata.Country,
			Genres:         nonNil([]string(f.Metadata.Genres)),
			Tracks:         tracks,
			TracksCount:    count,
			SimilarArtists: nonNil(f.Metadata.SimilarArtists),
		},
		Images:     nonNil(f.Images),
		Videos:     videos,
		SpotifyURL: f.SpotifyURL,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
