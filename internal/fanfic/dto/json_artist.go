package dto

import "github.com/space84/studycafe/internal/model"

// JSONArtistList is the body of GET /api/artists.
type JSONArtistList struct {
	Artists []JSONArtist `json:"artists"`
	Total   int          `json:"total"`
}

// JSONArtist is one entry of JSONArtistList.
type JSONArtist struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	TracksCount int    `json:"tracks_count"`
}

// ToArtists converts the list to model artists, in server order.
//
// Entries without a slug cannot be opened and are skipped. A negative
// track count is clamped to zero.
func (l *JSONArtistList) ToArtists() []model.Artist {
	artists := make([]model.Artist, 0, len(l.Artists))
	for _, a := range l.Artists {
		if a.Slug == "" {
			continue
		}
		count := a.TracksCount
		if count < 0 {
			count = 0
		}
		name := a.Name
		if name == "" {
			name = a.Slug
		}
		artists = append(artists, model.Artist{
			Slug:        a.Slug,
			Name:        name,
			TracksCount: count,
		})
	}
	return artists
}

// JSONInfo is the body of GET /api/info.
type JSONInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// ToServiceInfo converts the body to model.ServiceInfo.
func (i *JSONInfo) ToServiceInfo() model.ServiceInfo {
	return model.ServiceInfo{Name: i.Name, Version: i.Version, Description: i.Description}
}

// JSONHealth is the body of GET /api/health.
type JSONHealth struct {
	Status string `json:"status"`
}
