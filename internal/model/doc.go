// Package model defines the core data structures shared by the studycafe
// front-end packages.
//
// # Artist
//
// Artist is one entry of the artist directory served by GET /api/artists:
//
//	artist := model.Artist{Slug: "2-day-old-sneakers", Name: "2 Day Old Sneakers", TracksCount: 5}
//
// # Narrative
//
// Narrative is the generated fanfiction for a single artist, served by
// GET /api/artists/{slug}/fanfic. It carries the story text plus metadata,
// gallery image URLs and YouTube videos:
//
//	for _, p := range narrative.Paragraphs() {
//	    fmt.Println(p)
//	}
//	if narrative.HasVideos() {
//	    fmt.Println(narrative.Videos[0].EmbedURL())
//	}
//
// All types are read-only values once decoded; nothing in this package
// performs I/O.
package model
