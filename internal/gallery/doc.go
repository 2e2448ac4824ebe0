// Package gallery downloads a narrative's gallery images and renders them
// as terminal thumbnails.
//
// # Loading
//
// Loader fetches images concurrently with a configurable limit:
//
//	loader := gallery.NewLoader(httpClient, 3, 32, logger)
//	thumbs, err := loader.Load(ctx, narrative.Images)
//
// A broken image never fails the whole gallery; it is logged and skipped.
//
// # Rendering
//
// Each thumbnail is drawn with the upper half block character, using the
// foreground for one pixel row and the background for the next:
//
//	fmt.Println(thumbs[0].Rendered)
package gallery
