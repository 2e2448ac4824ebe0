// Package fanfic is the client for the studycafe artist fanfic API.
//
// # Endpoints
//
//	GET /api/info                  service name and version
//	GET /api/health                liveness
//	GET /api/artists               the artist directory
//	GET /api/artists/{slug}/fanfic generated narrative for one artist
//
// # Errors
//
// Every error is wrapped with the operation that failed. Classify reduces
// an error to a Kind so views can tell "the artist does not exist" from
// "the network failed":
//
//	_, err := client.Fanfic(ctx, slug)
//	switch fanfic.Classify(err) {
//	case fanfic.KindNotFound:
//	case fanfic.KindNetwork:
//	}
package fanfic
