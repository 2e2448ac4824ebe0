package fanfic

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/space84/studycafe/internal/fanfic/dto"
	"github.com/space84/studycafe/internal/http"
	"github.com/space84/studycafe/internal/model"
)

// Client talks to the studycafe fanfic API.
//
// The base URL is fixed at construction; Client never consults the
// environment.
//
// Example usage:
//
//	client := fanfic.NewClient("http://localhost:8001", http.NewClient())
//
//	artists, err := client.Artists(ctx)
//	narrative, err := client.Fanfic(ctx, "2-day-old-sneakers")
//	if errors.Is(err, fanfic.ErrNotFound) {
//	    // no such artist
//	}
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the API rooted at baseURL.
// A nil httpClient gets the default http.NewClient().
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.NewClient()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BaseURL returns the API root this client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Info fetches GET /api/info.
func (c *Client) Info(ctx context.Context) (model.ServiceInfo, error) {
	var body dto.JSONInfo
	if err := c.http.GetJSON(ctx, c.baseURL+"/api/info", &body); err != nil {
		return model.ServiceInfo{}, wrap("fetch service info", err)
	}
	return body.ToServiceInfo(), nil
}

// Health fetches GET /api/health and returns the reported status.
func (c *Client) Health(ctx context.Context) (string, error) {
	var body dto.JSONHealth
	if err := c.http.GetJSON(ctx, c.baseURL+"/api/health", &body); err != nil {
		return "", wrap("check health", err)
	}
	return body.Status, nil
}

// Artists fetches GET /api/artists in server order.
func (c *Client) Artists(ctx context.Context) ([]model.Artist, error) {
	var body dto.JSONArtistList
	if err := c.http.GetJSON(ctx, c.baseURL+"/api/artists", &body); err != nil {
		return nil, wrap("fetch artists", err)
	}
	return body.ToArtists(), nil
}

// Fanfic fetches GET /api/artists/{slug}/fanfic.
//
// A 404 answer or a null body is reported as ErrNotFound; use Classify to
// tell it apart from transport failures.
func (c *Client) Fanfic(ctx context.Context, slug string) (*model.Narrative, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("fetch fanfic: %w", ErrEmptySlug)
	}

	endpoint := fmt.Sprintf("%s/api/artists/%s/fanfic", c.baseURL, url.PathEscape(slug))

	var body *dto.JSONFanfic
	if err := c.http.GetJSON(ctx, endpoint, &body); err != nil {
		return nil, wrap(fmt.Sprintf("fetch fanfic %q", slug), err)
	}
	if body == nil {
		return nil, fmt.Errorf("fetch fanfic %q: %w", slug, ErrNotFound)
	}
	return body.ToNarrative(), nil
}
