package gallery

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/space84/studycafe/internal/logging"
)

// Downloader fetches raw image bytes.
type Downloader interface {
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// Thumbnail is one rendered gallery image.
type Thumbnail struct {
	// Index is the position of the image in the narrative's list.
	Index int
	URL   string
	// Rendered is the scaled image as half-block cells.
	Rendered string
}

// Loader downloads and renders gallery images concurrently.
type Loader struct {
	downloader  Downloader
	images      *ImageService
	logger      *slog.Logger
	maxParallel int
	width       int
}

// NewLoader creates a Loader. width is the thumbnail width in terminal
// cells; the height budget is the same number of pixel rows.
func NewLoader(downloader Downloader, maxParallel, width int, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = logging.Nop()
	}
	if maxParallel <= 0 {
		maxParallel = 1
	}
	if width <= 0 {
		width = 32
	}
	return &Loader{
		downloader:  downloader,
		images:      NewImageService(),
		logger:      logger,
		maxParallel: maxParallel,
		width:       width,
	}
}

// Load fetches every URL and returns thumbnails in input order. Images that
// fail to download or decode are logged and left out; Load only returns an
// error when ctx is canceled.
func (l *Loader) Load(ctx context.Context, urls []string) ([]Thumbnail, error) {
	results := make([]*Thumbnail, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.maxParallel)

	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			thumb, err := l.loadOne(ctx, i, url)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				l.logger.Warn("gallery image skipped", "url", url, "error", err)
				return nil // Continue with other images
			}
			results[i] = thumb
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	thumbs := make([]Thumbnail, 0, len(urls))
	for _, t := range results {
		if t != nil {
			thumbs = append(thumbs, *t)
		}
	}
	return thumbs, nil
}

func (l *Loader) loadOne(ctx context.Context, index int, url string) (*Thumbnail, error) {
	data, err := l.downloader.DownloadBytes(ctx, url)
	if err != nil {
		return nil, err
	}

	img, err := l.images.Thumbnail(data, l.width, l.width)
	if err != nil {
		return nil, err
	}

	return &Thumbnail{
		Index:    index,
		URL:      url,
		Rendered: RenderHalfBlocks(img),
	}, nil
}
