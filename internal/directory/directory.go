// Package directory implements the searchable artist list.
//
// A Directory fetches the artist collection once, keeps it sorted by name
// with locale-aware collation, and derives the visible subset from the
// current search query on every change.
package directory

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/space84/studycafe/internal/fanfic"
	"github.com/space84/studycafe/internal/logging"
	"github.com/space84/studycafe/internal/model"
)

// Source provides the artist collection.
type Source interface {
	Artists(ctx context.Context) ([]model.Artist, error)
}

// State represents the load state of the directory.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Directory holds the sorted artist collection and the active filter.
//
// Directory is not safe for concurrent use. In the TUI it is only touched
// from the Bubble Tea update loop; fetches run elsewhere and are applied
// with Resolve.
type Directory struct {
	source   Source
	logger   *slog.Logger
	locale   language.Tag
	onSelect func(slug string)

	all     []model.Artist
	visible []model.Artist
	query   string

	state State
	err   error
	seq   uint64
}

// Option configures a Directory.
type Option func(*Directory)

// WithLogger sets the logger used for fetch failures.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Directory) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithLocale sets the collation locale for sorting names.
func WithLocale(tag language.Tag) Option {
	return func(d *Directory) {
		d.locale = tag
	}
}

// WithOnSelect registers the callback invoked by Select.
func WithOnSelect(fn func(slug string)) Option {
	return func(d *Directory) {
		d.onSelect = fn
	}
}

// New creates an empty Directory backed by source.
func New(source Source, opts ...Option) *Directory {
	d := &Directory{
		source: source,
		logger: logging.Nop(),
		locale: language.Korean,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load fetches the collection and applies it. It blocks until the fetch
// completes and returns the fetch error, if any.
func (d *Directory) Load(ctx context.Context) error {
	seq := d.Begin()
	artists, err := d.Fetch(ctx)
	d.Resolve(seq, artists, err)
	return err
}

// Begin marks the directory as loading and returns the sequence number the
// matching Resolve call must carry.
func (d *Directory) Begin() uint64 {
	d.seq++
	d.state = StateLoading
	d.err = nil
	return d.seq
}

// Fetch performs the network request only. It does not touch directory
// state and may run on any goroutine.
func (d *Directory) Fetch(ctx context.Context) ([]model.Artist, error) {
	return d.source.Artists(ctx)
}

// Resolve applies the outcome of the fetch started by Begin with seq.
// Outcomes of superseded fetches are ignored and Resolve returns false.
func (d *Directory) Resolve(seq uint64, artists []model.Artist, err error) bool {
	if seq != d.seq {
		return false
	}

	if err != nil {
		d.logger.Error("artist list load failed",
			"kind", fanfic.Classify(err).String(),
			"error", err,
		)
		d.all = nil
		d.state = StateFailed
		d.err = err
		d.refilter()
		return true
	}

	d.all = SortByName(artists, d.locale)
	d.state = StateReady
	d.refilter()
	d.logger.Debug("artist list loaded", "count", len(d.all))
	return true
}

// SetQuery updates the active filter and recomputes the visible subset.
func (d *Directory) SetQuery(q string) {
	d.query = q
	d.refilter()
}

// Select notifies the owner that the artist with slug was chosen.
// The directory itself is unchanged.
func (d *Directory) Select(slug string) {
	if d.onSelect != nil {
		d.onSelect(slug)
	}
}

// Query returns the active filter.
func (d *Directory) Query() string { return d.query }

// State returns the load state.
func (d *Directory) State() State { return d.state }

// Err returns the error of the last failed load.
func (d *Directory) Err() error { return d.err }

// Loading reports whether a fetch is outstanding.
func (d *Directory) Loading() bool { return d.state == StateLoading }

// Loaded reports whether a fetch has completed, successfully or not.
func (d *Directory) Loaded() bool {
	return d.state == StateReady || d.state == StateFailed
}

// NoResults reports whether the "no results" state should be shown:
// loading has finished and nothing is visible.
func (d *Directory) NoResults() bool {
	return d.Loaded() && len(d.visible) == 0
}

// All returns the full sorted collection. Callers must not modify it.
func (d *Directory) All() []model.Artist { return d.all }

// Visible returns the filtered collection. Callers must not modify it.
func (d *Directory) Visible() []model.Artist { return d.visible }

func (d *Directory) refilter() {
	d.visible = Filter(d.all, d.query)
}

// SortByName returns a copy of artists sorted ascending by name using the
// collation rules of locale. Equal names keep their input order.
func SortByName(artists []model.Artist, locale language.Tag) []model.Artist {
	sorted := make([]model.Artist, len(artists))
	copy(sorted, artists)

	c := collate.New(locale)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}

// Filter returns the artists whose lowercased name contains the lowercased
// query, in their original order. An empty query returns all artists.
func Filter(artists []model.Artist, query string) []model.Artist {
	if query == "" {
		return artists
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	visible := make([]model.Artist, 0, len(artists))
	for _, a := range artists {
		if strings.Contains(lower.String(a.Name), needle) {
			visible = append(visible, a)
		}
	}
	return visible
}
