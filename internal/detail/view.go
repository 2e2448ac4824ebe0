// Package detail implements the artist detail view: one artist's generated
// narrative with its tracks, gallery and videos.
//
// The view is a small state machine:
//
//	Idle -> Loading -> Ready | NotFound | Failed
//
// Refresh from any settled state goes back through Loading. Every load is
// tagged with a monotonically increasing sequence number and only the
// response to the most recent load is applied, so overlapping refreshes
// cannot leave an older narrative on screen.
package detail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/space84/studycafe/internal/fanfic"
	"github.com/space84/studycafe/internal/logging"
	"github.com/space84/studycafe/internal/model"
)

// ErrNoArtist is returned by Refresh before any artist was loaded.
var ErrNoArtist = errors.New("no artist bound to detail view")

// Source provides artist narratives.
type Source interface {
	Fanfic(ctx context.Context, slug string) (*model.Narrative, error)
}

// State represents the current detail view state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateNotFound
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
	case StateNotFound:
		return "not_found"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// View holds the narrative for the bound artist.
//
// View is not safe for concurrent use; see directory.Directory for the
// Begin/Fetch/Resolve pattern used by the TUI.
type View struct {
	source Source
	logger *slog.Logger

	slug      string
	narrative *model.Narrative
	state     State
	err       error
	seq       uint64
}

// New creates an idle View backed by source.
func New(source Source, logger *slog.Logger) *View {
	if logger == nil {
		logger = logging.Nop()
	}
	return &View{source: source, logger: logger}
}

// Load binds slug, fetches its narrative and applies the result.
// It blocks until the fetch completes and returns the fetch error.
func (v *View) Load(ctx context.Context, slug string) error {
	seq := v.Begin(slug)
	n, err := v.Fetch(ctx, slug)
	v.Resolve(seq, n, err)
	return err
}

// Refresh reloads the currently bound artist.
func (v *View) Refresh(ctx context.Context) error {
	if v.slug == "" {
		return ErrNoArtist
	}
	return v.Load(ctx, v.slug)
}

// Begin binds slug, enters Loading and returns the sequence number for the
// matching Resolve. The held narrative stays until the response arrives.
func (v *View) Begin(slug string) uint64 {
	v.seq++
	v.slug = slug
	v.state = StateLoading
	v.err = nil
	return v.seq
}

// Fetch performs the network request only. It may run on any goroutine.
func (v *View) Fetch(ctx context.Context, slug string) (*model.Narrative, error) {
	return v.source.Fanfic(ctx, slug)
}

// Resolve applies the response for the load started with seq. Responses to
// superseded loads are dropped and Resolve returns false.
func (v *View) Resolve(seq uint64, n *model.Narrative, err error) bool {
	if seq != v.seq {
		v.logger.Debug("dropping stale fanfic response", "seq", seq, "latest", v.seq)
		return false
	}

	switch {
	case err != nil:
		kind := fanfic.Classify(err)
		v.logger.Error("fanfic load failed", "slug", v.slug, "kind", kind.String(), "error", err)
		v.narrative = nil
		v.err = err
		if kind == fanfic.KindNotFound {
			v.state = StateNotFound
		} else {
			v.state = StateFailed
		}
	case n == nil:
		v.narrative = nil
		v.err = fmt.Errorf("fetch fanfic %q: %w", v.slug, fanfic.ErrNotFound)
		v.state = StateNotFound
	default:
		v.narrative = n
		v.err = nil
		v.state = StateReady
		v.logger.Debug("fanfic loaded", "slug", v.slug, "title", n.Title)
	}
	return true
}

// Slug returns the bound artist slug.
func (v *View) Slug() string { return v.slug }

// State returns the current state.
func (v *View) State() State { return v.state }

// Err returns the error of the last failed load.
func (v *View) Err() error { return v.err }

// Seq returns the sequence number of the latest load.
func (v *View) Seq() uint64 { return v.seq }

// Loading reports whether a load is outstanding.
func (v *View) Loading() bool { return v.state == StateLoading }

// Narrative returns the held narrative, or nil when absent.
func (v *View) Narrative() *model.Narrative { return v.narrative }

// Sections derives the render sections from the held narrative.
// It returns false when there is nothing to render.
func (v *View) Sections() (Sections, bool) {
	if v.narrative == nil {
		return Sections{}, false
	}
	return BuildSections(v.narrative), true
}
