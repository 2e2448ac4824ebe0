package fanfic

import (
	"context"
	"errors"
	"fmt"

	"github.com/space84/studycafe/internal/http"
)

var (
	// ErrNotFound is matched by errors.Is when the API answered 404.
	ErrNotFound = errors.New("not found")

	// ErrEmptySlug is returned when an artist request has no slug.
	ErrEmptySlug = errors.New("empty artist slug")
)

// Kind classifies a fetch failure.
type Kind int

const (
	// KindNone means no error.
	KindNone Kind = iota

	// KindNotFound means the resource does not exist on the server.
	KindNotFound

	// KindNetwork covers transport errors, timeouts, unexpected statuses
	// and undecodable bodies.
	KindNetwork

	// KindCanceled means the caller canceled the request.
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindNetwork:
		return "network"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Classify maps an error returned by Client to a Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrEmptySlug):
		return KindNotFound
	case errors.Is(err, context.Canceled):
		return KindCanceled
	default:
		return KindNetwork
	}
}

// notFoundError keeps the StatusError reachable through errors.As while
// also matching ErrNotFound.
type notFoundError struct {
	status *http.StatusError
}

func (e *notFoundError) Error() string { return e.status.Error() }

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

func (e *notFoundError) Unwrap() error { return e.status }

func wrap(op string, err error) error {
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) && statusErr.NotFound() {
		return fmt.Errorf("%s: %w", op, &notFoundError{status: statusErr})
	}
	return fmt.Errorf("%s: %w", op, err)
}
