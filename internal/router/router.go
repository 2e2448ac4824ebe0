// Package router holds the single authoritative view state of the
// front-end: home, the artist list, or one artist's detail page.
package router

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySlug is returned when the detail view is selected without an artist.
var ErrEmptySlug = errors.New("detail view requires an artist slug")

// View identifies one of the mutually exclusive screens.
type View int

const (
	ViewHome View = iota
	ViewList
	ViewDetail
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewList:
		return "list"
	case ViewDetail:
		return "detail"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// State is a view plus the artist slug for ViewDetail.
type State struct {
	View View
	Slug string
}

func (s State) String() string {
	if s.View == ViewDetail {
		return "detail(" + s.Slug + ")"
	}
	return s.View.String()
}

// Transition describes a state change. The owner turns it into side
// effects, e.g. entering a detail state starts loading that artist.
type Transition struct {
	From State
	To   State
}

// Entered reports whether the transition lands on view v.
func (t Transition) Entered(v View) bool {
	return t.To.View == v
}

// Changed reports whether the state actually changed.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Router holds the current State. The zero value is not usable; call New.
type Router struct {
	current State
}

// New returns a Router on the home view.
func New() *Router {
	return &Router{current: State{View: ViewHome}}
}

// Current returns the current state.
func (r *Router) Current() State {
	return r.current
}

// Select switches to view. slug is required for ViewDetail and ignored
// otherwise. Any view is reachable from any other.
func (r *Router) Select(view View, slug string) (Transition, error) {
	next := State{View: view}
	if view == ViewDetail {
		slug = strings.TrimSpace(slug)
		if slug == "" {
			return Transition{From: r.current, To: r.current}, ErrEmptySlug
		}
		next.Slug = slug
	}

	t := Transition{From: r.current, To: next}
	r.current = next
	return t, nil
}

// Home switches to the home view.
func (r *Router) Home() Transition {
	t, _ := r.Select(ViewHome, "")
	return t
}

// List switches to the artist list.
func (r *Router) List() Transition {
	t, _ := r.Select(ViewList, "")
	return t
}

// Detail switches to the detail view for slug.
func (r *Router) Detail(slug string) (Transition, error) {
	return r.Select(ViewDetail, slug)
}

// Back returns to the parent view: detail goes to the list, the list goes
// home, home stays home.
func (r *Router) Back() Transition {
	switch r.current.View {
	case ViewDetail:
		return r.List()
	default:
		return r.Home()
	}
}
