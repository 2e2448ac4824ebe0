package router

import (
	"errors"
	"testing"
)

func TestRouter_InitialHome(t *testing.T) {
	r := New()
	if got := r.Current(); got.View != ViewHome || got.Slug != "" {
		t.Errorf("Current() = %v, want home", got)
	}
}

func TestRouter_AnyViewReachable(t *testing.T) {
	tests := []struct {
		name string
		from func(r *Router)
		to   View
		slug string
	}{
		{"home to list", func(r *Router) {}, ViewList, ""},
		{"home to detail", func(r *Router) {}, ViewDetail, "a"},
		{"detail to home", func(r *Router) { _, _ = r.Detail("a") }, ViewHome, ""},
		{"detail to detail", func(r *Router) { _, _ = r.Detail("a") }, ViewDetail, "b"},
		{"list to home", func(r *Router) { r.List() }, ViewHome, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			tt.from(r)

			tr, err := r.Select(tt.to, tt.slug)
			if err != nil {
				t.Fatalf("Select failed: %v", err)
			}
			if tr.To.View != tt.to || r.Current().View != tt.to {
				t.Errorf("Current() = %v, want %v", r.Current(), tt.to)
			}
			if r.Current().Slug != tt.slug {
				t.Errorf("Slug = %q, want %q", r.Current().Slug, tt.slug)
			}
		})
	}
}

func TestRouter_DetailRequiresSlug(t *testing.T) {
	r := New()
	r.List()

	tr, err := r.Detail("  ")
	if !errors.Is(err, ErrEmptySlug) {
		t.Fatalf("error = %v, want ErrEmptySlug", err)
	}
	if tr.Changed() {
		t.Error("rejected transition should not change state")
	}
	if r.Current().View != ViewList {
		t.Errorf("Current() = %v, want list", r.Current())
	}
}

func TestRouter_SlugIgnoredOutsideDetail(t *testing.T) {
	r := New()
	if _, err := r.Select(ViewList, "ignored"); err != nil {
		t.Fatal(err)
	}
	if r.Current().Slug != "" {
		t.Errorf("Slug = %q, want empty", r.Current().Slug)
	}
}

func TestRouter_Transition(t *testing.T) {
	r := New()
	r.List()

	tr, err := r.Detail("b")
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Entered(ViewDetail) || tr.From.View != ViewList || tr.To.Slug != "b" {
		t.Errorf("transition = %+v", tr)
	}

	same, _ := r.Detail("b")
	if same.Changed() {
		t.Error("selecting the current state should not report a change")
	}
}

func TestRouter_Back(t *testing.T) {
	r := New()
	_, _ = r.Detail("a")

	if tr := r.Back(); tr.To.View != ViewList {
		t.Errorf("Back() from detail = %v, want list", tr.To)
	}
	if tr := r.Back(); tr.To.View != ViewHome {
		t.Errorf("Back() from list = %v, want home", tr.To)
	}
	if tr := r.Back(); tr.To.View != ViewHome || tr.Changed() {
		t.Errorf("Back() from home = %+v, want unchanged home", tr)
	}
}

func TestState_String(t *testing.T) {
	if got := (State{View: ViewDetail, Slug: "a"}).String(); got != "detail(a)" {
		t.Errorf("String() = %q", got)
	}
	if got := (State{View: ViewList}).String(); got != "list" {
		t.Errorf("String() = %q", got)
	}
}
