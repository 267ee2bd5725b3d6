// Package site holds the view state of one visitor: which page is current,
// whether dark mode is on, and the directory search with its derived result.
package site

import (
	"github.com/fastygo/petbuddy/domain"
)

// Effects receives presentation side effects triggered by state changes.
type Effects interface {
	ScrollToTop()
}

type noopEffects struct{}

func (noopEffects) ScrollToTop() {}

// EffectsFunc adapts a plain function to Effects.
type EffectsFunc func()

func (f EffectsFunc) ScrollToTop() { f() }

// Store owns an ApplicationState and keeps the filtered directory in step with
// the search term. A Store is not safe for concurrent use; callers serialise access.
type Store struct {
	employees []domain.Employee
	effects   Effects

	state    domain.ApplicationState
	filtered []domain.Employee
}

// NewStore creates a store in the default state over the given reference employees.
func NewStore(employees []domain.Employee, effects Effects) *Store {
	if effects == nil {
		effects = noopEffects{}
	}
	s := &Store{
		employees: employees,
		effects:   effects,
		state:     domain.DefaultState(),
	}
	s.recompute()
	return s
}

// Restore creates a store that resumes from a previously captured state.
func Restore(employees []domain.Employee, state domain.ApplicationState, effects Effects) *Store {
	s := NewStore(employees, effects)
	s.state = state
	s.recompute()
	return s
}

// SetPage navigates by name. Unknown names move the store to PageNotFound
// without firing the scroll effect.
func (s *Store) SetPage(name string) {
	page, _ := domain.ParsePage(name)
	s.Navigate(page)
}

// Navigate moves to page if it is navigable and to PageNotFound otherwise.
func (s *Store) Navigate(page domain.Page) {
	if !page.Navigable() {
		s.state.Page = domain.PageNotFound
		return
	}
	s.state.Page = page
	s.effects.ScrollToTop()
}

func (s *Store) ToggleTheme() {
	s.state.DarkMode = !s.state.DarkMode
}

// SetSearchTerm stores text verbatim and recomputes the directory before returning.
func (s *Store) SetSearchTerm(text string) {
	s.state.SearchTerm = text
	s.recompute()
}

// State returns the mutable part of the store without the derived view.
func (s *Store) State() domain.ApplicationState { return s.state }

func (s *Store) CurrentPage() domain.Page { return s.state.Page }

func (s *Store) IsDarkMode() bool { return s.state.DarkMode }

func (s *Store) SearchTerm() string { return s.state.SearchTerm }

// FilteredEmployees returns a copy of the current directory view.
func (s *Store) FilteredEmployees() []domain.Employee {
	out := make([]domain.Employee, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// Snapshot returns the state and its derived view as one consistent value.
func (s *Store) Snapshot() domain.StateSnapshot {
	return domain.StateSnapshot{
		ApplicationState: s.state,
		Employees:        s.FilteredEmployees(),
	}
}

func (s *Store) recompute() {
	s.filtered = FilterEmployees(s.employees, s.state.SearchTerm)
}
