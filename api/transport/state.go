package transport

import "github.com/fastygo/petbuddy/domain"

// StateResponse is the JSON read surface of a visitor session.
type StateResponse struct {
	Page        domain.Page       `json:"page"`
	DarkMode    bool              `json:"dark_mode"`
	SearchTerm  string            `json:"search_term"`
	Employees   []domain.Employee `json:"employees"`
	ScrollToTop bool              `json:"scroll_to_top"`
}

func NewStateResponse(snapshot domain.StateSnapshot, scroll bool) StateResponse {
	return StateResponse{
		Page:        snapshot.Page,
		DarkMode:    snapshot.DarkMode,
		SearchTerm:  snapshot.SearchTerm,
		Employees:   snapshot.Employees,
		ScrollToTop: scroll,
	}
}
