package domain

// ApplicationState is the visitor-facing view state. Start from DefaultState.
type ApplicationState struct {
	Page       Page   `json:"page"`
	DarkMode   bool   `json:"dark_mode"`
	SearchTerm string `json:"search_term"`
}

// DefaultState is the state every fresh visitor starts from.
func DefaultState() ApplicationState {
	return ApplicationState{Page: PageHome}
}

// StateSnapshot is a consistent copy of the state together with its derived directory view.
type StateSnapshot struct {
	ApplicationState
	Employees []Employee `json:"employees"`
}
