package domain

// ActionType names one of the user-triggered state mutations.
type ActionType string

const (
	ActionSetPage     ActionType = "SET_PAGE"
	ActionToggleTheme ActionType = "TOGGLE_THEME"
	ActionSetSearch   ActionType = "SET_SEARCH"
)

// Action is a single command issued by the presentation layer.
type Action struct {
	Type ActionType `json:"type"`
	Name string     `json:"name,omitempty"`
	Text string     `json:"text,omitempty"`
}

func SetPage(name string) Action { return Action{Type: ActionSetPage, Name: name} }

func ToggleTheme() Action { return Action{Type: ActionToggleTheme} }

func SetSearch(text string) Action { return Action{Type: ActionSetSearch, Text: text} }
