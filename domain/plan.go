package domain

import "fmt"

// PlanTheme is the visual theme tag of a product plan.
type PlanTheme string

const (
	ThemeCosmic  PlanTheme = "Cosmic"
	ThemeForest  PlanTheme = "Forest"
	ThemeOcean   PlanTheme = "Ocean"
	ThemeClassic PlanTheme = "Classic"
)

// ProductPlan is an immutable pricing plan.
type ProductPlan struct {
	Name        string    `json:"name" yaml:"name"`
	Price       int       `json:"price" yaml:"price"`
	Features    []string  `json:"features" yaml:"features"`
	Theme       PlanTheme `json:"theme" yaml:"theme"`
	Highlight   bool      `json:"highlight,omitempty" yaml:"highlight"`
	Description string    `json:"description" yaml:"description"`
}

func (t *PlanTheme) UnmarshalText(text []byte) error {
	switch v := PlanTheme(text); v {
	case ThemeCosmic, ThemeForest, ThemeOcean, ThemeClassic:
		*t = v
		return nil
	default:
		return fmt.Errorf("unknown plan theme %q", string(text))
	}
}
