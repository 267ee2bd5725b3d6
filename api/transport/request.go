package transport

import "github.com/fastygo/petbuddy/domain"

// ActionRequest is the JSON body of POST /api/v1/actions.
type ActionRequest struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Text string `json:"text"`
}

func (r ActionRequest) Action() domain.Action {
	return domain.Action{
		Type: domain.ActionType(r.Type),
		Name: r.Name,
		Text: r.Text,
	}
}
