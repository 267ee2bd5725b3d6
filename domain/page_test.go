package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Page
		wantOK bool
	}{
		{name: "home", input: "Home", want: PageHome, wantOK: true},
		{name: "about", input: "About", want: PageAbout, wantOK: true},
		{name: "products", input: "Products", want: PageProducts, wantOK: true},
		{name: "directory", input: "Directory", want: PageDirectory, wantOK: true},
		{name: "lowercase is not a page", input: "home", want: PageNotFound},
		{name: "empty", input: "", want: PageNotFound},
		{name: "unknown", input: "Settings", want: PageNotFound},
		{name: "not found label is not navigable", input: "404", want: PageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePage(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPageNavigable(t *testing.T) {
	for _, p := range NavPages {
		assert.True(t, p.Navigable(), p.String())
	}
	assert.False(t, PageNotFound.Navigable())
	assert.False(t, Page(42).Navigable())
}

func TestPageMarshalsByName(t *testing.T) {
	out, err := json.Marshal(ApplicationState{Page: PageProducts})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"page":"Products","dark_mode":false,"search_term":""}`, string(out))
}
