package domain

import "fmt"

// Page selects which static view of the site is current.
type Page int

const (
	PageHome Page = iota
	PageAbout
	PageProducts
	PageDirectory
	PageNotFound
)

// NavPages lists the navigable pages in menu order. PageNotFound is never navigable.
var NavPages = []Page{PageHome, PageAbout, PageProducts, PageDirectory}

var pageNames = map[Page]string{
	PageHome:      "Home",
	PageAbout:     "About",
	PageProducts:  "Products",
	PageDirectory: "Directory",
	PageNotFound:  "404",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Page(%d)", int(p))
}

// Navigable reports whether p may become the current page through navigation.
func (p Page) Navigable() bool {
	switch p {
	case PageHome, PageAbout, PageProducts, PageDirectory:
		return true
	default:
		return false
	}
}

// ParsePage maps an exact, case-sensitive page name to its Page.
// Names outside the navigable set return PageNotFound and false.
func ParsePage(name string) (Page, bool) {
	for _, p := range NavPages {
		if pageNames[p] == name {
			return p, true
		}
	}
	return PageNotFound, false
}

// MarshalText renders the page by name so JSON payloads stay readable.
func (p Page) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
