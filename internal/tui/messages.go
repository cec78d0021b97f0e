package tui

import (
	"github.com/MKhiriev/go-doc-vault/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// pageMsg is implemented by messages that belong to one page regardless of
// which page is active.
type pageMsg interface {
	page() string
}

type searchDoneMsg struct {
	result models.SearchResult
	err    error
}

func (searchDoneMsg) page() string { return pageSearch }

type viewOpenedMsg struct {
	handle models.ViewHandle
	copied bool
	err    error
}

func (viewOpenedMsg) page() string { return pageSearch }

type deleteDoneMsg struct {
	name string
	err  error
}

func (deleteDoneMsg) page() string { return pageSearch }

type importEventMsg struct {
	event models.ImportEvent
	ok    bool
}

func (importEventMsg) page() string { return pageImport }

// importFinishedMsg tells the search page to refresh after an import.
type importFinishedMsg struct{}

func (importFinishedMsg) page() string { return pageSearch }

type clearStatusMsg struct{}

func (clearStatusMsg) page() string { return pageSearch }
