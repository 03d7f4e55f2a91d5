package tui

import (
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/store"
)

// errMsg carries a failure to be surfaced as a toast; nothing is allowed to
// propagate as a panic that would blank the screen.
type errMsg struct {
	err error
}

// sessionExpiredMsg ends the program: the local session is already wiped and
// the user must log in again. It is never rendered as an error toast.
type sessionExpiredMsg struct{}

// notFoundMsg switches the detail screen to its dedicated not-found state.
type notFoundMsg struct{}

// countsLoadedMsg delivers the overview's pending counts per entity name.
type countsLoadedMsg struct {
	counts map[string]int
}

// pageLoadedMsg delivers one page of records to the list screen.
type pageLoadedMsg struct {
	page *store.Page
}

// detailLoadedMsg delivers a single record to the detail screen.
type detailLoadedMsg struct {
	item *request.ServiceRequest
}

// transitionDoneMsg delivers the re-fetched record after a successful status
// transition.
type transitionDoneMsg struct {
	item  *request.ServiceRequest
	toast string
}

// Navigation between screens.
type openListMsg struct {
	entity request.Entity
}

type openDetailMsg struct {
	entity     request.Entity
	item       request.ServiceRequest
	openReject bool
}

type backMsg struct{}
