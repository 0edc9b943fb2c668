package session

import (
	"strings"

	"github.com/malonaz/urlreader/api"
)

// HomeState enumerates the states of the Home view.
type HomeState int

const (
	HomeIdle HomeState = iota
	HomeLoading
	HomeResult
	HomeError
)

// Home holds the state of the URL to summary view.
type Home struct {
	URL    string
	State  HomeState
	Result *api.ParseResponse
	Err    string
}

// Loading reports whether a parse is in flight. The input and submit control are disabled
// while it is true.
func (h *Home) Loading() bool {
	return h.State == HomeLoading
}

// CanSubmit reports whether Submit would start a parse.
func (h *Home) CanSubmit() bool {
	return !h.Loading() && strings.TrimSpace(h.URL) != ""
}

// Submit moves to the loading state and returns the URL to parse.
// It returns false when there is nothing to submit.
func (h *Home) Submit() (string, bool) {
	if !h.CanSubmit() {
		return "", false
	}
	h.State = HomeLoading
	h.Result = nil
	h.Err = ""
	return strings.TrimSpace(h.URL), true
}

// ApplyParse applies the outcome of a parse.
func (h *Home) ApplyParse(response *api.ParseResponse, err error) {
	switch {
	case err != nil:
		h.State = HomeError
		h.Err = err.Error()
	case response.Failure() != "":
		h.State = HomeError
		h.Err = response.Failure()
	default:
		h.State = HomeResult
		h.Result = response
	}
}
