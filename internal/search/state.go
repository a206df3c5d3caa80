package search

import (
	"strings"

	"usersearch/internal/domain"
)

// State is the search view's session state. All fields change only through
// its methods, which are called from the UI goroutine.
type State struct {
	Text    string
	Results []domain.User
	Loading bool

	seq     uint64 // id of the most recently issued request
	pending uint64 // id of the request Loading is waiting on, 0 when idle
}

// NewState returns the state of a freshly mounted view
func NewState() *State {
	return &State{Results: []domain.User{}}
}

// SetText records the input value verbatim
func (s *State) SetText(text string) {
	s.Text = text
}

// Query returns the trimmed text the next request would send
func (s *State) Query() string {
	return strings.TrimSpace(s.Text)
}

// HasQuery reports whether the trimmed text is non-empty
func (s *State) HasQuery() bool {
	return s.Query() != ""
}

// Begin marks a request as dispatched and returns its sequence number.
// Requests issued earlier become stale.
func (s *State) Begin() uint64 {
	s.seq++
	s.pending = s.seq
	s.Loading = true
	return s.seq
}

// IsCurrent reports whether seq is the latest issued request
func (s *State) IsCurrent(seq uint64) bool {
	return seq != 0 && seq == s.seq
}

// Complete applies a successful response. Stale responses are ignored and
// false is returned.
func (s *State) Complete(seq uint64, users []domain.User) bool {
	if !s.IsCurrent(seq) {
		return false
	}
	if users == nil {
		users = []domain.User{}
	}
	s.Results = users
	s.settle(seq)
	return true
}

// Fail ends the current request without touching Results. Stale failures
// are ignored and false is returned.
func (s *State) Fail(seq uint64) bool {
	if !s.IsCurrent(seq) {
		return false
	}
	s.settle(seq)
	return true
}

// Clear empties Results and abandons any in-flight request
func (s *State) Clear() {
	s.Results = []domain.User{}
	// bump so a late response for the abandoned query is discarded
	s.seq++
	s.pending = 0
	s.Loading = false
}

func (s *State) settle(seq uint64) {
	if s.pending == seq {
		s.pending = 0
		s.Loading = false
	}
}
