package ui

import (
	"usersearch/internal/domain"
)

// searchResultMsg carries the outcome of one search request back to Update
type searchResultMsg struct {
	seq   uint64
	query string
	users []domain.User
	err   error
}

// helpPagerMsg contains the result of showing help in the pager
type helpPagerMsg struct {
	err error
}
