package ui

import "strings"

// Router tracks the client-side route. "/" is the search view and
// "/<username>" a profile.
type Router struct {
	history []string
}

// NewRouter starts at the search view
func NewRouter() *Router {
	return &Router{history: []string{"/"}}
}

// Current returns the active route
func (r *Router) Current() string {
	return r.history[len(r.history)-1]
}

// Navigate pushes route
func (r *Router) Navigate(route string) {
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	r.history = append(r.history, route)
}

// Back pops the active route; it reports false at the root
func (r *Router) Back() bool {
	if len(r.history) == 1 {
		return false
	}
	r.history = r.history[:len(r.history)-1]
	return true
}

// Username returns the profile username of the active route
func (r *Router) Username() (string, bool) {
	route := r.Current()
	if route == "/" {
		return "", false
	}
	return strings.TrimPrefix(route, "/"), true
}
