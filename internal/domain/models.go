package domain

// User is one matched user as returned by the search endpoint
type User struct {
	ID         string `json:"_id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic,omitempty"` // empty when the user has no avatar
}

// Route returns the client-side profile route for the user
func (u User) Route() string {
	return "/" + u.Username
}
