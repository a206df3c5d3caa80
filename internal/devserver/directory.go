package devserver

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"usersearch/internal/domain"
)

// Directory is an in-memory user list searched by the dev backend
type Directory struct {
	mu    sync.RWMutex
	users []domain.User
}

type usersFile struct {
	Users []fileUser `toml:"users"`
}

type fileUser struct {
	ID         string `toml:"id"`
	Username   string `toml:"username"`
	Name       string `toml:"name"`
	ProfilePic string `toml:"profile_pic"`
}

// NewDirectory creates a directory holding users. Users without an id are
// assigned a random one.
func NewDirectory(users []domain.User) *Directory {
	d := &Directory{users: make([]domain.User, 0, len(users))}
	for _, u := range users {
		d.Add(u)
	}
	return d
}

// LoadDirectory reads users from a TOML file with [[users]] tables
func LoadDirectory(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}

	var f usersFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse users file %s: %w", path, err)
	}

	users := make([]domain.User, 0, len(f.Users))
	for i, u := range f.Users {
		if u.Username == "" {
			return nil, fmt.Errorf("users file %s: entry %d has no username", path, i+1)
		}
		users = append(users, domain.User{
			ID:         u.ID,
			Username:   u.Username,
			Name:       u.Name,
			ProfilePic: u.ProfilePic,
		})
	}
	return NewDirectory(users), nil
}

// Add appends a user, assigning an id when missing
func (d *Directory) Add(u domain.User) domain.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	d.mu.Lock()
	d.users = append(d.users, u)
	d.mu.Unlock()
	return u
}

// Len returns the number of users
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}

// ErrEmptyQuery is returned for blank search text
var ErrEmptyQuery = errors.New("search query is required")

// Search returns users whose username or name contains query, ignoring
// case, in directory order
func (d *Directory) Search(query string) ([]domain.User, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrEmptyQuery
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	matches := []domain.User{}
	for _, u := range d.users {
		if strings.Contains(strings.ToLower(u.Username), q) || strings.Contains(strings.ToLower(u.Name), q) {
			matches = append(matches, u)
		}
	}
	return matches, nil
}
