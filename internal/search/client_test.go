package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usersearch/internal/domain"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL, Endpoint: "/api/users/search"})
}

func TestSearchReturnsListVerbatim(t *testing.T) {
	var gotQuery, gotPath, gotRequestID string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotRequestID = r.Header.Get(RequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"2","username":"bo","name":"Bo"},{"_id":"1","username":"al","name":"Al","followers":3}]`))
	})

	users, err := client.Search(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "/api/users/search", gotPath)
	assert.Equal(t, "a", gotQuery)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, []domain.User{
		{ID: "2", Username: "bo", Name: "Bo"},
		{ID: "1", Username: "al", Name: "Al"},
	}, users)
}

func TestSearchSingleResultExample(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"1","username":"al","name":"Al"}]`))
	})

	users, err := client.Search(context.Background(), "al")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domain.User{ID: "1", Username: "al", Name: "Al"}, users[0])
}

func TestSearchEmptyListIsNotAnError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	users, err := client.Search(context.Background(), "zz")
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestSearchAPIErrorRegardlessOfStatus(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError} {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
		})

		_, err := client.Search(context.Background(), "al")
		require.Error(t, err)
		assert.True(t, IsAPIError(err))
		assert.Equal(t, "not found", err.Error())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, status, apiErr.StatusCode)
	}
}

func TestSearchMalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"broken json", `[{"_id":`},
		{"html page", `<html>oops</html>`},
		{"empty body", ``},
		{"object without error", `{"users":[]}`},
		{"scalar", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Search(context.Background(), "al")
			require.Error(t, err)
			assert.False(t, IsAPIError(err))
		})
	}
}

func TestSearchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(Options{BaseURL: url, Endpoint: "/api/users/search"})
	_, err := client.Search(context.Background(), "al")
	require.Error(t, err)
	assert.False(t, IsAPIError(err))
	assert.Contains(t, err.Error(), "search request failed")
}

func TestSearchHonoursContextCancellation(t *testing.T) {
	release := make(chan struct{})
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Search(ctx, "al")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestURLEncoding(t *testing.T) {
	raw := NewClient(Options{BaseURL: "http://api/", Endpoint: "/api/users/search"})
	assert.Equal(t, "http://api/api/users/search?q=al", raw.URL("al"))
	assert.Equal(t, "http://api/api/users/search?q=a&b", raw.URL("a&b"))

	encoded := NewClient(Options{BaseURL: "http://api", Endpoint: "/api/users/search", EncodeQuery: true})
	assert.Equal(t, "http://api/api/users/search?q=a%26b+c", encoded.URL("a&b c"))
}
