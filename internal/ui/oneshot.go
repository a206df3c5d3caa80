package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"usersearch/internal/search"
	"usersearch/internal/ui/views"
)

// RunOnce performs a single search for text and writes the plain rendering
// to w. Blank text writes nothing and sends no request.
func RunOnce(ctx context.Context, searcher search.Searcher, assets views.Assets, text string, w io.Writer) error {
	query := strings.TrimSpace(text)
	if query == "" {
		return nil
	}

	users, err := searcher.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}

	_, err = io.WriteString(w, views.NewRenderer(assets).RenderPlain(text, users))
	return err
}
