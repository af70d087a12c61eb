package filesystem

import (
	"path/filepath"
	"strings"

	"github.com/boyter/gocodewalker"
)

// StreamFiles starts a file walker and returns a channel of files.
// The walker honors .gitignore on its own, which matches what a user
// expects out of a whole-workspace search.
func StreamFiles(root string) <-chan *gocodewalker.File {
	fileListQueue := make(chan *gocodewalker.File, 100)
	fileWalker := gocodewalker.NewFileWalker(root, fileListQueue)

	go func() {
		_ = fileWalker.Start()
	}()

	return fileListQueue
}

// FindMatches walks the workspace and returns up to limit relative
// paths whose file name contains query, case-insensitively. Paths come
// back slash-separated, ready to use as logical paths.
func FindMatches(root, query string, limit int) []string {
	query = strings.ToLower(query)
	if query == "" {
		return nil
	}

	var matches []string
	queue := StreamFiles(root)
	for f := range queue {
		if !strings.Contains(strings.ToLower(f.Filename), query) {
			continue
		}
		rel, err := filepath.Rel(root, f.Location)
		if err != nil {
			continue
		}
		matches = append(matches, filepath.ToSlash(rel))
		if limit > 0 && len(matches) >= limit {
			// Drain so the walker goroutine can finish.
			go func() {
				for range queue {
				}
			}()
			break
		}
	}
	return matches
}
