package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func searchFixture(t *testing.T) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "lazyfiles-search-test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	files := []string{
		"src/handler.go",
		"src/handler_test.go",
		"docs/readme.md",
	}
	for _, f := range files {
		path := filepath.Join(tmpDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return tmpDir
}

func TestFindMatches(t *testing.T) {
	root := searchFixture(t)

	got := FindMatches(root, "HANDLER", 0)
	if len(got) != 2 {
		t.Fatalf("expected 2 case-insensitive matches, got %v", got)
	}
	for _, rel := range got {
		if filepath.IsAbs(rel) {
			t.Errorf("expected relative path, got %s", rel)
		}
	}
}

func TestFindMatches_Limit(t *testing.T) {
	root := searchFixture(t)

	got := FindMatches(root, "handler", 1)
	if len(got) != 1 {
		t.Errorf("expected limit to cap results at 1, got %v", got)
	}
}

func TestFindMatches_EmptyQuery(t *testing.T) {
	root := searchFixture(t)

	if got := FindMatches(root, "", 0); got != nil {
		t.Errorf("expected no results for empty query, got %v", got)
	}
}
