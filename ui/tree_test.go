package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jesspatton/lazyfiles/config"
	"github.com/jesspatton/lazyfiles/explorer"
)

func fixtureLister(t *testing.T, files ...string) *explorer.Lister {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "lazyfiles-ui-test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	for _, f := range files {
		path := filepath.Join(tmpDir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return explorer.NewLister(tmpDir, zerolog.Nop())
}

func defaultSnap() config.Snapshot {
	return config.Snapshot{
		Hidden:             map[string]struct{}{},
		FlattenSingleFile:  true,
		FlattenSingleChild: true,
	}
}

func rowLabels(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = strings.Repeat("  ", r.Depth) + r.Node.Label
	}
	return out
}

func TestBuildRows_Collapsed(t *testing.T) {
	lister := fixtureLister(t,
		"src/a.txt", "src/b.txt",
		"readme.md",
	)

	rows := buildRows(lister, defaultSnap(), map[string]struct{}{})

	want := []string{"src", "readme.md"}
	got := rowLabels(rows)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestBuildRows_ExpandedWithDepth(t *testing.T) {
	lister := fixtureLister(t,
		"src/a.txt", "src/b.txt",
		"readme.md",
	)

	rows := buildRows(lister, defaultSnap(), map[string]struct{}{"src": {}})

	want := []string{"src", "  a.txt", "  b.txt", "readme.md"}
	got := rowLabels(rows)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestBuildRows_ExpansionKeyedByLogicalPath(t *testing.T) {
	// a/b is a fallthrough composite row; expanding it must key on the
	// child's logical path "a/b" and descend into the child's storage
	// location.
	lister := fixtureLister(t, "a/b/x.txt", "a/b/y.txt")

	rows := buildRows(lister, defaultSnap(), map[string]struct{}{"a/b": {}})

	got := rowLabels(rows)
	want := []string{"a/b", "  x.txt", "  y.txt"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestPruneExpansion(t *testing.T) {
	expanded := map[string]struct{}{
		"src":  {},
		"gone": {},
	}
	rows := []Row{
		{Node: explorer.Node{LogicalPath: "src", IsDir: true}},
		{Node: explorer.Node{LogicalPath: "readme.md"}},
	}

	pruneExpansion(expanded, rows)

	if _, ok := expanded["src"]; !ok {
		t.Error("live expansion entry was dropped")
	}
	if _, ok := expanded["gone"]; ok {
		t.Error("stale expansion entry survived")
	}
}
