package explorer

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jesspatton/lazyfiles/config"
	"github.com/jesspatton/lazyfiles/seq"
)

// Lister produces the presented children of a directory. It is a pure
// function of (location, settings snapshot): no state survives between
// calls, so any settings or filesystem change takes effect by simply
// listing again. Concurrent calls are safe; they share only the
// workspace root and the logger.
type Lister struct {
	root string
	log  zerolog.Logger
}

// NewLister creates a lister for the workspace rooted at root.
func NewLister(root string, log zerolog.Logger) *Lister {
	return &Lister{root: root, log: log}
}

// Root returns the workspace root.
func (l *Lister) Root() string {
	return l.root
}

// ListChildren returns the ordered nodes a user should see under
// location. An empty location means the workspace root. Read failures
// are logged and yield an empty list; they never surface as errors.
func (l *Lister) ListChildren(location string, snap config.Snapshot) []Node {
	if location == "" {
		location = l.root
	}

	entries, err := os.ReadDir(location)
	if err != nil {
		l.log.Warn().Err(err).Str("path", location).Msg("directory listing failed")
		return nil
	}

	// Directories before files, then locale name order within each
	// rank. The sort is stable, so equal names keep their ReadDir
	// order; hiding below only removes entries, never reorders.
	col := collate.New(language.Und)
	sorted := seq.From(entries).
		OrderBy(seq.ByKey(entryRank)).
		ThenBy(seq.ByKeyCmp(fs.DirEntry.Name, col.CompareString)).
		Where(func(e fs.DirEntry) bool { return !isDotfile(e.Name()) }).
		ToSlice()

	nodes := make([]Node, 0, len(sorted))
	for _, entry := range sorted {
		entryLoc := filepath.Join(location, entry.Name())
		rel := l.relPath(entryLoc)
		if snap.IsHidden(rel) {
			continue
		}

		if !entry.IsDir() {
			nodes = append(nodes, Node{
				Label:           entry.Name(),
				LogicalPath:     rel,
				StorageLocation: entryLoc,
			})
			continue
		}

		if flat, ok := l.tryFlatten(entryLoc, rel, rel, snap); ok {
			nodes = append(nodes, flat)
			continue
		}
		nodes = append(nodes, Node{
			Label:           entry.Name(),
			LogicalPath:     rel,
			StorageLocation: entryLoc,
			IsDir:           true,
		})
	}
	return nodes
}

// tryFlatten attempts to collapse the directory at location into a
// single node. rel is the directory's own workspace-relative path;
// originRel is the relative path of the top folder of the chain being
// built, threaded down unchanged so the terminal flatten stamps the
// folder the user actually sees. Label composition runs the other way,
// outer levels prefixing their name on the way back up.
func (l *Lister) tryFlatten(location, rel, originRel string, snap config.Snapshot) (Node, bool) {
	entries, err := os.ReadDir(location)
	if err != nil {
		// Not fatal: the caller falls back to a plain directory node
		// and the failure resurfaces on expansion if it persists.
		l.log.Debug().Err(err).Str("path", location).Msg("flatten probe failed")
		return Node{}, false
	}

	name := filepath.Base(location)
	var dirs, files []fs.DirEntry
	for _, e := range entries {
		if isDotfile(e.Name()) || snap.IsHidden(path.Join(rel, e.Name())) {
			continue
		}
		if e.IsDir() {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}

	if snap.FlattenSingleFile && len(files) == 1 && len(dirs) == 0 {
		f := files[0]
		return Node{
			Label:           name + "/" + f.Name(),
			LogicalPath:     path.Join(rel, f.Name()),
			StorageLocation: filepath.Join(location, f.Name()),
			OriginFolder:    originRel,
		}, true
	}

	if snap.FlattenSingleChild && len(dirs) == 1 && len(files) == 0 {
		d := dirs[0]
		childLoc := filepath.Join(location, d.Name())
		childRel := path.Join(rel, d.Name())

		if inner, ok := l.tryFlatten(childLoc, childRel, originRel, snap); ok {
			inner.Label = name + "/" + inner.Label
			return inner, true
		}

		// The child itself does not qualify: show it as a plain
		// directory under the composite label. No origin folder is
		// recorded here; hide on this node targets the child's own
		// path.
		return Node{
			Label:           name + "/" + d.Name(),
			LogicalPath:     childRel,
			StorageLocation: childLoc,
			IsDir:           true,
		}, true
	}

	return Node{}, false
}

// relPath maps an absolute location back to the slash-separated
// workspace-relative path used as node identity.
func (l *Lister) relPath(location string) string {
	rel, err := filepath.Rel(l.root, location)
	if err != nil {
		return filepath.ToSlash(location)
	}
	return filepath.ToSlash(rel)
}

func entryRank(e fs.DirEntry) int {
	if e.IsDir() {
		return 0
	}
	return 1
}

func isDotfile(name string) bool {
	return strings.HasPrefix(name, ".")
}
