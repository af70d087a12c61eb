package ui

import (
	"github.com/jesspatton/lazyfiles/config"
	"github.com/jesspatton/lazyfiles/explorer"
)

// Row is one visible line of the tree: a presented node plus its
// indentation depth. Rows are rebuilt from scratch on every refresh;
// only the expansion set survives across rebuilds.
type Row struct {
	Node  explorer.Node
	Depth int
}

// buildRows walks the expanded portion of the tree, issuing one
// listing call per expanded directory. The same settings snapshot is
// used for the whole pass so one refresh never mixes two
// configurations.
func buildRows(lister *explorer.Lister, snap config.Snapshot, expanded map[string]struct{}) []Row {
	var rows []Row

	var descend func(location string, depth int)
	descend = func(location string, depth int) {
		for _, node := range lister.ListChildren(location, snap) {
			rows = append(rows, Row{Node: node, Depth: depth})
			if !node.IsDir {
				continue
			}
			if _, ok := expanded[node.LogicalPath]; ok {
				descend(node.StorageLocation, depth+1)
			}
		}
	}
	descend("", 0)

	return rows
}

// pruneExpansion drops expansion entries whose directory no longer
// appears in the rows, so state does not accumulate for deleted or
// newly hidden folders.
func pruneExpansion(expanded map[string]struct{}, rows []Row) {
	present := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if r.Node.IsDir {
			present[r.Node.LogicalPath] = struct{}{}
		}
	}
	for key := range expanded {
		if _, ok := present[key]; !ok {
			delete(expanded, key)
		}
	}
}
