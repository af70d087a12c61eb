package ui

import (
	"fmt"
	"strings"
)

func (m Model) renderExplorer(paneWidth, paneHeight int) string {
	var b strings.Builder

	switch m.mode {
	case ModeSearch:
		m.renderSearch(&b, paneHeight)
	case ModeUnhide:
		m.renderUnhidePicker(&b, paneHeight)
	default:
		m.renderTree(&b, paneHeight)
	}

	content := b.String()
	style := paneStyle
	if m.activePane == PaneTree {
		style = activePaneStyle
	}
	return style.
		Width(paneWidth).
		Height(paneHeight).
		Render(content)
}

func (m Model) renderTree(b *strings.Builder, paneHeight int) {
	b.WriteString(titleStyle.Render("EXPLORER") + "\n\n")
	treeHeight := paneHeight - 2

	if len(m.rows) == 0 {
		b.WriteString("Empty.")
		return
	}

	start, end := visibleRange(m.cursor, len(m.rows), treeHeight)
	for i := start; i < end; i++ {
		m.renderRow(b, i)
	}
}

func (m Model) renderRow(b *strings.Builder, index int) {
	row := m.rows[index]
	node := row.Node

	cursor := " "
	if m.cursor == index {
		cursor = ">"
	}

	indent := strings.Repeat("  ", row.Depth)

	marker := "  "
	if node.IsDir {
		if _, ok := m.expanded[node.LogicalPath]; ok {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	label := node.Label
	if node.IsDir {
		label = dirStyle.Render(label)
	} else if node.Flattened() {
		// Flattened single-file folders read as "dir/file"; dim the
		// folder part so the file name stands out.
		if idx := strings.LastIndex(node.Label, "/"); idx >= 0 {
			label = chainStyle.Render(node.Label[:idx+1]) + node.Label[idx+1:]
		}
	}

	line := fmt.Sprintf("%s %s%s%s", cursor, indent, marker, label)
	if m.cursor == index {
		b.WriteString(cursorStyle.Render(line) + "\n")
	} else {
		b.WriteString(line + "\n")
	}
}

func (m Model) renderSearch(b *strings.Builder, paneHeight int) {
	b.WriteString(titleStyle.Render("SEARCH") + "\n\n")
	b.WriteString(m.searchInput.View() + "\n\n")
	listHeight := paneHeight - 5

	if len(m.searchResults) == 0 {
		if !m.searchTyping && m.searchInput.Value() != "" {
			b.WriteString("No matches.")
		}
		return
	}

	start, end := visibleRange(m.searchCursor, len(m.searchResults), listHeight)
	for i := start; i < end; i++ {
		cursor := " "
		if m.searchCursor == i {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s", cursor, m.searchResults[i])
		if m.searchCursor == i {
			b.WriteString(cursorStyle.Render(line) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}
}

func (m Model) renderUnhidePicker(b *strings.Builder, paneHeight int) {
	b.WriteString(titleStyle.Render("UNHIDE") + "\n\n")
	b.WriteString("Pick a folder to restore:\n\n")
	listHeight := paneHeight - 5

	start, end := visibleRange(m.unhideCursor, len(m.unhideChoices), listHeight)
	for i := start; i < end; i++ {
		cursor := " "
		if m.unhideCursor == i {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s", cursor, m.unhideChoices[i])
		if m.unhideCursor == i {
			b.WriteString(cursorStyle.Render(line) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}
}

// visibleRange keeps the cursor centered once the list outgrows the
// pane.
func visibleRange(cursor, total, paneHeight int) (int, int) {
	start := 0
	end := total

	if total > paneHeight && paneHeight > 0 {
		if cursor < paneHeight/2 {
			start = 0
			end = paneHeight
		} else if cursor > total-paneHeight/2 {
			start = total - paneHeight
			end = total
		} else {
			start = cursor - paneHeight/2
			end = cursor + paneHeight/2
		}
	}
	return start, end
}
