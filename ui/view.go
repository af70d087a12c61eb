package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI based on the current state.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	if m.width == 0 {
		return "Loading..."
	}

	paneWidth := (m.width / 2) - 2
	paneHeight := m.height - 4

	treeRender := m.renderExplorer(paneWidth, paneHeight)

	var previewView strings.Builder
	title := "PREVIEW"
	if m.previewPath != "" {
		title = "PREVIEW " + filepath.Base(m.previewPath)
	}
	previewView.WriteString(titleStyle.Render(title) + "\n\n")

	if !m.ready {
		previewView.WriteString("Initializing...")
	} else {
		previewView.WriteString(m.preview.View())
	}

	previewStyle := paneStyle
	if m.activePane == PanePreview {
		previewStyle = activePaneStyle
	}
	previewRender := previewStyle.
		Width(paneWidth).
		Height(paneHeight).
		Render(previewView.String())

	panes := lipgloss.JoinHorizontal(lipgloss.Top, treeRender, previewRender)
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, panes, footer)
}

func (m Model) renderFooter() string {
	if m.flash != "" {
		return flashStyle.Render(m.flash)
	}
	return m.help.View(m.keys)
}
