// Package update holds UI update logic for the TUI.
package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/newsrack/internal/presentation/tui/metrics"
	"github.com/tesso57/newsrack/internal/presentation/tui/state"
)

type layoutMetrics struct {
	listWidth    int
	detailWidth  int
	listHeight   int
	detailHeight int
}

// UpdateSizes recomputes pane sizes for the current mode and terminal
// size.
func UpdateSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.ArticleList.SetSize(layout.listWidth, layout.listHeight)
	s.Detail.Width = layout.detailWidth
	s.Detail.Height = layout.detailHeight
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	footerHeight := footerHeight(s)
	availableHeight := clampMin(s.Height-footerHeight, 1)
	if s.SnackbarErrorID != 0 {
		availableHeight = clampMin(availableHeight-metrics.SnackbarLines, 1)
	}

	listHeight := clampMin(availableHeight-metrics.ListTitleLines, 1)
	detailHeight := clampMin(availableHeight-metrics.HeaderLines, 1)

	var listWidth, detailWidth int
	switch s.Mode() {
	case state.ListAndDetail:
		listWidth = s.Width / metrics.ListPaneDivisor
		detailWidth = clampMin(s.Width-listWidth-metrics.ListRightBorderWidth, 1)
	case state.ListOnly:
		listWidth = s.Width
		detailWidth = clampMin(s.Width-metrics.ListRightBorderWidth, 1)
	case state.DetailOnly:
		listWidth = s.Width / metrics.ListPaneDivisor
		detailWidth = s.Width
	}

	return layoutMetrics{
		listWidth:    listWidth,
		detailWidth:  detailWidth,
		listHeight:   listHeight,
		detailHeight: detailHeight,
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.Snapshot.IsRefreshing, s.StatusMessage, s.Help.View(&s.Keys)))
}

// listPaneBoundary returns the column where the list pane ends, used to
// classify pointer events. In single-pane modes the whole width belongs
// to the visible pane.
func listPaneBoundary(s *state.ModelState) int {
	switch s.Mode() {
	case state.ListAndDetail:
		return s.Width / metrics.ListPaneDivisor
	case state.ListOnly:
		return s.Width
	default:
		return 0
	}
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
