// Package state holds UI state types for the TUI.
package state

import "github.com/tesso57/newsrack/internal/domain/news"

// Mode is the active pane arrangement.
type Mode int

const (
	// ListOnly shows the article list across the full width.
	ListOnly Mode = iota
	// DetailOnly shows the article detail across the full width.
	DetailOnly
	// ListAndDetail shows both panes side by side.
	ListAndDetail
)

// String returns a short name for logging and test failures.
func (m Mode) String() string {
	switch m {
	case ListOnly:
		return "list"
	case DetailOnly:
		return "detail"
	case ListAndDetail:
		return "list+detail"
	default:
		return "unknown"
	}
}

// ShowsList reports whether the list pane is visible in this mode.
func (m Mode) ShowsList() bool { return m != DetailOnly }

// ShowsDetail reports whether the detail pane is visible in this mode.
func (m Mode) ShowsDetail() bool { return m != ListOnly }

// ResolveMode decides the pane arrangement. Above the breakpoint both
// panes always coexist. Below it a single pane is shown: the list when
// it was the last pane touched or nothing is selected, the detail
// otherwise. The list override takes precedence over selection state,
// which is what makes back-navigation from the detail land on the list
// without a navigation stack.
func ResolveMode(width, breakpoint int, listTouchedLast, hasSelection bool) Mode {
	if width > breakpoint {
		return ListAndDetail
	}
	if listTouchedLast || !hasSelection {
		return ListOnly
	}
	return DetailOnly
}

// ActiveDetail resolves the article shown in the detail pane: the
// selected article when it exists in the snapshot, the featured
// fallback otherwise. The fallback assumes the snapshot is non-empty;
// ok is false for an empty one.
func ActiveDetail(snapshot news.Snapshot, selectedID string) (news.Article, bool) {
	if a, ok := snapshot.Article(selectedID); ok {
		return a, true
	}
	return news.FallbackDetail(snapshot.Articles)
}
