// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines          = 2
	ListTitleLines       = 2
	HeaderWidthPadding   = 7
	ListRightBorderWidth = 1
	SnackbarLines        = 1

	ItemRightPadding  = 1
	ItemSafetyPadding = 1

	// ListPaneDivisor sets the list pane's share of the width in the
	// side-by-side arrangement (one third).
	ListPaneDivisor = 3

	// DefaultBreakpoint is the width above which the list and detail
	// panes coexist, used when configuration supplies none.
	DefaultBreakpoint = 100
)
