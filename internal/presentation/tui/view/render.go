// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/tesso57/newsrack/internal/presentation/tui/components/detailpane"
	"github.com/tesso57/newsrack/internal/presentation/tui/components/header"
	"github.com/tesso57/newsrack/internal/presentation/tui/components/layout"
	"github.com/tesso57/newsrack/internal/presentation/tui/components/listpane"
	"github.com/tesso57/newsrack/internal/presentation/tui/components/modal"
	"github.com/tesso57/newsrack/internal/presentation/tui/components/snackbar"
)

// Props aggregates properties for all UI components.
type Props struct {
	ShowList   bool
	ShowDetail bool

	List     listpane.Props
	Header   header.Props
	Detail   detailpane.Props
	Snackbar snackbar.Props
	Modal    modal.Props
	Footer   string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	var listStr, detailStr string
	if p.ShowList {
		listStr = listpane.Render(p.List)
	}
	if p.ShowDetail {
		p.Detail.Header = header.Render(p.Header)
		detailStr = detailpane.Render(p.Detail)
	}

	return layout.Render(layout.Props{
		List:     listStr,
		Detail:   detailStr,
		Snackbar: snackbar.Render(p.Snackbar),
		Footer:   p.Footer,
	})
}
