package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/newsrack/internal/presentation/tui/state"
)

// SnackbarTimeout is how long an error stays on screen without user
// action before it counts as an implicit dismissal.
const SnackbarTimeout = 6 * time.Second

// SnackbarTimeoutMsg fires when a surfaced error's display window ends.
// Seq ties the tick to one presentation: a stale Seq means the
// presentation was superseded or resolved and the tick must be ignored.
type SnackbarTimeoutMsg struct {
	Seq int
}

// SyncSnackbar aligns the surfaced error with the head of the pending
// queue. Exactly one error is surfaced at a time; a newer head
// supersedes the current presentation, cancelling its wait (no retry
// can fire for it) and resolving the old id as a dismissal.
func SyncSnackbar(s *state.ModelState, deps Deps) tea.Cmd {
	head, ok := s.CurrentError()

	if !ok {
		if s.SnackbarErrorID != 0 {
			s.SnackbarErrorID = 0
			s.SnackbarSeq++
			UpdateSizes(s)
		}
		return nil
	}

	if head.ID == s.SnackbarErrorID {
		return nil
	}

	if s.SnackbarErrorID != 0 {
		// Supersession: dismissal bookkeeping for the old id only.
		s.Snapshot = deps.Posts.DismissError(s.SnackbarErrorID)
	}

	s.SnackbarErrorID = head.ID
	s.SnackbarSeq++
	UpdateSizes(s)

	seq := s.SnackbarSeq
	return tea.Tick(SnackbarTimeout, func(time.Time) tea.Msg {
		return SnackbarTimeoutMsg{Seq: seq}
	})
}

// HandleSnackbarTimeout treats an expired display window as an implicit
// dismissal. Ticks from superseded presentations carry a stale Seq and
// are dropped.
func HandleSnackbarTimeout(s *state.ModelState, msg SnackbarTimeoutMsg, deps Deps) tea.Cmd {
	if msg.Seq != s.SnackbarSeq || s.SnackbarErrorID == 0 {
		return nil
	}
	return DismissCurrentError(s, deps)
}

// DismissCurrentError resolves the surfaced error without a retry.
func DismissCurrentError(s *state.ModelState, deps Deps) tea.Cmd {
	if s.SnackbarErrorID == 0 {
		return nil
	}
	s.Snapshot = deps.Posts.DismissError(s.SnackbarErrorID)
	s.SnackbarErrorID = 0
	s.SnackbarSeq++
	UpdateSizes(s)
	return SyncSnackbar(s, deps)
}

// RetryCurrentError resolves the surfaced error and starts a new fetch.
// The retry side effect fires only here, on an explicit user choice.
func RetryCurrentError(s *state.ModelState, deps Deps) tea.Cmd {
	if s.SnackbarErrorID == 0 {
		return nil
	}
	s.Snapshot = deps.Posts.DismissError(s.SnackbarErrorID)
	s.SnackbarErrorID = 0
	s.SnackbarSeq++

	refresh := StartRefresh(s, deps)
	if next := SyncSnackbar(s, deps); next != nil {
		return tea.Batch(refresh, next)
	}
	return refresh
}
