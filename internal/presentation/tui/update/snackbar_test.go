package update

import (
	"errors"
	"testing"
)

func TestSnackbarSurfacesFetchError(t *testing.T) {
	deps, fail := newTestDeps(testArticles(5))
	s := newTestState(120, 40)
	loadSnapshot(s, deps)

	fail(errors.New("boom"))
	cmd := HandleFetchCompleted(s, FetchCompletedMsg{Outcome: deps.Posts.Fetch()}, deps)
	if cmd == nil {
		t.Fatal("surfacing an error should schedule its timeout")
	}
	if s.SnackbarErrorID == 0 {
		t.Fatal("failed fetch should surface an error")
	}
	if len(s.Snapshot.Articles) != 5 {
		t.Fatalf("failed refresh must retain articles, got %d", len(s.Snapshot.Articles))
	}
}

func TestSnackbarHeadStaysWhileSecondErrorQueues(t *testing.T) {
	deps, fail := newTestDeps(testArticles(5))
	s := newTestState(120, 40)
	loadSnapshot(s, deps)

	fail(errors.New("first"))
	HandleFetchCompleted(s, FetchCompletedMsg{Outcome: deps.Posts.Fetch()}, deps)
	first := s.SnackbarErrorID

	fail(errors.New("second"))
	HandleFetchCompleted(s, FetchCompletedMsg{Outcome: deps.Posts.Fetch()}, deps)

	if s.SnackbarErrorID != first {
		t.Fatalf("surfaced id changed to %d, the head must stay while it queues", s.SnackbarErrorID)
	}
	if len(s.Snapshot.PendingErrors) != 2 {
		t.Fatalf("pending errors = %d, want 2", len(s.Snapshot.PendingErrors))
	}
}

func TestDismissAdvancesToNextError(t *testing.T) {
	deps, fail := newTestDeps(testArticles(5))
	s := newTestState(120, 40)
	loadSnapshot(s, deps)

	fail(errors.New("first"))
	HandleFetchCompleted(s, FetchCompletedMsg{Outcome: deps.Posts.Fetch()}, deps)
	first := s.SnackbarErrorID
	fail(errors.New("second"))
	HandleFetchCompleted(s, FetchCompletedMsg{Outcome: deps.Posts.Fetch()}, deps)

	cmd := DismissCurrentError(s, deps)
	if cmd == nil {
		t.Fatal("advancing to the next error should schedule its timeout")
	}
	if s.SnackbarErrorID == 0 || s.SnackbarErrorID == first {
		t.Fatalf("surfaced id after dismiss = %d, want the next queued error", s.SnackbarErrorID)
	}
	if len(s.Snapshot.PendingErrors) != 1 {
		t.Fatalf("pending errors = %d, want 1", len(s.Snapshot.PendingErrors))
	}

	if cmd := DismissCurrentError(s, deps); cmd != nil {
		t.Fatal("dismissing the last error should not schedule anything")
	}
	if s.SnackbarErrorID != 0 || len(s.Snapshot.PendingErrors) != 0 {
		t.Fatalf("queue should be empty, surfaced=%d pending=%d", s.SnackbarErrorID, len(s.Snapshot.PendingErrors))
	}
}

func TestSnackbarTimeoutIgnoresStaleSeq(t *testing.T) {
	deps, fail := newTestDeps(testArticles(5))
	s := newTestState(120, 40)
	loadSnapshot(s, deps)

	fail(errors.New("first"))
	HandleFetchCompleted(s, FetchCompletedMsg{Outcome: deps.Posts.Fetch()}, deps)
	fail(errors.New("second"))
	HandleFetchCompleted(s, FetchCompletedMsg{Outcome: deps.Posts.Fetch()}, deps)
	stale := s.SnackbarSeq

	// Dismissing supersedes the first presentation; its tick is now
	// stale and must not touch the second one.
	DismissCurrentError(s, deps)
	if s.SnackbarSeq == stale {
		t.Fatal("dismissal should invalidate the old presentation seq")
	}

	surfaced := s.SnackbarErrorID
	if surfaced == 0 {
		t.Fatal("second error should be surfaced after dismissal")
	}
	HandleSnackbarTimeout(s, SnackbarTimeoutMsg{Seq: stale}, deps)
	if s.SnackbarErrorID != surfaced {
		t.Fatal("a stale timeout must not dismiss the current presentation")
	}
}

func TestSnackbarTimeoutDismissesCurrent(t *testing.T) {
	deps, fail := newTestDeps(testArticles(5))
	s := newTestState(120, 40)
	loadSnapshot(s, deps)

	fail(errors.New("boom"))
	HandleFetchCompleted(s, FetchCompletedMsg{Outcome: deps.Posts.Fetch()}, deps)

	HandleSnackbarTimeout(s, SnackbarTimeoutMsg{Seq: s.SnackbarSeq}, deps)
	if s.SnackbarErrorID != 0 {
		t.Fatal("a live timeout should dismiss the surfaced error")
	}
	if len(s.Snapshot.PendingErrors) != 0 {
		t.Fatal("timeout dismissal should resolve the error in the queue")
	}
}

func TestRetryClearsErrorAndRefreshes(t *testing.T) {
	deps, fail := newTestDeps(testArticles(5))
	s := newTestState(120, 40)
	loadSnapshot(s, deps)

	fail(errors.New("boom"))
	HandleFetchCompleted(s, FetchCompletedMsg{Outcome: deps.Posts.Fetch()}, deps)

	fail(nil)
	cmd := RetryCurrentError(s, deps)
	if cmd == nil {
		t.Fatal("retry should return the refresh command")
	}
	if s.SnackbarErrorID != 0 {
		t.Fatal("retry should clear the surfaced error")
	}
	if !s.Snapshot.IsRefreshing {
		t.Fatal("retry should mark a refresh in flight")
	}

	HandleFetchCompleted(s, FetchCompletedMsg{Outcome: deps.Posts.Fetch()}, deps)
	if len(s.Snapshot.PendingErrors) != 0 {
		t.Fatalf("pending errors after successful retry = %d, want 0", len(s.Snapshot.PendingErrors))
	}
}
