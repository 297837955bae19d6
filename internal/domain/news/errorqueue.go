package news

// ErrorKind classifies a pending error. There is a single kind today;
// the field exists so resolutions can be matched against stale entries.
type ErrorKind int

const (
	// ErrorKindFetch is a data-fetch failure, recoverable by retry.
	ErrorKindFetch ErrorKind = iota
)

// FetchError is one queued fetch failure. The id is unique for the
// lifetime of the posts service, so an entry stays resolvable even
// after the snapshot that produced it is gone.
type FetchError struct {
	ID      int64
	Kind    ErrorKind
	Message string
}

// ErrorQueue holds pending errors in arrival order. Arrival order is
// absolute: the head stays the head until it is resolved, regardless of
// what arrives later.
type ErrorQueue struct {
	entries []FetchError
}

// NewErrorQueue constructs an ErrorQueue from optional initial entries.
func NewErrorQueue(entries []FetchError) *ErrorQueue {
	return &ErrorQueue{entries: append([]FetchError(nil), entries...)}
}

// Push appends an error to the tail of the queue.
func (q *ErrorQueue) Push(e FetchError) {
	q.entries = append(q.entries, e)
}

// Current returns the oldest pending error, if any. Repeated calls
// return the same entry until it is resolved.
func (q *ErrorQueue) Current() (FetchError, bool) {
	if len(q.entries) == 0 {
		return FetchError{}, false
	}
	return q.entries[0], true
}

// Resolve removes the entry with the given id from anywhere in the
// queue. Resolving an absent id is a no-op: duplicate and late
// resolutions are expected when a presentation is superseded.
func (q *ErrorQueue) Resolve(id int64) bool {
	for i, e := range q.entries {
		if e.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of pending errors.
func (q *ErrorQueue) Len() int {
	return len(q.entries)
}

// Snapshot returns a copy of the pending entries in arrival order.
func (q *ErrorQueue) Snapshot() []FetchError {
	if len(q.entries) == 0 {
		return nil
	}
	return append([]FetchError(nil), q.entries...)
}
