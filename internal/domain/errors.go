package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedOperation marks an operation a platform does not
// expose (e.g. submissions on yukicoder).
var ErrUnsupportedOperation = errors.New("operation not supported for this platform")

// TransportError wraps an adapter HTTP or decode failure with the
// platform and fetch phase it happened in. The core never retries it.
type TransportError struct {
	Platform Platform
	Op       string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Platform, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ReferentialIntegrityError reports a problem whose parent contest is
// missing from the fetched contest set. It aborts the whole platform's
// assembly; a silently incomplete dataset is worse than a visible
// failure for a periodic sync.
type ReferentialIntegrityError struct {
	Platform  Platform
	ProblemID string
	ContestID string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s: problem %s references unknown contest %s",
		e.Platform, e.ProblemID, e.ContestID)
}

// PersistenceError reports a failed upsert chunk. Chunks committed
// before it stay committed; the caller decides whether to rerun the
// platform.
type PersistenceError struct {
	Table    string
	ChunkIDs []string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("upsert chunk into %s failed (ids: %s): %v",
		e.Table, strings.Join(e.ChunkIDs, ", "), e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
