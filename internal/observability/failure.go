package observability

import (
	"runtime/debug"
	"sync"
	"time"
)

// Failure is a snapshot of the most recent unhandled error.
type Failure struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
	Trace   string    `json:"trace"`
}

// FailureLog retains the most recent unhandled error for operator
// inspection. It is process-scoped state with an explicit contract: empty
// on construction, overwritten by each Record, cleared by Reset. Safe for
// concurrent use.
type FailureLog struct {
	mu   sync.RWMutex
	last *Failure
}

// NewFailureLog returns an empty log.
func NewFailureLog() *FailureLog {
	return &FailureLog{}
}

// Record stores err with the current stack trace, replacing any earlier
// failure.
func (l *FailureLog) Record(err error) {
	if err == nil {
		return
	}
	f := &Failure{
		Time:    time.Now().UTC(),
		Message: err.Error(),
		Trace:   string(debug.Stack()),
	}

	l.mu.Lock()
	l.last = f
	l.mu.Unlock()
}

// Last returns the most recent failure, or ok=false when none has been
// recorded since construction or the last Reset.
func (l *FailureLog) Last() (Failure, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.last == nil {
		return Failure{}, false
	}
	return *l.last, true
}

// Reset clears the stored failure.
func (l *FailureLog) Reset() {
	l.mu.Lock()
	l.last = nil
	l.mu.Unlock()
}
