package logger

import (
	"sync"
	"time"
)

// Record is one captured log entry.
type Record struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
	Keyvals []any     `json:"keyvals,omitempty"`
}

// Ring is a fixed-size in-memory backend keeping the most recent records.
// The status endpoint serves its contents for quick operational checks
// without shelling into container logs.
type Ring struct {
	mu   sync.Mutex
	buf  []Record
	next int
	full bool
}

// NewRing creates a ring buffer backend holding up to size records.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = 100
	}
	return &Ring{buf: make([]Record, size)}
}

func (r *Ring) append(level, message string, keyvals []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf[r.next] = Record{
		Time:    time.Now(),
		Level:   level,
		Message: message,
		Keyvals: keyvals,
	}
	r.next = (r.next + 1) % len(r.buf)
	if r.next == 0 {
		r.full = true
	}
}

// Records returns the captured entries, oldest first.
func (r *Ring) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		out := make([]Record, r.next)
		copy(out, r.buf[:r.next])
		return out
	}
	out := make([]Record, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	out = append(out, r.buf[:r.next]...)
	return out
}

func (r *Ring) Debug(message string, keyvals ...any) { r.append("debug", message, keyvals) }
func (r *Ring) Info(message string, keyvals ...any)  { r.append("info", message, keyvals) }
func (r *Ring) Warn(message string, keyvals ...any)  { r.append("warn", message, keyvals) }
func (r *Ring) Error(message string, keyvals ...any) { r.append("error", message, keyvals) }

// Fatal records the entry; process termination is the console backend's
// job so the ring never kills the process on its own.
func (r *Ring) Fatal(message string, keyvals ...any) { r.append("fatal", message, keyvals) }
