package errlog

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/itbasis/go-clock"

	"github.com/shashmeister/sleeper-dashboard/cache"
	"github.com/shashmeister/sleeper-dashboard/metrics"
)

// MaxRecords caps the ring buffer. When full, the oldest record is
// dropped to make room.
const MaxRecords = 50

const persistKey = "errors:recent"

type Record struct {
	ID      string    `json:"id"`
	Time    time.Time `json:"time"`
	Scope   string    `json:"scope"`
	Message string    `json:"message"`
}

// Log is the single error-observability sink. Every reported failure
// gets a console line, a slot in the bounded ring buffer, and a
// best-effort write to the cache store so records survive restarts.
// Reporting never fails: a broken store only costs persistence.
type Log struct {
	mu      sync.RWMutex
	clock   clock.Clock
	store   cache.Store
	records []Record // most recent first
}

// New creates a Log, loading any previously persisted records. The
// store may be nil, which disables persistence.
func New(ctx context.Context, clock clock.Clock, store cache.Store) *Log {
	l := &Log{
		clock:   clock,
		store:   store,
		records: make([]Record, 0, MaxRecords),
	}

	if store != nil {
		value, _, found, err := store.Get(ctx, persistKey)
		if err != nil {
			log.Printf("error loading persisted error log: %v", err)
		} else if found {
			var saved []Record
			if err := json.Unmarshal(value, &saved); err != nil {
				log.Printf("error decoding persisted error log: %v", err)
			} else {
				if len(saved) > MaxRecords {
					saved = saved[:MaxRecords]
				}
				l.records = saved
			}
		}
	}

	return l
}

// Report records a failure in scope. Scope names the dashboard section
// that degraded, e.g. "rosters" or "players".
func (l *Log) Report(ctx context.Context, scope string, err error) {
	if err == nil {
		return
	}

	r := Record{
		ID:      uuid.NewString(),
		Time:    l.clock.Now().UTC(),
		Scope:   scope,
		Message: err.Error(),
	}

	log.Printf("[%s] %v", scope, err)
	metrics.ErrorRecords.Inc()

	l.mu.Lock()
	l.records = append([]Record{r}, l.records...)
	if len(l.records) > MaxRecords {
		l.records = l.records[:MaxRecords]
	}
	snapshot := make([]Record, len(l.records))
	copy(snapshot, l.records)
	l.mu.Unlock()

	if l.store != nil {
		b, err := json.Marshal(snapshot)
		if err == nil {
			if err := l.store.Put(ctx, persistKey, b); err != nil {
				log.Printf("error persisting error log: %v", err)
			}
		}
	}
}

// Recent returns the records, most recent first.
func (l *Log) Recent() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}
