package engine

import (
	"sync"
	"time"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// LogCap bounds the retained event history.
const LogCap = 100

// Sink receives every entry as it is appended. Sinks are for external
// consumers (sockets, redis fan-out) and must not touch game state.
type Sink func(models.LogEntry)

// EventLog is the append-only, turn-tagged record of every mutation. The
// engine appends from its single control flow; the mutex only protects
// concurrent reads from the server layer.
type EventLog struct {
	mu      sync.Mutex
	entries []models.LogEntry
	sinks   []Sink
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) Subscribe(sink Sink) {
	l.mu.Lock()
	l.sinks = append(l.sinks, sink)
	l.mu.Unlock()
}

func (l *EventLog) Add(turn int, playerId string, message string) {
	entry := models.LogEntry{
		Turn:      turn,
		PlayerId:  playerId,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}
	l.mu.Lock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > LogCap {
		l.entries = l.entries[len(l.entries)-LogCap:]
	}
	sinks := l.sinks
	l.mu.Unlock()
	for _, sink := range sinks {
		sink(entry)
	}
}

// Entries returns a copy of the retained log.
func (l *EventLog) Entries() []models.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
