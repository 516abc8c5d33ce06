package dnd

import (
	"sync/atomic"
	"time"
)

// Metrics counts drop outcomes using atomic operations for thread-safety.
// One Metrics is shared by every coordinator of an application.
type Metrics struct {
	Cancelled atomic.Int64
	Unchanged atomic.Int64
	Moved     atomic.Int64
	Missed    atomic.Int64
	Failed    atomic.Int64
	StartTime time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics(start time.Time) *Metrics {
	return &Metrics{StartTime: start}
}

// Record increments the counter of outcome
func (m *Metrics) Record(outcome Outcome) {
	switch outcome {
	case OutcomeCancelled:
		m.Cancelled.Add(1)
	case OutcomeUnchanged:
		m.Unchanged.Add(1)
	case OutcomeMoved:
		m.Moved.Add(1)
	case OutcomeMissed:
		m.Missed.Add(1)
	case OutcomeFailed:
		m.Failed.Add(1)
	}
}

// Total returns the number of drops seen
func (m *Metrics) Total() int64 {
	return m.Cancelled.Load() + m.Unchanged.Load() + m.Moved.Load() + m.Missed.Load() + m.Failed.Load()
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Cancelled int64     `json:"cancelled"`
	Unchanged int64     `json:"unchanged"`
	Moved     int64     `json:"moved"`
	Missed    int64     `json:"missed"`
	Failed    int64     `json:"failed"`
	StartTime time.Time `json:"start_time"`
	Uptime    string    `json:"uptime"`
}

// Snapshot returns the current counters; now is used for the uptime
func (m *Metrics) Snapshot(now time.Time) MetricsSnapshot {
	return MetricsSnapshot{
		Cancelled: m.Cancelled.Load(),
		Unchanged: m.Unchanged.Load(),
		Moved:     m.Moved.Load(),
		Missed:    m.Missed.Load(),
		Failed:    m.Failed.Load(),
		StartTime: m.StartTime,
		Uptime:    now.Sub(m.StartTime).String(),
	}
}
