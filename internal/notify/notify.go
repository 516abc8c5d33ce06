// Package notify holds the transient user-facing notifications (toasts).
// Toasts expire on their own and never touch board data.
package notify

import (
	"sync"
	"time"

	"github.com/thenoetrevino/pinboard/internal/clock"
	"github.com/thenoetrevino/pinboard/internal/ids"
)

// Level is the severity of a toast
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}
	return "info"
}

// Toast is a single notification. A zero Duration means it stays until
// removed.
type Toast struct {
	ID       string
	Message  string
	Level    Level
	Duration time.Duration
}

// Durations are the per-level lifetimes used by the level helpers
type Durations struct {
	Success time.Duration
	Info    time.Duration
	Warning time.Duration
	Error   time.Duration
}

// DefaultDurations match the web app: three seconds, four for errors
func DefaultDurations() Durations {
	return Durations{
		Success: 3 * time.Second,
		Info:    3 * time.Second,
		Warning: 3 * time.Second,
		Error:   4 * time.Second,
	}
}

// Center owns the live toasts. It is safe for concurrent use; expiry
// callbacks arrive on clock goroutines.
type Center struct {
	mu        sync.Mutex
	toasts    []Toast
	timers    map[string]*clock.Timer
	clock     clock.Clock
	ids       ids.Generator
	durations Durations
}

// NewCenter creates an empty center. Zero durations fall back to the
// defaults.
func NewCenter(c clock.Clock, g ids.Generator, d Durations) *Center {
	def := DefaultDurations()
	if d.Success <= 0 {
		d.Success = def.Success
	}
	if d.Info <= 0 {
		d.Info = def.Info
	}
	if d.Warning <= 0 {
		d.Warning = def.Warning
	}
	if d.Error <= 0 {
		d.Error = def.Error
	}
	return &Center{
		toasts:    []Toast{},
		timers:    make(map[string]*clock.Timer),
		clock:     c,
		ids:       g,
		durations: d,
	}
}

// Add shows a toast and returns its id. It is removed after d, or never
// when d is zero.
func (c *Center) Add(level Level, message string, d time.Duration) string {
	id := c.ids.New("toast")

	c.mu.Lock()
	c.toasts = append(c.toasts, Toast{ID: id, Message: message, Level: level, Duration: d})
	c.mu.Unlock()

	if d > 0 {
		timer := c.clock.AfterFunc(d, func() { c.expire(id) })
		c.mu.Lock()
		// the callback may already have run for very short durations
		if c.index(id) >= 0 {
			c.timers[id] = timer
		}
		c.mu.Unlock()
	}
	return id
}

// Success shows a success toast for the configured duration
func (c *Center) Success(message string) string {
	return c.Add(LevelSuccess, message, c.durations.Success)
}

// Info shows an info toast for the configured duration
func (c *Center) Info(message string) string {
	return c.Add(LevelInfo, message, c.durations.Info)
}

// Warning shows a warning toast for the configured duration
func (c *Center) Warning(message string) string {
	return c.Add(LevelWarning, message, c.durations.Warning)
}

// Error shows an error toast for the configured duration
func (c *Center) Error(message string) string {
	return c.Add(LevelError, message, c.durations.Error)
}

// Remove dismisses a toast. Unknown ids are ignored.
func (c *Center) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

// All returns the live toasts, oldest first
func (c *Center) All() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Toast{}, c.toasts...)
}

// HasAny reports whether any toast is showing
func (c *Center) HasAny() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.toasts) > 0
}

// Clear dismisses every toast
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
	c.toasts = []Toast{}
}

// ClearLevel dismisses every toast of one level
func (c *Center) ClearLevel(level Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range append([]Toast{}, c.toasts...) {
		if t.Level == level {
			c.removeLocked(t.ID)
		}
	}
}

func (c *Center) expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.timers, id)
	c.removeLocked(id)
}

func (c *Center) removeLocked(id string) {
	idx := c.index(id)
	if idx < 0 {
		return
	}
	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	c.toasts = append(c.toasts[:idx], c.toasts[idx+1:]...)
}

func (c *Center) index(id string) int {
	for i := range c.toasts {
		if c.toasts[i].ID == id {
			return i
		}
	}
	return -1
}
