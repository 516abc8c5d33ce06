package notify

import (
	"testing"
	"time"

	"github.com/thenoetrevino/pinboard/internal/clock"
	"github.com/thenoetrevino/pinboard/internal/ids"
)

func newTestCenter() (*Center, *clock.FakeClock) {
	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewCenter(fake, ids.Sequence(), Durations{}), fake
}

func TestAdd_ExpiresAfterDuration(t *testing.T) {
	c, fake := newTestCenter()

	id := c.Add(LevelInfo, "hello", 2*time.Second)
	if id != "toast-1" {
		t.Errorf("id = %q, want toast-1", id)
	}

	fake.Advance(1999 * time.Millisecond)
	if !c.HasAny() {
		t.Fatal("toast expired too early")
	}

	fake.Advance(time.Millisecond)
	if c.HasAny() {
		t.Errorf("toast should be gone, have %v", c.All())
	}
}

func TestAdd_ZeroDurationIsSticky(t *testing.T) {
	c, fake := newTestCenter()

	c.Add(LevelWarning, "stays", 0)
	fake.Advance(time.Hour)

	if len(c.All()) != 1 {
		t.Errorf("sticky toast should remain, have %d", len(c.All()))
	}
	if fake.Pending() != 0 {
		t.Errorf("sticky toast should not schedule a timer, pending = %d", fake.Pending())
	}
}

func TestLevelHelpers_UseDefaults(t *testing.T) {
	c, fake := newTestCenter()

	c.Success("saved")
	c.Error("broke")

	all := c.All()
	if len(all) != 2 {
		t.Fatalf("len(All) = %d, want 2", len(all))
	}
	if all[0].Level != LevelSuccess || all[0].Duration != 3*time.Second {
		t.Errorf("success toast = %+v", all[0])
	}
	if all[1].Level != LevelError || all[1].Duration != 4*time.Second {
		t.Errorf("error toast = %+v", all[1])
	}

	fake.Advance(3 * time.Second)
	all = c.All()
	if len(all) != 1 || all[0].Message != "broke" {
		t.Errorf("after 3s want only the error toast, have %v", all)
	}

	fake.Advance(time.Second)
	if c.HasAny() {
		t.Error("error toast should expire after 4s")
	}
}

func TestCustomDurations(t *testing.T) {
	fake := clock.Fake(time.Time{})
	c := NewCenter(fake, ids.Sequence(), Durations{Info: time.Second})

	c.Info("quick")
	c.Warning("default")
	fake.Advance(time.Second)

	all := c.All()
	if len(all) != 1 || all[0].Message != "default" {
		t.Errorf("want only the warning left, have %v", all)
	}
}

func TestRemove_CancelsTimer(t *testing.T) {
	c, fake := newTestCenter()

	id := c.Info("bye")
	c.Remove(id)
	c.Remove("toast-unknown")

	if c.HasAny() {
		t.Error("toast should be removed")
	}
	if fake.Pending() != 0 {
		t.Errorf("timer should be stopped, pending = %d", fake.Pending())
	}
}

func TestClearLevel(t *testing.T) {
	c, _ := newTestCenter()
	c.Error("e1")
	c.Info("i1")
	c.Error("e2")

	c.ClearLevel(LevelError)

	all := c.All()
	if len(all) != 1 || all[0].Message != "i1" {
		t.Errorf("want only i1, have %v", all)
	}
}

func TestClear(t *testing.T) {
	c, fake := newTestCenter()
	c.Info("a")
	c.Add(LevelInfo, "b", 0)

	c.Clear()

	if c.HasAny() {
		t.Error("Clear should remove every toast")
	}
	if fake.Pending() != 0 {
		t.Errorf("Clear should stop timers, pending = %d", fake.Pending())
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	c, _ := newTestCenter()
	c.Info("original")

	all := c.All()
	all[0].Message = "changed"

	if c.All()[0].Message != "original" {
		t.Error("All should return a copy")
	}
}

func TestLevelString(t *testing.T) {
	tests := map[Level]string{
		LevelInfo:    "info",
		LevelSuccess: "success",
		LevelWarning: "warning",
		LevelError:   "error",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", level, got, want)
		}
	}
}
