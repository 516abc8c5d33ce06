package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestFake_NowOnlyMovesOnAdvance(t *testing.T) {
	c := Fake(epoch)

	if !c.Now().Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", c.Now(), epoch)
	}

	c.Advance(90 * time.Second)
	if want := epoch.Add(90 * time.Second); !c.Now().Equal(want) {
		t.Errorf("Now() after Advance = %v, want %v", c.Now(), want)
	}
}

func TestFake_AfterFuncFiresInDeadlineOrder(t *testing.T) {
	c := Fake(epoch)
	var order []string

	c.AfterFunc(3*time.Second, func() { order = append(order, "late") })
	c.AfterFunc(1*time.Second, func() { order = append(order, "early") })

	c.Advance(2 * time.Second)
	if len(order) != 1 || order[0] != "early" {
		t.Fatalf("after 2s order = %v, want [early]", order)
	}

	c.Advance(time.Second)
	if len(order) != 2 || order[1] != "late" {
		t.Errorf("after 3s order = %v, want [early late]", order)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", c.Pending())
	}
}

func TestFake_StopCancelsCallback(t *testing.T) {
	c := Fake(epoch)
	fired := false

	timer := c.AfterFunc(time.Second, func() { fired = true })
	if !timer.Stop() {
		t.Fatal("Stop() on pending timer should return true")
	}
	if timer.Stop() {
		t.Error("second Stop() should return false")
	}

	c.Advance(5 * time.Second)
	if fired {
		t.Error("stopped callback fired")
	}
}

func TestFake_NonPositiveDelayRunsImmediately(t *testing.T) {
	c := Fake(epoch)
	fired := false

	c.AfterFunc(0, func() { fired = true })
	if !fired {
		t.Error("AfterFunc(0) should run synchronously")
	}
}
