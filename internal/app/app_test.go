package app

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/pinboard/internal/clock"
	"github.com/thenoetrevino/pinboard/internal/config"
	"github.com/thenoetrevino/pinboard/internal/dnd"
	"github.com/thenoetrevino/pinboard/internal/ids"
	"github.com/thenoetrevino/pinboard/internal/logging"
	"github.com/thenoetrevino/pinboard/internal/notify"
	"github.com/thenoetrevino/pinboard/internal/storage"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Storage.Backend = "memory"
	off := false
	cfg.SeedSamples = &off
	return cfg
}

func openTestApp(t *testing.T, opts ...Option) (*App, *storage.Memory, *clock.FakeClock) {
	t.Helper()
	slot := storage.NewMemory()
	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	all := append([]Option{
		WithSlot(slot),
		WithClock(fake),
		WithIDs(ids.Sequence()),
		WithLogger(logging.Discard()),
	}, opts...)

	a, err := Open(context.Background(), testConfig(), all...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a, slot, fake
}

func TestOpen(t *testing.T) {
	a, _, _ := openTestApp(t)

	if a.Store == nil {
		t.Fatal("Expected Store to be initialized")
	}
	if a.Notifier == nil {
		t.Fatal("Expected Notifier to be initialized")
	}
	if len(a.Store.Boards()) != 0 {
		t.Errorf("seeding disabled, got %d boards", len(a.Store.Boards()))
	}
}

func TestOpen_FromConfiguredBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Backend = "sqlite"
	cfg.Storage.Path = ":memory:"
	on := true
	cfg.SeedSamples = &on

	a, err := Open(context.Background(), cfg, WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer func() { _ = a.Close() }()

	if got := len(a.Store.Boards()); got != 4 {
		t.Errorf("expected 4 sample boards, got %d", got)
	}
}

func TestOpen_RejectsUnknownCodec(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Codec = "xml"

	if _, err := Open(context.Background(), cfg, WithSlot(storage.NewMemory())); err == nil {
		t.Error("expected an error for an unknown codec")
	}
}

func TestSaveFailure_ShowsErrorToast(t *testing.T) {
	a, slot, fake := openTestApp(t)
	slot.FailSaves(true)

	a.Store.CreateBoard("Launch", "")

	toasts := a.Notifier.All()
	if len(toasts) != 1 {
		t.Fatalf("expected one toast, got %v", toasts)
	}
	if toasts[0].Level != notify.LevelError || toasts[0].Message != SaveFailedMessage {
		t.Errorf("toast = %+v", toasts[0])
	}

	fake.Advance(4 * time.Second)
	if a.Notifier.HasAny() {
		t.Error("error toast should expire after the configured duration")
	}
}

func TestCoordinator_DrivesStore(t *testing.T) {
	a, _, _ := openTestApp(t)
	boardID := a.Store.CreateBoard("Launch", "")
	cols := a.Store.Columns(boardID)
	tick, _ := a.Store.AddTicket(boardID, cols[0].ID, "Write roadmap")

	c := a.Coordinator(boardID)
	outcome := c.OnDragEnd(dnd.DropResult{
		Kind:        dnd.KindCard,
		DraggableID: string(tick),
		Source:      dnd.Location{DroppableID: string(cols[0].ID), Index: 0},
		Destination: &dnd.Location{DroppableID: string(cols[2].ID), Index: 0},
	})

	if outcome != dnd.OutcomeMoved {
		t.Fatalf("outcome = %v, want moved", outcome)
	}
	after := a.Store.Columns(boardID)
	if len(after[0].Tickets) != 0 || len(after[2].Tickets) != 1 {
		t.Errorf("ticket not moved: %+v", after)
	}

	outcome = c.OnDragEnd(dnd.DropResult{
		Kind:        dnd.KindColumn,
		Source:      dnd.Location{DroppableID: dnd.BoardDroppable, Index: 2},
		Destination: &dnd.Location{DroppableID: dnd.BoardDroppable, Index: 0},
	})
	if outcome != dnd.OutcomeMoved {
		t.Fatalf("column outcome = %v, want moved", outcome)
	}
	if got := a.Store.Columns(boardID)[0].Title; got != "Done" {
		t.Errorf("first column = %q, want Done", got)
	}

	a.Coordinator(boardID).OnDragEnd(dnd.DropResult{Kind: dnd.KindCard})
	snap := a.DropMetrics()
	if snap.Moved != 2 || snap.Cancelled != 1 {
		t.Errorf("drop metrics = %+v", snap)
	}
}

func TestClose(t *testing.T) {
	a, _, _ := openTestApp(t)
	a.Notifier.Add(notify.LevelInfo, "sticky", 0)

	if err := a.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
	if a.Notifier.HasAny() {
		t.Error("Close should clear notifications")
	}
}
