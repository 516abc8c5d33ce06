package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/pinboard/internal/app"
	"github.com/thenoetrevino/pinboard/internal/clock"
	"github.com/thenoetrevino/pinboard/internal/config"
	"github.com/thenoetrevino/pinboard/internal/ids"
	"github.com/thenoetrevino/pinboard/internal/logging"
	"github.com/thenoetrevino/pinboard/internal/storage"
	"github.com/thenoetrevino/pinboard/internal/types"
)

// T0 is the fake clock's starting instant in every test app
var T0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// TestApp bundles an App with the fakes behind it
type TestApp struct {
	*app.App
	Slot  *storage.Memory
	Clock *clock.FakeClock
}

// NewTestApp opens an App over an in-memory slot with a fake clock,
// sequential ids and seeding disabled
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = storage.BackendMemory
	off := false
	cfg.SeedSamples = &off

	slot := storage.NewMemory()
	fake := clock.Fake(T0)

	a, err := app.Open(context.Background(), cfg,
		app.WithSlot(slot),
		app.WithClock(fake),
		app.WithIDs(ids.Sequence()),
		app.WithLogger(logging.Discard()),
	)
	if err != nil {
		t.Fatalf("Failed to open test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	return &TestApp{App: a, Slot: slot, Clock: fake}
}

// CreateTestBoard creates a board with the default columns and returns
// its id and column ids in order
func CreateTestBoard(t *testing.T, a *app.App, title string) (types.BoardID, []types.ColumnID) {
	t.Helper()

	id := a.Store.CreateBoard(title, "")
	cols := a.Store.Columns(id)
	out := make([]types.ColumnID, len(cols))
	for i, c := range cols {
		out[i] = c.ID
	}
	return id, out
}

// CreateTestTicket appends a ticket and fails the test on a miss
func CreateTestTicket(t *testing.T, a *app.App, boardID types.BoardID, columnID types.ColumnID, title string) types.TicketID {
	t.Helper()

	id, ok := a.Store.AddTicket(boardID, columnID, title)
	if !ok {
		t.Fatalf("Failed to add ticket %q to %s/%s", title, boardID, columnID)
	}
	return id
}
