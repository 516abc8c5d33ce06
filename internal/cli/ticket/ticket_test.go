package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/testutil"
	clitest "github.com/thenoetrevino/pinboard/internal/testutil/cli"
	"github.com/thenoetrevino/pinboard/internal/types"
)

// fixture is a board with tickets A, B, C in To Do and D in Done
type fixture struct {
	*testutil.TestApp
	board types.BoardID
	cols  []types.ColumnID
}

func setup(t *testing.T) fixture {
	t.Helper()
	a := clitest.SetupCLITest(t)
	id, cols := testutil.CreateTestBoard(t, a.App, "Launch")
	for _, title := range []string{"A", "B", "C"} {
		testutil.CreateTestTicket(t, a.App, id, cols[0], title)
	}
	testutil.CreateTestTicket(t, a.App, id, cols[2], "D")
	return fixture{TestApp: a, board: id, cols: cols}
}

func (f fixture) titles(col int) []string {
	out := []string{}
	for _, tk := range f.Store.Columns(f.board)[col].Tickets {
		out = append(out, tk.Title)
	}
	return out
}

// ============================================================================
// Create
// ============================================================================

func TestCreateTicket_Integration(t *testing.T) {
	f := setup(t)

	output, err := clitest.ExecuteCLICommand(t, f.App, CreateCmd(), []string{"--title", "E"})
	require.NoError(t, err)
	assert.Contains(t, output, "Ticket 'E' created successfully (ID: tick-5)")
	assert.Contains(t, output, "Column: To Do")
	assert.Equal(t, []string{"A", "B", "C", "E"}, f.titles(0))

	output, err = clitest.ExecuteCLICommand(t, f.App, CreateCmd(), []string{
		"--title", "F", "--column", "done",
		"--description", "Fails on **Safari**",
		"--due", "2026-04-01",
		"--label", "Bug", "--label", "Urgent",
		"--json",
	})
	require.NoError(t, err)
	ticket := testutil.JSONObject(t, output, "ticket")
	assert.Equal(t, "F", ticket["title"])
	assert.Equal(t, "Fails on **Safari**", ticket["description"])
	assert.Equal(t, []any{"Bug", "Urgent"}, ticket["labels"])
	assert.Equal(t, []string{"D", "F"}, f.titles(2))

	tk, ok := f.Store.Ticket(f.board, f.cols[2], "tick-6")
	require.True(t, ok)
	require.NotNil(t, tk.DueDate)
	assert.True(t, tk.DueDate.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCreateTicket_Errors(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"blank title", []string{"--title", " "}, cli.ExitValidation},
		{"unknown column", []string{"--title", "X", "--column", "Nope"}, cli.ExitNotFound},
		{"bad due date", []string{"--title", "X", "--due", "tomorrow"}, cli.ExitDataErr},
		{"unknown board", []string{"--title", "X", "--board", "Nope"}, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, f.App, CreateCmd(), tt.args)
			assert.Equal(t, tt.want, cli.ExitCode(err))
		})
	}
	assert.Equal(t, []string{"A", "B", "C"}, f.titles(0), "failed creates leave the board alone")
}

// ============================================================================
// List / Show
// ============================================================================

func TestListTickets_Integration(t *testing.T) {
	f := setup(t)

	output, err := clitest.ExecuteCLICommand(t, f.App, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "To Do:\n  - A (ID: tick-1)")
	assert.Contains(t, output, "Done:\n  - D (ID: tick-4)")

	output, err = clitest.ExecuteCLICommand(t, f.App, ListCmd(), []string{"--column", "Done", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "tick-4\n", output)

	output, err = clitest.ExecuteCLICommand(t, f.App, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	assert.Len(t, testutil.ParseJSON(t, output)["tickets"], 4)
}

func TestShowTicket_Integration(t *testing.T) {
	f := setup(t)
	clID, _ := f.Store.AddChecklist(f.board, f.cols[0], "tick-2", "Steps")
	itemID, _ := f.Store.AddChecklistItem(f.board, f.cols[0], "tick-2", clID, "Reproduce")
	f.Store.UpdateChecklistItem(f.board, f.cols[0], "tick-2", clID, itemID, updateCompleted(true))
	f.Store.AddLabel(f.board, f.cols[0], "tick-2", "Bug")

	output, err := clitest.ExecuteCLICommand(t, f.App, ShowCmd(), []string{"--ticket", "b"})
	require.NoError(t, err)
	assert.Contains(t, output, "B (ID: tick-2)")
	assert.Contains(t, output, "Column: To Do (position 2)")
	assert.Contains(t, output, "Labels: Bug")
	assert.Contains(t, output, "Steps (ID: checklist-1)")
	assert.Contains(t, output, "[x] Reproduce")

	output, err = clitest.ExecuteCLICommand(t, f.App, ShowCmd(), []string{"--ticket", "tick-4", "--json"})
	require.NoError(t, err)
	ticket := testutil.JSONObject(t, output, "ticket")
	assert.Equal(t, "Done", ticket["column"].(map[string]any)["title"])
	assert.Equal(t, float64(1), ticket["position"])

	_, err = clitest.ExecuteCLICommand(t, f.App, ShowCmd(), []string{"--ticket", "Z"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

// ============================================================================
// Update / Delete
// ============================================================================

func TestUpdateTicket_Integration(t *testing.T) {
	f := setup(t)

	_, err := clitest.ExecuteCLICommand(t, f.App, UpdateCmd(), []string{
		"--ticket", "A", "--title", "A2", "--description", "notes", "--due", "2026-06-30",
	})
	require.NoError(t, err)

	tk, _ := f.Store.Ticket(f.board, f.cols[0], "tick-1")
	assert.Equal(t, "A2", tk.Title)
	assert.Equal(t, "notes", tk.Description)
	require.NotNil(t, tk.DueDate)

	_, err = clitest.ExecuteCLICommand(t, f.App, UpdateCmd(), []string{"--ticket", "A2", "--clear-due"})
	require.NoError(t, err)
	tk, _ = f.Store.Ticket(f.board, f.cols[0], "tick-1")
	assert.Nil(t, tk.DueDate)

	_, err = clitest.ExecuteCLICommand(t, f.App, UpdateCmd(), []string{"--ticket", "A2"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestDeleteTicket_Integration(t *testing.T) {
	f := setup(t)

	output, err := clitest.ExecuteCLICommand(t, f.App, DeleteCmd(), []string{"--ticket", "B"})
	require.NoError(t, err)
	assert.Contains(t, output, "Ticket 'B' deleted")
	assert.Equal(t, []string{"A", "C"}, f.titles(0))
}

// ============================================================================
// Move
// ============================================================================

func TestMoveTicket_Integration(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantToDo []string
		wantDone []string
	}{
		{
			name:     "within column to the front",
			args:     []string{"--ticket", "C", "--position", "1"},
			wantToDo: []string{"C", "A", "B"},
			wantDone: []string{"D"},
		},
		{
			name:     "within column to the end",
			args:     []string{"--ticket", "A"},
			wantToDo: []string{"B", "C", "A"},
			wantDone: []string{"D"},
		},
		{
			name:     "across columns, default end",
			args:     []string{"--ticket", "B", "--column", "Done"},
			wantToDo: []string{"A", "C"},
			wantDone: []string{"D", "B"},
		},
		{
			name:     "across columns, explicit position",
			args:     []string{"--ticket", "B", "--column", "Done", "--position", "1"},
			wantToDo: []string{"A", "C"},
			wantDone: []string{"B", "D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			_, err := clitest.ExecuteCLICommand(t, f.App, MoveCmd(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantToDo, f.titles(0))
			assert.Equal(t, tt.wantDone, f.titles(2))
		})
	}
}

func TestMoveTicket_Errors(t *testing.T) {
	f := setup(t)

	_, err := clitest.ExecuteCLICommand(t, f.App, MoveCmd(), []string{"--ticket", "A", "--position", "4"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err), "position past the end of its own column")

	_, err = clitest.ExecuteCLICommand(t, f.App, MoveCmd(), []string{"--ticket", "A", "--column", "Nope"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	assert.Equal(t, []string{"A", "B", "C"}, f.titles(0))
}

// ============================================================================
// Labels
// ============================================================================

func TestLabelTicket_Integration(t *testing.T) {
	f := setup(t)

	_, err := clitest.ExecuteCLICommand(t, f.App, LabelCmd(), []string{"--ticket", "A", "--add", "Bug", "--add", "Bug", "--toggle", "UI"})
	require.NoError(t, err)
	tk, _ := f.Store.Ticket(f.board, f.cols[0], "tick-1")
	assert.Equal(t, []string{"Bug", "Bug", "UI"}, tk.Labels)

	_, err = clitest.ExecuteCLICommand(t, f.App, LabelCmd(), []string{"--ticket", "A", "--remove", "Bug", "--toggle", "UI"})
	require.NoError(t, err)
	tk, _ = f.Store.Ticket(f.board, f.cols[0], "tick-1")
	assert.Empty(t, tk.Labels)

	_, err = clitest.ExecuteCLICommand(t, f.App, LabelCmd(), []string{"--ticket", "A"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func updateCompleted(done bool) models.ChecklistItemUpdate {
	return models.ChecklistItemUpdate{Completed: &done}
}
