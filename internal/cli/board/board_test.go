package board

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

// ============================================================================
// Create
// ============================================================================

func TestCreateBoard_Integration(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantCode     int
		verifyOutput func(t *testing.T, output string)
	}{
		{
			name:     "human-readable",
			args:     []string{"--title", "Launch"},
			wantCode: cli.ExitSuccess,
			verifyOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Board 'Launch' created successfully")
				assert.Contains(t, output, "board-1")
			},
		},
		{
			name:     "quiet prints the id",
			args:     []string{"--title", "Launch", "--quiet"},
			wantCode: cli.ExitSuccess,
			verifyOutput: func(t *testing.T, output string) {
				assert.Equal(t, "board-1\n", output)
			},
		},
		{
			name:     "json",
			args:     []string{"--title", "Launch", "--color", "from-pink-500 to-rose-500", "--json"},
			wantCode: cli.ExitSuccess,
			verifyOutput: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				assert.Equal(t, true, result["success"])
				board := result["board"].(map[string]any)
				assert.Equal(t, "Launch", board["title"])
				assert.Equal(t, "from-pink-500 to-rose-500", board["color"])
				assert.Len(t, board["columns"], 3)
			},
		},
		{
			name:     "blank title",
			args:     []string{"--title", "  "},
			wantCode: cli.ExitValidation,
		},
		{
			name:     "color outside the palette",
			args:     []string{"--title", "Launch", "--color", "#FF0000"},
			wantCode: cli.ExitValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := clitest.SetupCLITest(t)

			output, err := clitest.ExecuteCLICommand(t, a.App, CreateCmd(), tt.args)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
			if tt.verifyOutput != nil {
				tt.verifyOutput(t, output)
			}

			if tt.wantCode == cli.ExitSuccess {
				assert.Len(t, a.Store.Boards(), 1)
				require.NotNil(t, a.Store.CurrentBoardID())
				assert.Equal(t, types.BoardID("board-1"), *a.Store.CurrentBoardID())
			} else {
				assert.Empty(t, a.Store.Boards())
			}
		})
	}
}

// ============================================================================
// List / Show
// ============================================================================

func TestListBoards_Integration(t *testing.T) {
	a := clitest.SetupCLITest(t)
	first, cols := testutil.CreateTestBoard(t, a.App, "First")
	testutil.CreateTestBoard(t, a.App, "Second")
	testutil.CreateTestTicket(t, a.App, first, cols[0], "Only ticket")
	a.Store.ToggleStarBoard(first)

	output, err := clitest.ExecuteCLICommand(t, a.App, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "First ★")
	assert.Contains(t, output, "* 2. Second")

	output, err = clitest.ExecuteCLICommand(t, a.App, ListCmd(), []string{"--starred", "--json"})
	require.NoError(t, err)
	boards := testutil.JSONList(t, output, "boards")
	require.Len(t, boards, 1)
	summary := boards[0].(map[string]any)
	assert.Equal(t, "First", summary["title"])
	assert.Equal(t, float64(1), summary["tickets"])
	assert.Equal(t, false, summary["current"])

	output, err = clitest.ExecuteCLICommand(t, a.App, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "board-1\nboard-2\n", output)
}

func TestListBoards_Empty(t *testing.T) {
	a := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, a.App, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No boards found")
}

func TestShowBoard_Integration(t *testing.T) {
	a := clitest.SetupCLITest(t)
	id, cols := testutil.CreateTestBoard(t, a.App, "Launch")
	testutil.CreateTestTicket(t, a.App, id, cols[1], "Write roadmap")

	output, err := clitest.ExecuteCLICommand(t, a.App, ShowCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Launch (ID: board-1)")
	assert.Contains(t, output, "In Progress (1)")
	assert.Contains(t, output, "- Write roadmap")

	output, err = clitest.ExecuteCLICommand(t, a.App, ShowCmd(), []string{"--board", "launch", "--json"})
	require.NoError(t, err)
	board := testutil.JSONObject(t, output, "board")
	assert.Equal(t, "board-1", board["id"])
}

func TestShowBoard_Errors(t *testing.T) {
	a := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, a.App, ShowCmd(), nil)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), "no board selected")

	testutil.CreateTestBoard(t, a.App, "Launch")
	_, err = clitest.ExecuteCLICommand(t, a.App, ShowCmd(), []string{"--board", "missing"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

// ============================================================================
// Update / Delete / Star / Use
// ============================================================================

func TestUpdateBoard_Integration(t *testing.T) {
	a := clitest.SetupCLITest(t)
	id, _ := testutil.CreateTestBoard(t, a.App, "Launch")
	a.Clock.Advance(time.Minute)

	_, err := clitest.ExecuteCLICommand(t, a.App, UpdateCmd(), []string{"--title", "Launch v2", "--color", models.Palette[2]})
	require.NoError(t, err)

	b, _ := a.Store.Board(id)
	assert.Equal(t, "Launch v2", b.Title)
	assert.Equal(t, models.Palette[2], b.Color)
	assert.True(t, b.UpdatedAt.After(b.CreatedAt))

	_, err = clitest.ExecuteCLICommand(t, a.App, UpdateCmd(), nil)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), "nothing to update")

	_, err = clitest.ExecuteCLICommand(t, a.App, UpdateCmd(), []string{"--color", "plaid"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
}

func TestDeleteBoard_Integration(t *testing.T) {
	a := clitest.SetupCLITest(t)
	first, _ := testutil.CreateTestBoard(t, a.App, "First")
	testutil.CreateTestBoard(t, a.App, "Second")

	_, err := clitest.ExecuteCLICommand(t, a.App, DeleteCmd(), []string{"--board", "Second"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), "requires --force")
	assert.Len(t, a.Store.Boards(), 2)

	output, err := clitest.ExecuteCLICommand(t, a.App, DeleteCmd(), []string{"--board", "Second", "--force"})
	require.NoError(t, err)
	assert.Contains(t, output, "Board 'Second' deleted")

	assert.Len(t, a.Store.Boards(), 1)
	require.NotNil(t, a.Store.CurrentBoardID())
	assert.Equal(t, first, *a.Store.CurrentBoardID(), "selection falls back to the remaining board")
}

func TestStarBoard_Toggles(t *testing.T) {
	a := clitest.SetupCLITest(t)
	id, _ := testutil.CreateTestBoard(t, a.App, "Launch")

	output, err := clitest.ExecuteCLICommand(t, a.App, StarCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "starred")
	b, _ := a.Store.Board(id)
	assert.True(t, b.Starred)

	output, err = clitest.ExecuteCLICommand(t, a.App, StarCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "unstarred")
	b, _ = a.Store.Board(id)
	assert.False(t, b.Starred)
}

func TestUseBoard_Integration(t *testing.T) {
	a := clitest.SetupCLITest(t)
	first, _ := testutil.CreateTestBoard(t, a.App, "First")
	testutil.CreateTestBoard(t, a.App, "Second")

	_, err := clitest.ExecuteCLICommand(t, a.App, UseCmd(), []string{"first"})
	require.NoError(t, err)
	assert.Equal(t, first, *a.Store.CurrentBoardID())

	_, err = clitest.ExecuteCLICommand(t, a.App, UseCmd(), []string{"nope"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Equal(t, first, *a.Store.CurrentBoardID(), "a miss leaves the selection alone")
}

func TestBoardCmd_Subcommands(t *testing.T) {
	cmd := BoardCmd()
	for _, name := range []string{"create", "list", "show", "update", "delete", "star", "use"} {
		found, _, err := cmd.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, found.Name())
		}
	}
}
