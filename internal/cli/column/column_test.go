package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/testutil"
	clitest "github.com/thenoetrevino/pinboard/internal/testutil/cli"
)

func columnTitles(t *testing.T, a *testutil.TestApp) []string {
	t.Helper()
	b, ok := a.Store.CurrentBoard()
	require.True(t, ok)
	out := make([]string, len(b.Columns))
	for i, c := range b.Columns {
		out[i] = c.Title
	}
	return out
}

func TestCreateColumn_Integration(t *testing.T) {
	a := clitest.SetupCLITest(t)
	testutil.CreateTestBoard(t, a.App, "Launch")

	output, err := clitest.ExecuteCLICommand(t, a.App, CreateCmd(), []string{"--title", "Review"})
	require.NoError(t, err)
	assert.Contains(t, output, "Column 'Review' created successfully (ID: col-4)")
	assert.Contains(t, output, "Board: Launch")
	assert.Equal(t, []string{"To Do", "In Progress", "Done", "Review"}, columnTitles(t, a))

	output, err = clitest.ExecuteCLICommand(t, a.App, CreateCmd(), []string{"--title", "QA", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "col-5\n", output)
}

func TestCreateColumn_Errors(t *testing.T) {
	a := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, a.App, CreateCmd(), []string{"--title", "Review"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), "no board yet")

	testutil.CreateTestBoard(t, a.App, "Launch")
	_, err = clitest.ExecuteCLICommand(t, a.App, CreateCmd(), []string{"--title", ""})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, a.App, CreateCmd(), []string{"--title", "Review", "--board", "board-99"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestListColumns_Integration(t *testing.T) {
	a := clitest.SetupCLITest(t)
	id, cols := testutil.CreateTestBoard(t, a.App, "Launch")
	testutil.CreateTestTicket(t, a.App, id, cols[0], "One")

	output, err := clitest.ExecuteCLICommand(t, a.App, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Columns on board 'Launch':")
	assert.Contains(t, output, "1. To Do (ID: col-1, 1 tickets)")

	output, err = clitest.ExecuteCLICommand(t, a.App, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	columns := testutil.JSONList(t, output, "columns")
	require.Len(t, columns, 3)
	assert.Equal(t, "Done", columns[2].(map[string]any)["title"])
}

func TestUpdateColumn_Integration(t *testing.T) {
	a := clitest.SetupCLITest(t)
	testutil.CreateTestBoard(t, a.App, "Launch")

	_, err := clitest.ExecuteCLICommand(t, a.App, UpdateCmd(), []string{"--column", "to do", "--title", "Backlog"})
	require.NoError(t, err)
	assert.Equal(t, "Backlog", columnTitles(t, a)[0])

	_, err = clitest.ExecuteCLICommand(t, a.App, UpdateCmd(), []string{"--column", "Nope", "--title", "X"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestDeleteColumn_Integration(t *testing.T) {
	a := clitest.SetupCLITest(t)
	id, cols := testutil.CreateTestBoard(t, a.App, "Launch")
	testutil.CreateTestTicket(t, a.App, id, cols[1], "Busy")

	_, err := clitest.ExecuteCLICommand(t, a.App, DeleteCmd(), []string{"--column", "In Progress"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), "non-empty column needs --force")
	assert.Len(t, columnTitles(t, a), 3)

	_, err = clitest.ExecuteCLICommand(t, a.App, DeleteCmd(), []string{"--column", "In Progress", "--force"})
	require.NoError(t, err)
	assert.Equal(t, []string{"To Do", "Done"}, columnTitles(t, a))

	_, err = clitest.ExecuteCLICommand(t, a.App, DeleteCmd(), []string{"--column", string(cols[0])})
	require.NoError(t, err)
	assert.Equal(t, []string{"Done"}, columnTitles(t, a))
}

func TestMoveColumn_Integration(t *testing.T) {
	a := clitest.SetupCLITest(t)
	testutil.CreateTestBoard(t, a.App, "Launch")

	output, err := clitest.ExecuteCLICommand(t, a.App, MoveCmd(), []string{"--column", "Done", "--position", "1"})
	require.NoError(t, err)
	assert.Contains(t, output, "moved to position 1 (moved)")
	assert.Equal(t, []string{"Done", "To Do", "In Progress"}, columnTitles(t, a))

	output, err = clitest.ExecuteCLICommand(t, a.App, MoveCmd(), []string{"--column", "Done", "--position", "1"})
	require.NoError(t, err)
	assert.Contains(t, output, "(unchanged)")

	_, err = clitest.ExecuteCLICommand(t, a.App, MoveCmd(), []string{"--column", "Done", "--position", "4"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Equal(t, []string{"Done", "To Do", "In Progress"}, columnTitles(t, a))
}
