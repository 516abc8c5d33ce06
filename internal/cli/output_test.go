package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/testutil"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name string `json:"name"`
}

// ============================================================================
// Success Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		if err := formatter.Success("board", mockDataWithID{ID: "board-1", Name: "Launch"}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	result := testutil.ParseJSON(t, output)
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	board, ok := result["board"].(map[string]any)
	if !ok {
		t.Fatalf("Expected board object, got %v", result["board"])
	}
	if board["id"] != "board-1" || board["name"] != "Launch" {
		t.Errorf("board = %v", board)
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"with id", mockDataWithID{ID: "tick-7"}, "tick-7\n"},
		{"without id", mockDataWithoutID{Name: "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{Quiet: true, JSON: true}
			output := testutil.CaptureOutput(t, func() {
				_ = formatter.Success("data", tt.data)
			})
			if output != tt.want {
				t.Errorf("output = %q, want %q", output, tt.want)
			}
		})
	}
}

// ============================================================================
// Error Tests
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		_ = formatter.ErrorWithSuggestion("NO_BOARD", "no board selected", "Pass --board")
	})

	result := testutil.ParseJSON(t, output)
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "NO_BOARD" || errData["message"] != "no board selected" || errData["suggestion"] != "Pass --board" {
		t.Errorf("error = %v", errData)
	}
}

func TestOutputFormatter_Error_OmitsEmptySuggestion(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		_ = formatter.Error("BOARD_NOT_FOUND", "board x not found")
	})

	errData := testutil.JSONObject(t, output, "error")
	if _, ok := errData["suggestion"]; ok {
		t.Errorf("suggestion should be omitted, got %v", errData)
	}
}

func TestOutputFormatter_Error_HumanGoesToStderr(t *testing.T) {
	formatter := &OutputFormatter{}

	output := testutil.CaptureOutput(t, func() {
		_ = formatter.Error("X", "boom")
	})
	if strings.TrimSpace(output) != "" {
		t.Errorf("human errors should not reach stdout, got %q", output)
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	var err error
	output := testutil.CaptureOutput(t, func() {
		err = formatter.Fail(ExitValidation, "INVALID_TITLE", "title cannot be empty")
	})

	var status *StatusError
	if !errors.As(err, &status) {
		t.Fatalf("expected *StatusError, got %T", err)
	}
	if status.Code != ExitValidation || status.Error() != "title cannot be empty" {
		t.Errorf("status = %+v", status)
	}
	if !strings.Contains(output, "INVALID_TITLE") {
		t.Errorf("Fail should report the error, got %q", output)
	}
}

func TestNewFormatter(t *testing.T) {
	cmd := &cobra.Command{Use: "widget"}
	AddOutputFlags(cmd)
	_ = cmd.Flags().Set("json", "true")

	f := NewFormatter(cmd)
	if !f.JSON || f.Quiet {
		t.Errorf("formatter = %+v", f)
	}
}
