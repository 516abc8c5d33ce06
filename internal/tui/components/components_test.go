package components

import (
	"strings"
	"testing"
	"time"

	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/notify"
	"github.com/thenoetrevino/pinboard/internal/types"
)

func ticket(title string) models.Ticket {
	return models.Ticket{ID: types.TicketID("tick-" + title), Title: title}
}

func TestRenderColumn_Header(t *testing.T) {
	tests := []struct {
		name     string
		column   models.Column
		wantText string
	}{
		{"empty column", models.Column{Title: "Backlog"}, "Backlog (0)"},
		{"single ticket", models.Column{Title: "Doing", Tickets: []models.Ticket{ticket("a")}}, "Doing (1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderColumn(ColumnProps{Column: tt.column, SelectedTicket: -1, GrabbedTicket: -1})
			if !strings.Contains(result, tt.wantText) {
				t.Errorf("RenderColumn() = %q, want to contain %q", result, tt.wantText)
			}
		})
	}
}

func TestRenderColumn_EmptyState(t *testing.T) {
	result := RenderColumn(ColumnProps{Column: models.Column{Title: "Done"}, SelectedTicket: -1, GrabbedTicket: -1})

	if !strings.Contains(result, "No tickets") {
		t.Errorf("empty column should say so, got %q", result)
	}
}

func TestRenderColumn_ScrollsToFocus(t *testing.T) {
	col := models.Column{Title: "To Do"}
	for _, title := range []string{"one", "two", "three", "four", "five", "six"} {
		col.Tickets = append(col.Tickets, ticket(title))
	}

	// room for two cards
	height := columnOverhead + 2*CardHeight
	result := RenderColumn(ColumnProps{Column: col, Selected: true, SelectedTicket: 5, GrabbedTicket: -1, Height: height})

	if !strings.Contains(result, "six") || strings.Contains(result, "one") {
		t.Errorf("selected ticket should be scrolled into view:\n%s", result)
	}
	if !strings.Contains(result, "more above") {
		t.Errorf("missing scroll indicator:\n%s", result)
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		focus, visible, total, want int
	}{
		{0, 3, 10, 0},
		{2, 3, 10, 0},
		{3, 3, 10, 1},
		{9, 3, 10, 7},
		{5, 10, 6, 0},
	}
	for _, tt := range tests {
		if got := scrollOffset(tt.focus, tt.visible, tt.total); got != tt.want {
			t.Errorf("scrollOffset(%d,%d,%d) = %d, want %d", tt.focus, tt.visible, tt.total, got, tt.want)
		}
	}
}

func TestRenderCard_Meta(t *testing.T) {
	due := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	tk := models.Ticket{
		Title:   "Ship it",
		Labels:  []string{"bug"},
		DueDate: &due,
		Checklists: []models.Checklist{{
			Items: []models.ChecklistItem{{Text: "a", Completed: true}, {Text: "b"}},
		}},
	}

	result := RenderCard(CardProps{Ticket: tk})
	for _, want := range []string{"Ship it", "[bug]", "☑ 1/2", "Mar 4"} {
		if !strings.Contains(result, want) {
			t.Errorf("card missing %q:\n%s", want, result)
		}
	}

	bare := RenderCard(CardProps{Ticket: ticket("plain")})
	if !strings.Contains(bare, "no details") {
		t.Errorf("bare card should show placeholder:\n%s", bare)
	}
}

func TestRenderCard_GrabbedMarker(t *testing.T) {
	result := RenderCard(CardProps{Ticket: ticket("moving"), Grabbed: true})
	if !strings.Contains(result, "✥") {
		t.Errorf("grabbed card should carry the grab marker:\n%s", result)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abcdef", 4, "abc…"},
		{"ab", 3, "ab"},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestRenderTabs_StarredMarker(t *testing.T) {
	result := RenderTabs([]Tab{{Title: "Launch", Starred: true}, {Title: "Ops"}}, 0, 80, "")

	if !strings.Contains(result, "★") || !strings.Contains(result, "Launch") || !strings.Contains(result, "Ops") {
		t.Errorf("tabs = %q", result)
	}
}

func TestRenderToasts(t *testing.T) {
	if RenderToasts(nil) != "" {
		t.Error("no toasts should render nothing")
	}

	out := RenderToasts([]notify.Toast{
		{Level: notify.LevelInfo, Message: "first"},
		{Level: notify.LevelError, Message: "Changes could not be saved"},
	})
	if !strings.Contains(out, "could not be saved") || !strings.Contains(out, "+1") {
		t.Errorf("toasts = %q", out)
	}
	if strings.Contains(out, "first") {
		t.Errorf("only the newest toast is shown, got %q", out)
	}
}

func TestRenderStatusBar_Defaults(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 60})
	if !strings.Contains(out, "Pinboard") || !strings.Contains(out, "press ? for help") {
		t.Errorf("status bar = %q", out)
	}
}
