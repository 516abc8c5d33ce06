package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// DefaultWidth is used when the caller has no terminal width to offer
const DefaultWidth = 80

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Render formats a ticket description for the terminal. It falls back to
// the raw text when glamour cannot render it, and returns "" for blank input.
func Render(description string, width int) string {
	if strings.TrimSpace(description) == "" {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return description
	}
	out, err := renderer.Render(description)
	if err != nil {
		return description
	}
	return strings.TrimSpace(out)
}
