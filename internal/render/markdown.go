package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// ColorsEnabled returns whether terminal colors should be used.
// It returns false if the NO_COLOR environment variable is set (any value)
// or if TERM is set to "dumb".
func ColorsEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// RenderMarkdown renders markdown text for terminal display, wrapped to the
// width media cards use. When colors are disabled, it returns the content
// unmodified.
func RenderMarkdown(content string) (string, error) {
	if content == "" {
		return "", nil
	}

	if !ColorsEnabled() {
		return content, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithEnvironmentConfig(),
		glamour.WithWordWrap(min(TerminalWidth(), maxCardWidth)-4),
	)
	if err != nil {
		return content, err
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content, err
	}

	return strings.TrimSpace(rendered), nil
}

// RenderJSONPreview renders a titled JSON document as a highlighted code
// block, e.g. the English and Hebrew previews shown before export.
func RenderJSONPreview(title string, data []byte) (string, error) {
	md := fmt.Sprintf("## %s\n\n```json\n%s\n```\n", title, strings.TrimRight(string(data), "\n"))
	return RenderMarkdown(md)
}
