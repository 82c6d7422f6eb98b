package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/textops/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// An empty style detects a light or dark background automatically.
func NewRenderer(style string, width int) (func(string) (string, error), error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// CatalogMarkdown formats the operation catalog as a markdown list.
func CatalogMarkdown(title string, tools []domain.Tool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, t := range tools {
		fmt.Fprintf(&b, "- **%s**: %s\n", t.Name, t.Description)
	}
	return b.String()
}
