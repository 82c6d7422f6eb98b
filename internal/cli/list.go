package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/textops/internal/presentation/tui"
	"github.com/aretw0/textops/pkg/domain"
)

// ListFormat selects how the catalog is printed.
type ListFormat int

const (
	ListPlain ListFormat = iota
	ListJSON
	ListMarkdown
)

// PrintCatalog writes tools to w. Markdown is rendered with glamour at the given width.
func PrintCatalog(w io.Writer, tools []domain.Tool, format ListFormat, width int) error {
	switch format {
	case ListJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tools)
	case ListMarkdown:
		render, err := tui.NewRenderer("", width)
		if err != nil {
			return err
		}
		out, err := render(tui.CatalogMarkdown("Operations", tools))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, t := range tools {
			fmt.Fprintf(tw, "%s\t%s\n", t.Name, t.Description)
		}
		return tw.Flush()
	}
}
