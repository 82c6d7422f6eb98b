package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/textops/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")

	out := buf.String()
	assert.Contains(t, out, `| |_ _____  _| |_ ___  _ __  ___`)
	assert.Contains(t, out, "v1.2.3")
	// A buffer is not a terminal, so no escape sequences are emitted.
	assert.NotContains(t, out, "\x1b[")
}

func TestCatalogMarkdown(t *testing.T) {
	md := CatalogMarkdown("Operations", []domain.Tool{
		{Name: "toUpperCase", Description: "Upper."},
		{Name: "trimText", Description: "Trim."},
	})

	assert.True(t, strings.HasPrefix(md, "# Operations\n"))
	assert.Contains(t, md, "- **toUpperCase**: Upper.\n")
	assert.Contains(t, md, "- **trimText**: Trim.\n")
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer("notty", 80)
	require.NoError(t, err)

	out, err := render(CatalogMarkdown("Operations", []domain.Tool{{Name: "wordCount", Description: "Count words."}}))
	require.NoError(t, err)
	assert.Contains(t, out, "wordCount")
	assert.Contains(t, out, "Count words.")
}
