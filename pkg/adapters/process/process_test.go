package process_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/textops"
	"github.com/aretw0/textops/pkg/adapters/process"
	"github.com/aretw0/textops/pkg/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsFromEnv(t *testing.T) {
	environ := []string{
		"PATH=/usr/bin",
		"TRELLIS_ARG_INPUT=  hello = world  ",
		"TRELLIS_ARG_Mode=fast",
		"TRELLIS_ARG_=ignored",
		"TRELLIS_ARG_BROKEN",
		"HOME=/root",
	}

	got := process.ArgsFromEnv(environ)
	want := map[string]any{
		"input": "  hello = world  ",
		"mode":  "fast",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ArgsFromEnv() mismatch (-want +got):\n%s", diff)
	}
}

func TestServe(t *testing.T) {
	plugin := textops.New()
	ctx := context.Background()

	tests := []struct {
		op      string
		environ []string
		want    string
	}{
		{"toUpperCase", []string{"TRELLIS_ARG_INPUT=hello"}, "HELLO"},
		{"wordCount", []string{"TRELLIS_ARG_INPUT=a b  c"}, "Word count: 3"},
		{"characterCount", nil, "Character count: 0"},
		{"reverseText", []string{"TRELLIS_ARG_INPUT=abc"}, "cba"},
		// Whitespace survives untouched; trimming is the host's business.
		{"toLowerCase", []string{"TRELLIS_ARG_INPUT= ABC "}, " abc "},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			var stdout bytes.Buffer
			require.NoError(t, process.Serve(ctx, plugin, tt.op, tt.environ, &stdout))
			assert.Equal(t, tt.want, stdout.String())
		})
	}

	t.Run("Unknown Operation", func(t *testing.T) {
		var stdout bytes.Buffer
		err := process.Serve(ctx, plugin, "nope", nil, &stdout)
		require.Error(t, err)
		assert.Equal(t, domain.ErrCodeOperationNotFound, domain.ErrorCode(err))
		assert.Zero(t, stdout.Len())
	})
}

func TestManifest(t *testing.T) {
	tools := []domain.Tool{
		{Name: "toUpperCase", Description: "Upper."},
		{Name: "trimText", Description: "Trim."},
	}

	got := process.Manifest(tools, "/usr/local/bin/textops")
	want := process.ConfigFile{Tools: []process.ProcessConfig{
		{Name: "toUpperCase", Command: "/usr/local/bin/textops", Args: []string{"exec", "toUpperCase"}, Description: "Upper."},
		{Name: "trimText", Command: "/usr/local/bin/textops", Args: []string{"exec", "trimText"}, Description: "Trim."},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Manifest() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteManifest_LoadTools(t *testing.T) {
	manifest := process.Manifest(textops.New().Tools(), "textops")

	for _, format := range []string{process.FormatYAML, process.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, process.WriteManifest(&buf, manifest, format))

			path := filepath.Join(t.TempDir(), "tools."+format)
			require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

			loaded, err := process.LoadTools(path)
			require.NoError(t, err)
			require.Len(t, loaded, len(manifest.Tools))

			for _, want := range manifest.Tools {
				if diff := cmp.Diff(want, loaded[want.Name]); diff != "" {
					t.Errorf("tool %s mismatch (-want +got):\n%s", want.Name, diff)
				}
			}
		})
	}
}

func TestWriteManifest_YAMLLayout(t *testing.T) {
	var buf bytes.Buffer
	cfg := process.Manifest([]domain.Tool{{Name: "trimText", Description: "Trim."}}, "textops")
	require.NoError(t, process.WriteManifest(&buf, cfg, "yaml"))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "tools:\n"))
	assert.Contains(t, out, "name: trimText")
	assert.Contains(t, out, "command: textops")
	assert.NotContains(t, out, "env:")
}

func TestWriteManifest_UnknownFormat(t *testing.T) {
	err := process.WriteManifest(&bytes.Buffer{}, process.ConfigFile{}, "toml")
	assert.ErrorContains(t, err, "toml")
}

func TestLoadTools(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		tools, err := process.LoadTools(filepath.Join(t.TempDir(), "tools.yaml"))
		require.NoError(t, err)
		assert.Empty(t, tools)
	})

	t.Run("Skips Unnamed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tools.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
tools:
  - name: upper
    command: textops
    args: [exec, toUpperCase]
  - command: orphan
`), 0644))

		tools, err := process.LoadTools(path)
		require.NoError(t, err)
		require.Len(t, tools, 1)
		assert.Equal(t, []string{"exec", "toUpperCase"}, tools["upper"].Args)
	})

	t.Run("Parse Error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tools.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"tools": [`), 0644))

		_, err := process.LoadTools(path)
		require.Error(t, err)
		assert.Equal(t, domain.ErrCodeConfigParseError, domain.ErrorCode(err))
	})
}
