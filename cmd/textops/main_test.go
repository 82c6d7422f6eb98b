package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/textops"
	"github.com/aretw0/textops/pkg/adapters/process"
	"github.com/aretw0/textops/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))

	err := rootCmd.Execute()
	return stdout.String(), err
}

// resetFlags restores every flag to its default, so one test cannot leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "textops version "+textops.Version+"\n", out)
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"Args", "", []string{"run", "toUpperCase", "hello", "world"}, "HELLO WORLD\n"},
		{"Count", "", []string{"run", "characterCount", "hello"}, "Character count: 5\n"},
		{"Stdin", "one two three\n", []string{"run", "wordCount", "-"}, "Word count: 3\n"},
		{"Flag", "", []string{"run", "trimText", "--input", "  padded  "}, "padded\n"},
		{"No Text", "", []string{"run", "reverseText"}, "\n"},
		{"Locale", "", []string{"--locale", "tr", "run", "toUpperCase", "i"}, "İ\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunCommand_UnknownOperation(t *testing.T) {
	_, err := execute(t, "", "run", "shout", "x")
	require.Error(t, err)
	assert.Equal(t, domain.ErrCodeOperationNotFound, domain.ErrorCode(err))
}

func TestRunCommand_InvalidLocale(t *testing.T) {
	_, err := execute(t, "", "--locale", "not a tag!", "run", "toUpperCase", "x")
	require.Error(t, err)
	assert.Equal(t, domain.ErrCodeConfigValidationError, domain.ErrorCode(err))
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "", "list", "--json")
	require.NoError(t, err)

	var tools []domain.Tool
	require.NoError(t, json.Unmarshal([]byte(out), &tools))
	assert.Len(t, tools, 6)

	out, err = execute(t, "", "list")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)
}

func TestExecCommand(t *testing.T) {
	t.Setenv(process.ArgPrefix+"INPUT", "  keep spaces ")

	out, err := execute(t, "", "exec", "toUpperCase")
	require.NoError(t, err)
	assert.Equal(t, "  KEEP SPACES ", out)
}

func TestManifestCommand(t *testing.T) {
	out, err := execute(t, "", "manifest", "--command", "/opt/textops")
	require.NoError(t, err)

	var cfg process.ConfigFile
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	require.Len(t, cfg.Tools, 6)
	for _, tool := range cfg.Tools {
		assert.Equal(t, "/opt/textops", tool.Command)
		assert.Equal(t, []string{"exec", tool.Name}, tool.Args)
	}

	out, err = execute(t, "", "manifest", "--format", "json", "--command", "textops")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "textops", cfg.Tools[0].Command)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textops.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: tr\n"), 0644))

	// The explicit --config comes after the helper's default and wins.
	out, err := execute(t, "", "--config", path, "run", "toLowerCase", "I")
	require.NoError(t, err)
	assert.Equal(t, "ı\n", out)
}

func TestStreamCommand(t *testing.T) {
	stdin := `{"id":"1","name":"reverseText","args":{"input":"abc"}}
{"id":"2","name":"toUpperCase","args":{"input":"abc"}}
`
	out, err := execute(t, stdin, "stream", "--allow", "reverseText")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first, second domain.ToolResult
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "cba", first.Result)
	assert.True(t, second.IsError)
	assert.Equal(t, "2", second.ID)
}
