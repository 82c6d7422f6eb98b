package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/textops"
	"github.com/aretw0/textops/pkg/domain"
	"github.com/aretw0/textops/pkg/runner"
)

func decodeResults(t *testing.T, out string) []domain.ToolResult {
	t.Helper()
	var results []domain.ToolResult
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var res domain.ToolResult
		require.NoError(t, dec.Decode(&res))
		results = append(results, res)
	}
	return results
}

func TestRunner_Run(t *testing.T) {
	plugin := textops.New()

	in := strings.Join([]string{
		`{"id":"1","name":"toUpperCase","args":{"input":"hello"}}`,
		``,
		`{"id":"2","name":"wordCount","args":{"input":"a b  c"}}`,
		`not json`,
		`{"id":"3","name":"shout","args":{"input":"x"}}`,
		`{"id":"4","name":"trimText"}`,
	}, "\n")

	var out bytes.Buffer
	r := runner.New(plugin)
	require.NoError(t, r.Run(context.Background(), strings.NewReader(in), &out))

	results := decodeResults(t, out.String())
	require.Len(t, results, 5)

	assert.Equal(t, domain.ToolResult{ID: "1", Result: "HELLO"}, results[0])
	assert.Equal(t, domain.ToolResult{ID: "2", Result: "Word count: 3"}, results[1])

	assert.True(t, results[2].IsError)
	assert.Equal(t, runner.ErrCodeMalformedCall, results[2].Code)

	assert.True(t, results[3].IsError)
	assert.Equal(t, "3", results[3].ID)
	assert.Equal(t, domain.ErrCodeOperationNotFound, results[3].Code)

	// An empty result is sent explicitly as "result":"".
	assert.Equal(t, "4", results[4].ID)
	assert.False(t, results[4].IsError)
	assert.Equal(t, "", results[4].Result)
}

func TestRunner_AllowList(t *testing.T) {
	plugin := textops.New()

	in := `{"id":"a","name":"toLowerCase","args":{"input":"ABC"}}
{"id":"b","name":"reverseText","args":{"input":"abc"}}
`
	var out bytes.Buffer
	r := runner.New(plugin, runner.WithInterceptor(runner.AllowList("toLowerCase")))
	require.NoError(t, r.Run(context.Background(), strings.NewReader(in), &out))

	results := decodeResults(t, out.String())
	require.Len(t, results, 2)
	assert.Equal(t, "abc", results[0].Result)
	assert.True(t, results[1].IsError)
	assert.Equal(t, "b", results[1].ID)
	assert.Equal(t, runner.ErrCodeCallDenied, results[1].Code)
}

func TestMultiInterceptor(t *testing.T) {
	boom := errors.New("policy backend down")

	tests := []struct {
		name        string
		chain       runner.ToolInterceptor
		wantAllowed bool
		wantErr     error
	}{
		{
			name:        "all approve",
			chain:       runner.MultiInterceptor(runner.AutoApproveMiddleware(), runner.AllowList("trimText")),
			wantAllowed: true,
		},
		{
			name:        "first denial wins",
			chain:       runner.MultiInterceptor(runner.AllowList("toUpperCase"), runner.AutoApproveMiddleware()),
			wantAllowed: false,
		},
		{
			name: "error stops the chain",
			chain: runner.MultiInterceptor(func(context.Context, domain.ToolCall) (bool, domain.ToolResult, error) {
				return false, domain.ToolResult{}, boom
			}),
			wantErr: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, _, err := tt.chain(context.Background(), domain.ToolCall{ID: "x", Name: "trimText"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, allowed)
		})
	}
}

func TestRunner_InterceptorError(t *testing.T) {
	plugin := textops.New()

	boom := errors.New("policy backend down")
	r := runner.New(plugin, runner.WithInterceptor(func(context.Context, domain.ToolCall) (bool, domain.ToolResult, error) {
		return false, domain.ToolResult{}, boom
	}))

	err := r.Run(context.Background(), strings.NewReader(`{"id":"1","name":"trimText"}`), io.Discard)
	assert.ErrorIs(t, err, boom)
}

type failingExecutor struct{ err error }

func (f failingExecutor) Execute(context.Context, domain.ToolCall) (domain.ToolResult, error) {
	return domain.ToolResult{}, f.err
}

func TestRunner_ExecutorError(t *testing.T) {
	var out bytes.Buffer
	r := runner.New(failingExecutor{err: domain.NewOperationNotFoundError("x")})
	require.NoError(t, r.Run(context.Background(), strings.NewReader(`{"id":"1","name":"x"}`), &out))

	results := decodeResults(t, out.String())
	require.Len(t, results, 1)
	assert.True(t, results[0].IsError)
	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, domain.ErrCodeOperationNotFound, results[0].Code)

	r = runner.New(failingExecutor{err: context.Canceled})
	err := r.Run(context.Background(), strings.NewReader(`{"id":"1","name":"x"}`), io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_LineTooLong(t *testing.T) {
	plugin := textops.New()

	line := `{"id":"1","name":"trimText","args":{"input":"` + strings.Repeat("x", 256) + `"}}`
	r := runner.New(plugin, runner.WithMaxLineSize(64))
	err := r.Run(context.Background(), strings.NewReader(line), io.Discard)
	assert.Error(t, err)
}

func TestRunner_MaxLineSize(t *testing.T) {
	plugin := textops.New()

	long := `{"id":"big","name":"characterCount","args":{"input":"` + strings.Repeat("x", 4096) + `"}}`
	short := `{"id":"small","name":"characterCount","args":{"input":"abc"}}`

	t.Run("Oversized Line Stops The Loop", func(t *testing.T) {
		var out bytes.Buffer
		r := runner.New(plugin, runner.WithMaxLineSize(1024))
		err := r.Run(context.Background(), strings.NewReader(long+"\n"), &out)
		require.Error(t, err)
		assert.Empty(t, out.String(), "the oversized call must not run")
	})

	t.Run("Lines Within The Limit Run", func(t *testing.T) {
		var out bytes.Buffer
		r := runner.New(plugin, runner.WithMaxLineSize(1024))
		require.NoError(t, r.Run(context.Background(), strings.NewReader(short+"\n"), &out))

		results := decodeResults(t, out.String())
		require.Len(t, results, 1)
		assert.Equal(t, "Character count: 3", results[0].Result)
	})
}

func TestRunner_Cancel(t *testing.T) {
	plugin := textops.New()

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- runner.New(plugin).Run(ctx, pr, io.Discard)
	}()

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop after cancel")
	}
}
