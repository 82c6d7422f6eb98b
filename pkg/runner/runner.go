package runner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/textops/pkg/domain"
)

// ErrCodeMalformedCall marks results for input lines that are not a valid tool call.
const ErrCodeMalformedCall = "RUNNER_1902"

// Executor runs a single tool call.
type Executor interface {
	Execute(ctx context.Context, call domain.ToolCall) (domain.ToolResult, error)
}

// Runner reads tool calls as JSON Lines and writes one result per call.
type Runner struct {
	exec        Executor
	interceptor ToolInterceptor
	logger      *slog.Logger
	maxLineSize int
}

// New creates a Runner that executes calls through exec.
func New(exec Executor, opts ...Option) *Runner {
	r := &Runner{
		exec:        exec,
		interceptor: AutoApproveMiddleware(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type line struct {
	data []byte
	err  error
}

// Run processes in until EOF or until ctx is cancelled.
// A clean EOF returns nil. Cancellation returns ctx.Err().
//
// After cancellation the goroutine reading in stays blocked until the pending
// read returns. Callers must close in to release it.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan line)
	done := make(chan struct{})
	defer close(done)

	go r.scan(in, lines, done)

	enc := json.NewEncoder(out)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			if l.err != nil {
				return fmt.Errorf("read input: %w", l.err)
			}
			result, err := r.handle(ctx, l.data)
			if err != nil {
				return err
			}
			if err := enc.Encode(result); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
		}
	}
}

// scan owns the reader. It stops early once done is closed.
func (r *Runner) scan(in io.Reader, lines chan<- line, done <-chan struct{}) {
	defer close(lines)

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, min(64*1024, r.maxLineSize)), r.maxLineSize)
	for sc.Scan() {
		data := bytes.TrimSpace(sc.Bytes())
		if len(data) == 0 {
			continue
		}
		select {
		case lines <- line{data: bytes.Clone(data)}:
		case <-done:
			return
		}
	}
	if err := sc.Err(); err != nil {
		select {
		case lines <- line{err: err}:
		case <-done:
		}
	}
}

func (r *Runner) handle(ctx context.Context, data []byte) (domain.ToolResult, error) {
	var call domain.ToolCall
	if err := json.Unmarshal(data, &call); err != nil {
		r.logger.Warn("malformed tool call", "err", err)
		return domain.ToolResult{
			IsError: true,
			Error:   "line is not a valid tool call",
			Code:    ErrCodeMalformedCall,
		}, nil
	}

	allowed, denial, err := r.interceptor(ctx, call)
	if err != nil {
		return domain.ToolResult{}, fmt.Errorf("interceptor: %w", err)
	}
	if !allowed {
		r.logger.Info("tool call denied", "tool", call.Name, "id", call.ID)
		return denial, nil
	}

	result, err := r.exec.Execute(ctx, call)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.ToolResult{}, err
		}
		r.logger.Error("tool call failed", "tool", call.Name, "err", err)
		return domain.ToolResult{
			ID:      call.ID,
			IsError: true,
			Error:   domain.UserMessage(err),
			Code:    domain.ErrorCode(err),
		}, nil
	}
	return result, nil
}
