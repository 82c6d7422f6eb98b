package runner

import (
	"context"
	"fmt"
	"slices"

	"github.com/aretw0/textops/pkg/domain"
)

// ErrCodeCallDenied marks results produced by an interceptor that blocked a call.
const ErrCodeCallDenied = "RUNNER_1901"

// ToolInterceptor is a middleware that can intercept or block a tool call.
// It returns true if execution should proceed, or false to block it.
// If blocked, it should return a ToolResult describing the denial.
type ToolInterceptor func(ctx context.Context, call domain.ToolCall) (bool, domain.ToolResult, error)

// MultiInterceptor chains multiple interceptors. The first denial wins.
func MultiInterceptor(interceptors ...ToolInterceptor) ToolInterceptor {
	return func(ctx context.Context, call domain.ToolCall) (bool, domain.ToolResult, error) {
		for _, interceptor := range interceptors {
			allowed, result, err := interceptor(ctx, call)
			if err != nil {
				return false, domain.ToolResult{}, err
			}
			if !allowed {
				return false, result, nil
			}
		}
		return true, domain.ToolResult{}, nil
	}
}

// AllowList permits only the named operations.
func AllowList(names ...string) ToolInterceptor {
	allowed := slices.Clone(names)
	return func(_ context.Context, call domain.ToolCall) (bool, domain.ToolResult, error) {
		if slices.Contains(allowed, call.Name) {
			return true, domain.ToolResult{}, nil
		}
		return false, denied(call, fmt.Sprintf("operation %q is not allowed", call.Name)), nil
	}
}

// AutoApproveMiddleware allows everything.
func AutoApproveMiddleware() ToolInterceptor {
	return func(context.Context, domain.ToolCall) (bool, domain.ToolResult, error) {
		return true, domain.ToolResult{}, nil
	}
}

func denied(call domain.ToolCall, msg string) domain.ToolResult {
	return domain.ToolResult{
		ID:      call.ID,
		IsError: true,
		Error:   msg,
		Code:    ErrCodeCallDenied,
	}
}
