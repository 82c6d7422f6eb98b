package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/textops/pkg/domain"
)

// LoggingHooks logs every call at debug level and failed calls at warn level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnToolCall: func(ctx context.Context, e *domain.ToolEvent) {
			logger.DebugContext(ctx, "tool_call",
				"call_id", e.CallID,
				"tool_name", e.ToolName,
			)
		},
		OnToolReturn: func(ctx context.Context, e *domain.ToolEvent) {
			if e.IsError {
				logger.WarnContext(ctx, "tool_return",
					"call_id", e.CallID,
					"tool_name", e.ToolName,
					"error", e.Output,
				)
				return
			}
			logger.DebugContext(ctx, "tool_return",
				"call_id", e.CallID,
				"tool_name", e.ToolName,
				"cached", e.Cached,
				"duration", e.Duration,
			)
		},
	}
}

// ChainHooks fans every event out to each hook set, in order.
func ChainHooks(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnToolCall: func(ctx context.Context, e *domain.ToolEvent) {
			for _, h := range hooks {
				if h.OnToolCall != nil {
					h.OnToolCall(ctx, e)
				}
			}
		},
		OnToolReturn: func(ctx context.Context, e *domain.ToolEvent) {
			for _, h := range hooks {
				if h.OnToolReturn != nil {
					h.OnToolReturn(ctx, e)
				}
			}
		},
	}
}
