package textops

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/aretw0/textops/pkg/domain"
	"github.com/aretw0/textops/pkg/operations"
	"github.com/aretw0/textops/pkg/ports"
	"github.com/aretw0/textops/pkg/registry"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// DefaultName is the plugin name reported to hosts.
const DefaultName = "textops"

// Plugin is the high-level entry point of the library.
// It binds the operation table to a registry and adds caching and lifecycle hooks.
// Safe for concurrent use.
type Plugin struct {
	Name string

	ops      atomic.Pointer[operations.TextOperations]
	lang     language.Tag
	registry *registry.Registry
	cache    ports.ResultCache
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Plugin.
type Option func(*Plugin)

// WithLanguage sets the language used by the case operations.
func WithLanguage(tag language.Tag) Option {
	return func(p *Plugin) {
		p.lang = tag
	}
}

// WithCache memoizes results in c.
func WithCache(c ports.ResultCache) Option {
	return func(p *Plugin) {
		p.cache = c
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Plugin) {
		p.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the plugin.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Plugin) {
		p.logger = logger
	}
}

// WithName overrides DefaultName.
func WithName(name string) Option {
	return func(p *Plugin) {
		p.Name = name
	}
}

// New creates a plugin with every operation registered.
func New(opts ...Option) *Plugin {
	p := &Plugin{
		Name:     DefaultName,
		lang:     language.Und,
		registry: registry.NewRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.ops.Store(operations.New(operations.WithLanguage(p.lang)))

	for _, tool := range operations.Tools() {
		name := tool.Name
		// Names come from the operation table, so registration cannot fail.
		_ = p.registry.RegisterTool(tool, func(ctx context.Context, args map[string]any) (any, error) {
			ops, _ := ctx.Value(opsKey{}).(*operations.TextOperations)
			if ops == nil {
				ops = p.ops.Load()
			}
			fn, ok := ops.Func(name)
			if !ok {
				return nil, domain.NewOperationNotFoundError(name)
			}
			return fn(operations.ContextFromArgs(args)), nil
		})
	}
	return p
}

// Call runs the operation registered under name against args.
// The only possible error is an unknown operation (code TEXTOPS_1001).
func (p *Plugin) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	return p.call(ctx, "", name, args)
}

// Execute runs a host tool call. Unknown operations are reported in the result,
// not as an error; the error is reserved for a cancelled ctx.
func (p *Plugin) Execute(ctx context.Context, call domain.ToolCall) (domain.ToolResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ToolResult{}, err
	}

	id := call.ID
	if id == "" {
		id = uuid.NewString()
	}

	out, err := p.call(ctx, id, call.Name, call.Args)
	if err != nil {
		return domain.ToolResult{
			ID:      id,
			IsError: true,
			Error:   domain.UserMessage(err),
			Code:    domain.ErrorCode(err),
		}, nil
	}
	return domain.ToolResult{ID: id, Result: out}, nil
}

func (p *Plugin) call(ctx context.Context, id, name string, args map[string]any) (string, error) {
	if !p.registry.Has(name) {
		p.logger.WarnContext(ctx, "unknown operation", "operation", name, "call_id", id)
		return "", domain.NewOperationNotFoundError(name)
	}

	ops := p.ops.Load()
	input := operations.ContextFromArgs(args).Input()
	start := time.Now()

	if p.hooks.OnToolCall != nil {
		p.hooks.OnToolCall(ctx, &domain.ToolEvent{
			EventBase: domain.EventBase{Timestamp: start, Type: domain.EventToolCall},
			CallID:    id,
			ToolName:  name,
			Input:     input,
		})
	}

	key := cacheKey(name, ops.Language(), input)
	out, cached := p.lookup(ctx, key)

	var err error
	if !cached {
		var res any
		// Pin the operation set so the result matches the language in key.
		res, err = p.registry.Execute(context.WithValue(ctx, opsKey{}, ops), name, args)
		if err == nil {
			out = fmt.Sprint(res)
			p.store(ctx, key, out)
		}
	}

	if p.hooks.OnToolReturn != nil {
		evt := &domain.ToolEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventToolReturn},
			CallID:    id,
			ToolName:  name,
			Input:     input,
			Output:    out,
			Cached:    cached,
			Duration:  time.Since(start),
		}
		if err != nil {
			evt.IsError = true
			evt.Output = err.Error()
		}
		p.hooks.OnToolReturn(ctx, evt)
	}

	return out, err
}

func (p *Plugin) lookup(ctx context.Context, key string) (string, bool) {
	if p.cache == nil {
		return "", false
	}
	out, found, err := p.cache.Get(ctx, key)
	if err != nil {
		p.logger.WarnContext(ctx, "result cache read failed", "key", key, "err", err)
		return "", false
	}
	return out, found
}

func (p *Plugin) store(ctx context.Context, key, out string) {
	if p.cache == nil {
		return
	}
	if err := p.cache.Set(ctx, key, out); err != nil {
		p.logger.WarnContext(ctx, "result cache write failed", "key", key, "err", err)
	}
}

type opsKey struct{}

// cacheKey identifies a result by operation, case mapping language and input digest.
func cacheKey(name string, lang language.Tag, input string) string {
	sum := sha256.Sum256([]byte(input))
	return name + ":" + lang.String() + ":" + hex.EncodeToString(sum[:])
}

// Functions returns the name-to-function registration table.
func (p *Plugin) Functions() map[string]operations.Func {
	return p.ops.Load().Functions()
}

// Tools returns the metadata of every operation, sorted by name.
func (p *Plugin) Tools() []domain.Tool {
	return p.registry.Tools()
}

// Has reports whether name is a registered operation.
func (p *Plugin) Has(name string) bool {
	return p.registry.Has(name)
}

// SetLanguage swaps the case mapping language. In-flight calls finish with the previous one.
func (p *Plugin) SetLanguage(tag language.Tag) {
	p.ops.Store(operations.New(operations.WithLanguage(tag)))
}

// Language returns the current case mapping language.
func (p *Plugin) Language() language.Tag {
	return p.ops.Load().Language()
}
