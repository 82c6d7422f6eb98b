package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/textops"
	"github.com/aretw0/textops/pkg/domain"
	"github.com/aretw0/textops/pkg/operations"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// OperationsURI is the resource listing the operation catalog.
const OperationsURI = "textops://operations"

// Plugin is the part of textops.Plugin the MCP server needs.
type Plugin interface {
	Call(ctx context.Context, name string, args map[string]any) (string, error)
	Tools() []domain.Tool
}

// Server exposes a Plugin as an MCP server: one tool per operation.
type Server struct {
	plugin    Plugin
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used for transport events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(plugin Plugin, opts ...Option) *Server {
	s := &Server{
		plugin:    plugin,
		mcpServer: server.NewMCPServer(textops.DefaultName, textops.Version),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout. Nothing else may write to Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on port until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("MCP server shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	for _, tool := range s.plugin.Tools() {
		s.mcpServer.AddTool(mcp.NewTool(tool.Name,
			mcp.WithDescription(tool.Description),
			mcp.WithString(operations.KeyInput, mcp.Description("Text to operate on. Defaults to the empty string.")),
		), s.toolHandler(tool.Name))
	}
}

func (s *Server) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := s.plugin.Call(ctx, name, request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(domain.UserMessage(err)), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(OperationsURI, "Operation catalog",
		mcp.WithResourceDescription("Every operation with its description and parameters"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.Marshal(s.plugin.Tools())
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      OperationsURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}
