package domain

// ToolCall represents a request from a Host to run one of the plugin's operations.
// Ideally compatible with OpenAI/MCP tool call schemas.
type ToolCall struct {
	ID       string            `json:"id" yaml:"id" mapstructure:"id"`                                       // Unique ID for this specific call (generated when empty)
	Name     string            `json:"name" yaml:"name" mapstructure:"name"`                                 // Operation name to call
	Args     map[string]any    `json:"args,omitempty" yaml:"args,omitempty" mapstructure:"args"`             // Keyed context for the operation
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty" mapstructure:"metadata"` // Opaque host metadata, echoed nowhere
}

// ToolResult represents the output of an operation returned to the Host.
type ToolResult struct {
	ID      string `json:"id"` // Must match the ToolCall.ID
	Result  any    `json:"result,omitempty"`
	IsError bool   `json:"is_error,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Tool defines metadata about an operation available to hosts.
// This is used for generating schemas/prompts and tool manifests.
type Tool struct {
	Name        string         `json:"name" yaml:"name" mapstructure:"name"`
	Description string         `json:"description" yaml:"description" mapstructure:"description"`
	Parameters  map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty" mapstructure:"parameters"`
}
