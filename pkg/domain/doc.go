/*
Package domain contains the shared types exchanged between the text operations
plugin and its hosts.

It is kept free of I/O and persistence so that every adapter (HTTP, MCP,
process tools) speaks the same vocabulary.

# Key Entities

  - ToolCall: A host request to run a named operation with keyed arguments.
  - ToolResult: The outcome of a ToolCall, correlated by ID.
  - Tool: Metadata describing an operation (name, description, parameter schema).
  - LifecycleHooks: Callbacks fired around every operation call.
*/
package domain
