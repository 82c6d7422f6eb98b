// Package mcp serves a textops plugin over the Model Context Protocol.
//
// Every operation becomes a tool taking an optional string argument "input";
// extra arguments are passed through as context keys. The catalog is also
// readable as the resource textops://operations.
package mcp
