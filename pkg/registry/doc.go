// Package registry maps tool names to their implementations and metadata.
package registry
