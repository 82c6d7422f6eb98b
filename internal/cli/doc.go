// Package cli holds the logic behind the textops commands: building the
// runtime from configuration, serving HTTP and applying hot reloads.
package cli
