// Package http exposes a textops plugin as a small JSON API routed with chi.
// The routes are documented by the embedded openapi.yaml, served at /openapi.yaml.
package http
