/*
Package observability provides tools for monitoring the text operations plugin.

It includes Prometheus metrics and structured logging, both delivered as
domain.LifecycleHooks so they can be attached to any plugin instance and
combined with ChainHooks.
*/
package observability
