// Package middleware decorates a ports.ResultCache. NewEncryptionMiddleware
// keeps cached results opaque to whoever can read the backing store.
package middleware
