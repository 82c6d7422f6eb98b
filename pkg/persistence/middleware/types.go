package middleware

import "github.com/aretw0/textops/pkg/ports"

// Middleware allows wrapping a ResultCache to add behavior.
type Middleware func(ports.ResultCache) ports.ResultCache

// Chain applies mws so that the first one is the outermost.
func Chain(c ports.ResultCache, mws ...Middleware) ports.ResultCache {
	for i := len(mws) - 1; i >= 0; i-- {
		c = mws[i](c)
	}
	return c
}
