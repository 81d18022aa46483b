// Package middleware provides composable HTTP middleware and a chain builder.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System accumulates middleware and applies them to a handler in
// registration order.
type System interface {
	Use(mw Middleware)
	Apply(handler http.Handler) http.Handler
}

type chain struct {
	middleware []Middleware
}

// New creates an empty middleware chain.
func New() System {
	return &chain{middleware: []Middleware{}}
}

func (c *chain) Use(mw Middleware) {
	c.middleware = append(c.middleware, mw)
}

// Apply wraps handler with the registered middleware. The first registered
// middleware becomes the outermost wrapper.
func (c *chain) Apply(handler http.Handler) http.Handler {
	for i := len(c.middleware) - 1; i >= 0; i-- {
		handler = c.middleware[i](handler)
	}
	return handler
}
