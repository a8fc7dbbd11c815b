// Package requestid carries the per-request correlation ID through a
// context.Context so code below the HTTP layer can log and persist it.
package requestid

import "context"

// Header is the HTTP header that carries the ID in and out of the server.
const Header = "X-Request-Id"

type ctxKey struct{}

// With returns a copy of ctx carrying id. An empty id leaves ctx unchanged.
func With(ctx context.Context, id string) context.Context {
	if ctx == nil || id == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, id)
}

// From returns the ID carried by ctx, or "" when there is none.
func From(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
