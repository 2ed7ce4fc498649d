package tools

import (
	"context"
	"net/http"
)

// Override carries per-session endpoint credentials supplied through request
// headers on the network front end. It lives in the request context, not in
// process-wide state, so concurrent sessions cannot observe each other.
type Override struct {
	Endpoint string
	Token    string
}

type ctxKey struct{}

// WithOverride returns a context carrying o.
func WithOverride(ctx context.Context, o Override) context.Context {
	return context.WithValue(ctx, ctxKey{}, o)
}

// OverrideFrom extracts a session override, if any.
func OverrideFrom(ctx context.Context) (Override, bool) {
	o, ok := ctx.Value(ctxKey{}).(Override)
	return o, ok
}

// SSEContextFunc lifts the x-api-url and x-token headers of an incoming
// session request into the context seen by tool handlers.
func SSEContextFunc(ctx context.Context, r *http.Request) context.Context {
	o := Override{
		Endpoint: r.Header.Get("x-api-url"),
		Token:    r.Header.Get("x-token"),
	}
	if o.Endpoint == "" && o.Token == "" {
		return ctx
	}
	return WithOverride(ctx, o)
}
