package app

import "context"

// The App travels through cobra's command context: the root command builds it
// once in PersistentPreRunE and every subcommand pulls it back out.

type ctxKey struct{}

// NewContext returns a child context carrying the App.
func NewContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// FromContext returns the App carried by ctx, nil when none is attached.
func FromContext(ctx context.Context) *App {
	a, _ := ctx.Value(ctxKey{}).(*App)
	return a
}
