package services

import "context"

type authKey struct{}

// WithAuth returns a child context carrying svc.
func WithAuth(ctx context.Context, svc AuthService) context.Context {
	return context.WithValue(ctx, authKey{}, svc)
}

// FromContext returns the AuthService installed by WithAuth. Calling it
// outside such a scope is a programming error and panics.
func FromContext(ctx context.Context) AuthService {
	svc, ok := ctx.Value(authKey{}).(AuthService)
	if !ok || svc == nil {
		panic("services: FromContext called without an AuthService in scope")
	}
	return svc
}
