package ports

import (
	"context"
	"net/url"
)

// APIClient is the single configured transport used by all domain services.
// Implementations attach the cached bearer token to every request (requests
// proceed unauthenticated when no token is stored), unwrap the backend's
// response envelope into out, and normalize failures into the application
// error taxonomy. out may be nil when the caller has no use for the body.
type APIClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}
