package session

import "context"

// Persisted keys. The backend owns all durable data; this key-value state
// is the only thing the client keeps between runs.
const (
	KeyToken      = "token"
	KeyUser       = "user"
	KeyOnboarding = "onboarding_complete"
)

// Repository is the key-value store behind the session. Get returns
// ("", nil) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
