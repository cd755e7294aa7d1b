package health

import "context"

// StorePinger checks document store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// EmbeddingChecker checks embedding provider availability.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}

// InferenceChecker checks the inference backend.
type InferenceChecker interface {
	HealthCheck(ctx context.Context) error
}
