package domain

import "context"

// Recorder accepts invocations; implementations must not block on storage
type Recorder interface {
	Record(ctx context.Context, inv Invocation)
}

// ServicePort defines the service contract for audit
type ServicePort interface {
	Recorder
	Usage(ctx context.Context, in UsageInput) ([]Usage, error)
}
