package domain

import "context"

// ServicePort defines the service contract for poll
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Poll, error)
}
