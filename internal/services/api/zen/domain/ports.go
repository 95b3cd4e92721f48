package domain

import "context"

// ServicePort defines the service contract for zen
type ServicePort interface {
	Select(ctx context.Context, in SelectInput) (Reply, error)
	Search(ctx context.Context, in SearchInput) ([]Candidate, error)
}
