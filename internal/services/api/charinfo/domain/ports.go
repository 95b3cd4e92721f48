package domain

import "context"

// ServicePort defines the service contract for charinfo
type ServicePort interface {
	Describe(ctx context.Context, in DescribeInput) (Reply, error)
}
