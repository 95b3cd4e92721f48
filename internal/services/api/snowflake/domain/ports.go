package domain

import "context"

// ServicePort defines the service contract for snowflake
type ServicePort interface {
	Decode(ctx context.Context, in DecodeInput) (Reply, error)
}
