package domain

import "context"

// ServicePort defines the service contract for unfurl
type ServicePort interface {
	Unfurl(ctx context.Context, in UnfurlInput) (Result, error)
}
