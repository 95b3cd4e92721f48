package module

import (
	"context"

	auditdom "github.com/FFlyyy/bot/internal/services/api/audit/domain"
)

// Runner is the background flush loop
type Runner interface {
	Run(ctx context.Context) error
}

// Ports holds the ports exposed by the audit module
type Ports struct {
	Recorder auditdom.Recorder
	Usage    auditdom.ServicePort
	Flusher  Runner
}
