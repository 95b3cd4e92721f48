// Package module defines the module surface and how ports are pulled out of it
package module

import (
	phttp "github.com/FFlyyy/bot/internal/platform/net/http"
)

// Module mounts routes and exposes a port set for cross wiring
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
