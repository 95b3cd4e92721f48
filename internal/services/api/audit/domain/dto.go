// Package domain holds DTOs for command auditing
package domain

import "time"

// Surface is where a command was invoked from
type Surface string

// Known surfaces
const (
	SurfaceAPI     Surface = "api"
	SurfaceDiscord Surface = "discord"
	SurfaceCLI     Surface = "cli"
)

// Invocation is one handled command
type Invocation struct {
	At        time.Time
	Command   string
	Surface   Surface
	GuildID   string
	UserID    string
	OK        bool
	ErrorCode string
	Latency   time.Duration
}

// UsageInput filters the usage summary
type UsageInput struct {
	// Since is a lookback window such as 24h or 168h
	Since time.Duration `json:"since" swaggertype:"string" example:"24h"`
}

// Usage is the rollup for one command on one surface
type Usage struct {
	Command      string  `json:"command" example:"zen"`
	Surface      string  `json:"surface" example:"discord"`
	Count        uint64  `json:"count" example:"42"`
	Errors       uint64  `json:"errors" example:"3"`
	AvgLatencyMs float64 `json:"avg_latency_ms" example:"12.5"`
}
