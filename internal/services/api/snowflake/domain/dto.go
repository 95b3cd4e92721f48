// Package domain holds DTOs for snowflake http and service contracts
package domain

import "time"

// DecodeInput lists the snowflakes to decode
type DecodeInput struct {
	Snowflakes []string `json:"snowflakes" validate:"max=50,dive,snowflake" example:"175928847299117063"`
}

// Entry is one decoded snowflake
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Since     string    `json:"since"`
	Line      string    `json:"line"`
}

// Reply is every decoded snowflake plus pre-paginated markdown
type Reply struct {
	Heading string   `json:"heading"`
	IconURL string   `json:"icon_url"`
	Entries []Entry  `json:"entries"`
	Pages   []string `json:"pages"`
}
