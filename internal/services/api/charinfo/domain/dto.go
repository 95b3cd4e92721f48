// Package domain holds DTOs for charinfo http and service contracts
package domain

import "github.com/FFlyyy/bot/internal/core/charinfo"

// DescribeInput carries up to 50 characters to describe
type DescribeInput struct {
	Characters string `json:"characters" validate:"required" example:"aé😀"`
}

// Reply is the description plus pre-paginated markdown
type Reply struct {
	Chars   []charinfo.Char `json:"chars"`
	RawText string          `json:"raw_text,omitempty"`
	Pages   []string        `json:"pages"`
}
