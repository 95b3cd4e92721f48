// Package domain holds DTOs for poll http and service contracts
package domain

import "github.com/FFlyyy/bot/internal/core/poll"

// CreateInput is a poll title and its options in display order
type CreateInput struct {
	Title   string   `json:"title" validate:"required" example:"Lunch?"`
	Options []string `json:"options" validate:"dive,required,max=100" example:"pizza,tacos"`
}

// Poll is a built poll with its id
type Poll struct {
	ID          string        `json:"id" example:"4f3c2a9e-8d1b-4b1e-9c55-0a7e2f6d9b10"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Options     []poll.Option `json:"options"`
}
