// Package domain holds DTOs for zen http and service contracts
package domain

// SelectInput selects the whole text, one line by index, or the best matching line
type SelectInput struct {
	Search string `json:"search,omitempty" validate:"omitempty,max=200" example:"beautiful"`
}

// Reply is a rendered zen selection
type Reply struct {
	Title string `json:"title" example:"The Zen of Python (line 0):"`
	Text  string `json:"text" example:"Beautiful is better than ugly."`
	// Index is nil when the whole text was returned
	Index *int `json:"index,omitempty" example:"0"`
}

// SearchInput asks for ranked candidates, used for autocomplete
type SearchInput struct {
	Query string `json:"q" validate:"max=100" example:"namesp"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,min=1,max=25" example:"10"`
}

// Candidate is one ranked line
type Candidate struct {
	Index int    `json:"index"`
	Line  string `json:"line"`
	Score int    `json:"score"`
}
