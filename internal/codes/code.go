// Package codes defines the consultation code model shared by the API client,
// the submission form and the CLI: statuses and their presentation, request
// and response payloads, single-code normalisation and bulk text parsing.
package codes

import (
	"encoding/json"
	"time"
)

// Code is a consultation code as reported by the codes service.
// The client never changes Status locally.
type Code struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name,omitempty"`
	UserID    string    `json:"userId"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// CodeInput is one (code, optional name) pair of an add request.
type CodeInput struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// AddResult reports how many codes were accepted and which were rejected.
// Partial success is normal: both fields may be non-zero in one response.
type AddResult struct {
	Added   int      `json:"added"`
	Invalid []string `json:"invalid"`
}

// ListParams is the query descriptor for listing codes. Zero values are
// left out of the request so the service applies its own defaults.
type ListParams struct {
	Page   int    `validate:"gte=0"`
	Limit  int    `validate:"gte=0,lte=100"`
	Status Filter `validate:"omitempty,oneof=all pending confirmed cancelled rejected denied expired not_found error"`
}

// ListPage is one page of codes as returned by the service.
type ListPage struct {
	Codes   []Code `json:"codes"`
	Total   int    `json:"total"`
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	HasMore bool   `json:"hasMore"`
}

// DeleteResult acknowledges a deletion.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UpdateNowResult acknowledges a refresh request. Refreshed statuses are
// only visible through a later list call.
type UpdateNowResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CodeDetails carries the full consultation record for one code. The
// consultation schema belongs to the service, so it is kept raw.
type CodeDetails struct {
	Code         Code            `json:"code"`
	Consultation json.RawMessage `json:"consultation,omitempty"`
}
