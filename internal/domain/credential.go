package domain

import "github.com/google/uuid"

// Credential is the safe projection of a user's stored connection for an
// app. The encrypted payload stays in the database; only identifying fields
// are ever exposed.
type Credential struct {
	ID      uuid.UUID `json:"id"`
	Type    string    `json:"type"`
	AppSlug string    `json:"appSlug"`
}
