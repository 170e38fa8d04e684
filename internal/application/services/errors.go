// Package services implements the application layer: stateless services
// that coordinate sessions, the draft store, rendering, and publishing.
package services

import "errors"

// Sentinel errors the HTTP layer maps onto status codes.
var (
	ErrSessionNotFound  = errors.New("editing session not found")
	ErrBlockNotFound    = errors.New("block not found")
	ErrUnknownBlockType = errors.New("unknown block type")
	ErrMissingTitle     = errors.New("post title is required")
	ErrMissingSlug      = errors.New("post slug is required")
	ErrMissingAuthor    = errors.New("author name is required")
	ErrInvalidLogin     = errors.New("invalid credentials")
)
