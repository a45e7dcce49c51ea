package model

// Status is the lifecycle state of a record. Archived records are excluded
// from listings, stock checks and reports but stay referenced by historical
// rows, so they are never physically deleted.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)
