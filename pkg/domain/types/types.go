package types

import (
	"strings"

	"github.com/google/uuid"
)

// GroupID represents a directory group object identifier
type GroupID string

// String returns the string representation
func (id GroupID) String() string {
	return string(id)
}

// GroupName represents a directory group display name
type GroupName string

// String returns the string representation
func (n GroupName) String() string {
	return string(n)
}

// EmailAddress represents an invitee email address
type EmailAddress string

// String returns the string representation
func (e EmailAddress) String() string {
	return string(e)
}

// Normalized returns the address lowered for case-insensitive comparison
func (e EmailAddress) Normalized() string {
	return strings.ToLower(string(e))
}

// RunID represents a single sync run identifier
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID
func NewRunID() RunID {
	return RunID(uuid.New().String())
}
