package buffer

import "github.com/google/uuid"

// RevisionID uniquely identifies a buffer revision.
// Each modification to the buffer creates a new revision.
type RevisionID string

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(uuid.New().String())
}

// IsZero returns true if the revision ID is unset.
func (r RevisionID) IsZero() bool {
	return r == ""
}
