package auth

import "github.com/google/uuid"

// IsOwner reports whether the acting identity may mutate a resource bound to
// ownerID. Callers must confirm the resource exists before asking, so a
// missing resource surfaces as not-found rather than forbidden.
func IsOwner(actingID, ownerID uuid.UUID) bool {
	return actingID == ownerID
}
