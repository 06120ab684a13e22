package profile

import (
	"context"
	"errors"
	"time"
)

// Profile is a user's saved profile. Name doubles as the unique key:
// the original product remembers users by display name only, so two
// people sharing a name overwrite each other (last writer wins).
type Profile struct {
	Name      string    `json:"name"`
	Education string    `json:"education"`
	Skills    []string  `json:"skills"`
	Interests []string  `json:"interests"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ErrNotFound signals an absent profile. Callers treat it as a normal
// first-time-user branch, not a failure.
var ErrNotFound = errors.New("profile not found")

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository is the port for profile persistence.
type Repository interface {
	// Upsert creates the profile or fully replaces all non-key fields
	// of an existing one, atomically per name. Returns the stored row.
	Upsert(ctx context.Context, p Profile) (Profile, error)
	GetByName(ctx context.Context, name string) (Profile, error)
}
