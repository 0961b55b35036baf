// Package uuid wraps google/uuid for binding IDs from URL parameters.
package uuid

import (
	"errors"
	"fmt"

	google_uuid "github.com/google/uuid"
)

var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam implements gin's BindUnmarshaler. An empty parameter
// is the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return fmt.Errorf("%w: '%s'", ErrInvalid, p)
	}

	*u = UUID{parsed}
	return nil
}
