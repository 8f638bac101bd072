// Package uuid wraps google/uuid with gin form binding support.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam implements gin's form binding for UUID query parameters.
// An empty parameter binds to Nil so that optional filters stay optional.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
