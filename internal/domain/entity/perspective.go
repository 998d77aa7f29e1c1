package entity

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidPerspectiveName is returned for an empty perspective name.
var ErrInvalidPerspectiveName = errors.New("perspective name cannot be empty")

// Perspective is a named serialized layout.
type Perspective struct {
	Name      string
	State     []byte
	UpdatedAt time.Time
}

// Validate checks that the perspective can be stored.
func (p *Perspective) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidPerspectiveName
	}
	return nil
}
