package docking

import (
	"errors"

	"github.com/bnema/dockit/internal/infrastructure/statexml"
)

var (
	ErrNameCollision       = errors.New("dock widget name already registered")
	ErrCentralWidgetExists = errors.New("central widget already set")
	ErrRegistryNotEmpty    = errors.New("central widget must be the first dock widget")
	ErrRestoreInProgress   = errors.New("state restore already in progress")
	ErrUnknownDockWidget   = errors.New("state references an unknown dock widget")
	ErrPerspectiveNotFound = errors.New("perspective not found")

	ErrInvalidRootElement    = statexml.ErrInvalidRootElement
	ErrMalformedState        = statexml.ErrMalformedState
	ErrVersionTooNew         = statexml.ErrVersionTooNew
	ErrUserVersionMismatch   = statexml.ErrUserVersionMismatch
	ErrCentralWidgetMissing  = statexml.ErrCentralWidgetMissing
	ErrCentralWidgetMismatch = statexml.ErrCentralWidgetMismatch
	ErrEmptyState            = statexml.ErrEmptyState
)
