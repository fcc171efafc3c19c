package stor

import (
	"errors"
)

var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrNotRegistered     = errors.New("not registered")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrInvalidCatalog    = errors.New("invalid activity catalog")
)
