package services

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// Service errors shared by every resource
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("operation violates a database constraint")
	ErrInvalidPage = errors.New("invalid page")
)

// translate maps gorm errors onto the service errors
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

// ParseID parses a path identifier. Malformed ids cannot match any row.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrNotFound
	}
	return uint(id), nil
}
