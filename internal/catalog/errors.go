package catalog

import "errors"

var (
	// ErrNoTypes is returned when a catalog file declares no asset types.
	ErrNoTypes = errors.New("catalog declares no asset types")

	// ErrEmptyTypeName is returned for a type entry without a name.
	ErrEmptyTypeName = errors.New("catalog type name is empty")

	// ErrNoClasses is returned for a type that allows no classes.
	ErrNoClasses = errors.New("catalog type declares no classes")

	// ErrDuplicateType is returned when the same type is declared twice.
	ErrDuplicateType = errors.New("catalog type is declared more than once")
)
