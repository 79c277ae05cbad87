package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameFormat        = errors.New("name is not formatted correctly")
	ErrInvalidTypeChoice = errors.New("is not a valid choice for type")
	ErrInvalidClass      = errors.New("class is not valid")
)
