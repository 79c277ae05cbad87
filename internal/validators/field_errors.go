package validators

import (
	"errors"
	"strings"
)

// FieldError is a single rule violation for one field of a record.
// Err is the sentinel describing the rule and can be matched with [errors.Is].
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e FieldError) Error() string {
	return e.Message
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError builds a [FieldError] whose message is the text of err.
func NewFieldError(field string, err error) FieldError {
	return FieldError{Field: field, Message: err.Error(), Err: err}
}

func newInvalidTypeChoiceError(value string) FieldError {
	return FieldError{
		Field:   FieldType,
		Message: `"` + value + `" ` + ErrInvalidTypeChoice.Error(),
		Err:     ErrInvalidTypeChoice,
	}
}

// FieldErrors collects every violation found for a record.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	return strings.Join(fe.Messages(), "; ")
}

// Messages returns the violation messages in the order they were found.
func (fe FieldErrors) Messages() []string {
	messages := make([]string, 0, len(fe))
	for _, e := range fe {
		messages = append(messages, e.Message)
	}
	return messages
}

// Is lets errors.Is match any of the collected sentinels.
func (fe FieldErrors) Is(target error) bool {
	for _, e := range fe {
		if errors.Is(e, target) {
			return true
		}
	}
	return false
}

// AsFieldErrors extracts the collected violations from err. ok is false when
// err carries no field errors.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	var single FieldError
	if errors.As(err, &single) {
		return FieldErrors{single}, true
	}
	return nil, false
}
