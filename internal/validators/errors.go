package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTitleRequired = errors.New("title is required")
	ErrInvalidTitle  = errors.New("title must be a non-empty string")
	ErrInvalidNoteID = errors.New("invalid note id")
)
