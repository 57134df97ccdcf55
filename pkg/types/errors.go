package types

import "errors"

// Taxonomy mutation errors. A mutation that returns one of these leaves the
// taxonomy unchanged; callers treat the error as "nothing happened".
var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrDuplicateID     = errors.New("identifier already exists")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownActivity = errors.New("unknown activity")
	ErrInvalidKind     = errors.New("unknown input kind")
	ErrInvalidParams   = errors.New("invalid parameters for input kind")
	ErrBlankOption     = errors.New("option must not be blank")
	ErrDuplicateOption = errors.New("option already present")
	ErrKindMismatch    = errors.New("operation does not apply to this input kind")
)

// Date key errors.
var (
	ErrInvalidDateKey = errors.New("invalid date key")
)
