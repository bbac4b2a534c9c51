package codes

import "errors"

var (
	ErrEmptyCode     = errors.New("enter a code")
	ErrNonNumeric    = errors.New("code must contain digits only")
	ErrCodeLength    = errors.New("code has an invalid length")
	ErrNoValidCodes  = errors.New("no valid codes found, check the formatting")
	ErrUnknownStatus = errors.New("unknown status")
)
