package form

import (
	"errors"
	"time"
)

var ErrSubmitInProgress = errors.New("a submission is already in progress")

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StatePartialSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StatePartialSuccess:
		return "partial-success"
	case StateError:
		return "error"
	}
	return "unknown"
}

type BannerKind string

const (
	BannerError   BannerKind = "error"
	BannerSuccess BannerKind = "success"
	BannerWarning BannerKind = "warning"
)

// Banner is one feedback message. Codes lists the rejected codes of a
// warning banner verbatim. A zero ExpiresAt never expires.
type Banner struct {
	Kind      BannerKind
	Message   string
	Codes     []string
	ExpiresAt time.Time
}

const (
	msgEnterCode      = "Please enter a code"
	msgEnterCodes     = "Please enter at least one code"
	msgNoValidCodes   = "No valid codes found. Check the formatting."
	msgAddCodeFailed  = "Could not add the code. Please try again."
	msgAddCodesFailed = "Could not add the codes. Please try again."
	msgSomeInvalid    = "Some codes could not be added:"
)
