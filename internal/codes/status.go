package codes

import (
	"fmt"
	"strings"
)

// Status is the server-reported state of a code.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
	StatusDenied    Status = "denied"
	StatusExpired   Status = "expired"
	StatusNotFound  Status = "not_found"
	StatusError     Status = "error"
)

// Filter selects codes by status in a list request. FilterAll (or the
// empty filter) disables filtering.
type Filter string

const FilterAll Filter = "all"

// AllStatuses returns every known status in display order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusCancelled,
		StatusRejected,
		StatusDenied,
		StatusExpired,
		StatusNotFound,
		StatusError,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusRejected,
		StatusDenied, StatusExpired, StatusNotFound, StatusError:
		return true
	}
	return false
}

// ParseStatus parses a status name case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

// ParseFilter accepts a status name or "all". An empty string yields FilterAll.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(FilterAll) {
		return FilterAll, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return "", err
	}
	return Filter(st), nil
}

// Tone is the style class a status is rendered with.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneCaution Tone = "caution"
	ToneDanger  Tone = "danger"
	ToneMuted   Tone = "muted"
)

// Badge is the display form of a status.
type Badge struct {
	Label string
	Tone  Tone
}

// Presentation maps a status to its badge. A status the client does not
// know yet is shown with its raw value.
func Presentation(s Status) Badge {
	switch s {
	case StatusConfirmed:
		return Badge{Label: "Autorizada", Tone: ToneSuccess}
	case StatusPending:
		return Badge{Label: "Pendente", Tone: ToneWarning}
	case StatusCancelled:
		return Badge{Label: "Cancelada", Tone: ToneCaution}
	case StatusRejected:
		return Badge{Label: "Rejeitada", Tone: ToneDanger}
	case StatusDenied:
		return Badge{Label: "Negada", Tone: ToneDanger}
	case StatusExpired:
		return Badge{Label: "Expirada", Tone: ToneMuted}
	case StatusNotFound:
		return Badge{Label: "Não Encontrada", Tone: ToneMuted}
	case StatusError:
		return Badge{Label: "Erro", Tone: ToneDanger}
	}
	return Badge{Label: string(s), Tone: ToneMuted}
}
