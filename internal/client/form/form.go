package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/codetracker/internal/codes"
)

// Submitter sends a batch of codes to the service.
type Submitter interface {
	Add(ctx context.Context, items []codes.CodeInput) (*codes.AddResult, error)
}

// Preferences stores the one-time notice flag.
type Preferences interface {
	NoticeSeen(ctx context.Context) (bool, error)
	DismissNotice(ctx context.Context) error
}

type Options struct {
	Normalizer codes.Normalizer
	// SuccessTTL is how long a success banner stays up. Zero keeps it until dismissed.
	SuccessTTL time.Duration
	Now        func() time.Time
}

const DefaultSuccessTTL = 5 * time.Second

func DefaultOptions() Options {
	return Options{
		Normalizer: codes.DefaultNormalizer(),
		SuccessTTL: DefaultSuccessTTL,
		Now:        time.Now,
	}
}

type Form struct {
	submitter Submitter
	prefs     Preferences
	norm      codes.Normalizer
	ttl       time.Duration
	now       func() time.Time

	mu       sync.Mutex
	state    State
	inFlight bool
	code     string
	name     string
	bulk     string
	failure  *Banner
	success  *Banner
	warning  *Banner
	notice   bool
}

// New builds a form and reads the notice flag once. A flag that cannot be
// read shows the notice.
func New(ctx context.Context, submitter Submitter, prefs Preferences, opts Options) (*Form, error) {
	if submitter == nil {
		return nil, errors.New("form: nil submitter")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	f := &Form{
		submitter: submitter,
		prefs:     prefs,
		norm:      opts.Normalizer,
		ttl:       opts.SuccessTTL,
		now:       opts.Now,
		notice:    true,
	}

	if prefs != nil {
		seen, err := prefs.NoticeSeen(ctx)
		if err != nil {
			return f, fmt.Errorf("read notice flag: %w", err)
		}
		f.notice = !seen
	}
	return f, nil
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}

func (f *Form) Code() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.code
}

func (f *Form) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name
}

func (f *Form) Bulk() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bulk
}

// touch marks a user action. Callers hold f.mu.
func (f *Form) touch() {
	if !f.inFlight {
		f.state = StateIdle
	}
}

// TypeCode replaces the single-code field with raw input, keeping digits only.
func (f *Form) TypeCode(raw string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	f.code = f.norm.Normalize(raw)
	return f.code
}

// SetCode replaces the single-code field with a whole line of input. Non
// digits are dropped but nothing is truncated, so an over-long line fails
// validation on submit instead of being sent shortened.
func (f *Form) SetCode(line string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	f.code = codes.DigitsOnly(line)
	return f.code
}

// AppendCode handles one keystroke on the single-code field.
func (f *Form) AppendCode(typed string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	f.code = f.norm.Keystroke(f.code, typed)
	return f.code
}

func (f *Form) SetName(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	f.name = name
}

func (f *Form) SetBulk(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	f.bulk = text
}

// CanSubmitSingle mirrors the enabled state of the single submit control.
func (f *Form) CanSubmitSingle() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.inFlight && strings.TrimSpace(f.code) != ""
}

// CanSubmitBulk mirrors the enabled state of the bulk submit control.
func (f *Form) CanSubmitBulk() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.inFlight && strings.TrimSpace(f.bulk) != ""
}

// SubmitSingle submits the single-code field. Validation failures and API
// errors end up in the banners; the returned error is only
// ErrSubmitInProgress.
func (f *Form) SubmitSingle(ctx context.Context) (State, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return StateSubmitting, ErrSubmitInProgress
	}
	f.clearBanners()

	code := strings.TrimSpace(f.code)
	if code == "" {
		return f.rejectAndUnlock(msgEnterCode), nil
	}
	if err := f.norm.Validate(code); err != nil {
		return f.rejectAndUnlock(err.Error()), nil
	}

	item := codes.CodeInput{Code: code, Name: strings.TrimSpace(f.name)}
	f.beginLocked()
	f.mu.Unlock()

	res, err := f.submitter.Add(ctx, []codes.CodeInput{item})

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.finishLocked(res, err, fmt.Sprintf("Code %q added successfully!", code), msgAddCodeFailed, func() {
		f.code = ""
		f.name = ""
	}), nil
}

// SubmitBulk parses the bulk field and submits every entry in one request.
func (f *Form) SubmitBulk(ctx context.Context) (State, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return StateSubmitting, ErrSubmitInProgress
	}
	f.clearBanners()

	if strings.TrimSpace(f.bulk) == "" {
		return f.rejectAndUnlock(msgEnterCodes), nil
	}
	items := codes.ParseBulk(f.bulk)
	if len(items) == 0 {
		return f.rejectAndUnlock(msgNoValidCodes), nil
	}

	f.beginLocked()
	f.mu.Unlock()

	res, err := f.submitter.Add(ctx, items)

	f.mu.Lock()
	defer f.mu.Unlock()
	added := 0
	if res != nil {
		added = res.Added
	}
	return f.finishLocked(res, err, fmt.Sprintf("%d code(s) added successfully!", added), msgAddCodesFailed, func() {
		f.bulk = ""
	}), nil
}

// rejectAndUnlock shows a local validation error. Called with f.mu held,
// returns with it released.
func (f *Form) rejectAndUnlock(msg string) State {
	f.failure = &Banner{Kind: BannerError, Message: msg}
	f.state = StateIdle
	f.mu.Unlock()
	return StateIdle
}

func (f *Form) beginLocked() {
	f.inFlight = true
	f.state = StateSubmitting
}

func (f *Form) finishLocked(res *codes.AddResult, err error, successMsg, failureMsg string, clearInput func()) State {
	f.inFlight = false

	if err != nil || res == nil {
		f.failure = &Banner{Kind: BannerError, Message: failureMsg}
		f.state = StateError
		return f.state
	}

	f.state = StateSuccess
	if res.Added > 0 {
		f.success = &Banner{Kind: BannerSuccess, Message: successMsg}
		if f.ttl > 0 {
			f.success.ExpiresAt = f.now().Add(f.ttl)
		}
		clearInput()
	}
	if len(res.Invalid) > 0 {
		invalid := make([]string, len(res.Invalid))
		copy(invalid, res.Invalid)
		f.warning = &Banner{Kind: BannerWarning, Message: msgSomeInvalid, Codes: invalid}
		f.state = StatePartialSuccess
	}
	return f.state
}

func (f *Form) clearBanners() {
	f.failure, f.success, f.warning = nil, nil, nil
}

// Banners returns the visible banners in display order: error, success,
// warning. An expired success banner is dropped here.
func (f *Form) Banners() []Banner {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.success != nil && !f.success.ExpiresAt.IsZero() && !f.now().Before(f.success.ExpiresAt) {
		f.success = nil
	}

	out := make([]Banner, 0, 3)
	for _, b := range []*Banner{f.failure, f.success, f.warning} {
		if b != nil {
			out = append(out, *b)
		}
	}
	return out
}

// Dismiss closes the banner of the given kind.
func (f *Form) Dismiss(kind BannerKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch()
	switch kind {
	case BannerError:
		f.failure = nil
	case BannerSuccess:
		f.success = nil
	case BannerWarning:
		f.warning = nil
	}
}

func (f *Form) NoticeVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

// DismissNotice hides the notice and records that it was seen. The notice
// stays hidden for this form even if the flag cannot be saved.
func (f *Form) DismissNotice(ctx context.Context) error {
	f.mu.Lock()
	wasVisible := f.notice
	f.notice = false
	f.mu.Unlock()

	if !wasVisible || f.prefs == nil {
		return nil
	}
	if err := f.prefs.DismissNotice(ctx); err != nil {
		return fmt.Errorf("save notice flag: %w", err)
	}
	return nil
}
