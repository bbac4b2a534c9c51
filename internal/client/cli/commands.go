package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/codetracker/internal/client/client"
	"github.com/dmitrijs2005/codetracker/internal/client/form"
	"github.com/dmitrijs2005/codetracker/internal/codes"
	"github.com/dmitrijs2005/codetracker/internal/logging"
)

var errUsage = errors.New("usage")

// Add prompts for one code and an optional name and submits them.
func (a *App) Add(ctx context.Context) error {
	raw, err := GetSimpleText(a.reader, fmt.Sprintf("Enter code (%d to %d digits)", a.norm.MinLen, a.norm.MaxLen), a.out)
	if err != nil {
		return err
	}
	if code := a.form.SetCode(raw); code != "" && code != raw {
		fmt.Fprintf(a.out, "Using %s\n", code)
	}

	name, err := GetSimpleText(a.reader, "Name (optional)", a.out)
	if err != nil {
		return err
	}
	a.form.SetName(name)

	return a.submit(ctx, a.form.SubmitSingle)
}

// Bulk reads a batch of "code, name" lines and submits it in one request.
func (a *App) Bulk(ctx context.Context) error {
	text, err := GetMultiline(a.reader, `Enter codes, one per line as "code, name" (the name is optional)`, a.out)
	if err != nil {
		return err
	}
	a.form.SetBulk(text)

	return a.submit(ctx, a.form.SubmitBulk)
}

func (a *App) submit(ctx context.Context, fn func(context.Context) (form.State, error)) error {
	state, err := fn(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.log.Debug(ctx, "submission finished", "state", state.String())
	return nil
}

// Check previews a batch without sending it: lines whose code would pass the
// single-code rules are listed as valid, the rest as rejected.
func (a *App) Check(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "Paste the codes to check", a.out)
	if err != nil {
		return err
	}

	valid, rejected := codes.ParseBulkStrict(text, a.norm)
	if len(valid) == 0 && len(rejected) == 0 {
		printlnFn("Nothing to check.")
		return nil
	}

	fmt.Fprintf(a.out, "%d code(s) look valid\n", len(valid))
	for _, c := range valid {
		if c.Name != "" {
			fmt.Fprintf(a.out, "  %s (%s)\n", c.Code, c.Name)
		} else {
			fmt.Fprintf(a.out, "  %s\n", c.Code)
		}
	}
	if len(rejected) > 0 {
		fmt.Fprintf(a.out, "%d line(s) would be rejected\n", len(rejected))
		for _, r := range rejected {
			fmt.Fprintf(a.out, "  %s\n", r)
		}
	}
	return nil
}

// List shows one page of codes. Arguments are an optional status filter and
// an optional page number, in any order.
func (a *App) List(ctx context.Context, args []string) error {
	params, err := parseListArgs(args)
	if err != nil {
		printlnFn(err.Error())
		printlnFn("Usage: list [all|pending|confirmed|cancelled|rejected|denied|expired|not_found|error] [page]")
		return err
	}

	page, err := a.codesService.List(ctx, params)
	if err != nil {
		a.reportError(err)
		return err
	}
	writePage(a.out, page, params.Status, a.color)
	return nil
}

func parseListArgs(args []string) (codes.ListParams, error) {
	p := codes.ListParams{Page: 1, Status: codes.FilterAll}
	if len(args) > 2 {
		return p, fmt.Errorf("%w: too many arguments", errUsage)
	}
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			if n < 1 {
				return p, fmt.Errorf("%w: page must be 1 or greater", errUsage)
			}
			p.Page = n
			continue
		}
		f, err := codes.ParseFilter(arg)
		if err != nil {
			return p, err
		}
		p.Status = f
	}
	return p, nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter id of the code to delete")
	if err != nil {
		return err
	}

	if err := a.codesService.Delete(ctx, id); err != nil {
		a.reportError(err)
		return err
	}
	printlnFn("Code deleted.")
	return nil
}

// Update asks the service to refresh every status. The new statuses show up
// on the next list.
func (a *App) Update(ctx context.Context) error {
	res, err := a.codesService.UpdateNow(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}
	if res.Message != "" {
		printlnFn(res.Message)
	}
	printlnFn("Update requested. Run 'list' to see the refreshed statuses.")
	return nil
}

func (a *App) Details(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter id of the code")
	if err != nil {
		return err
	}

	d, err := a.codesService.Details(ctx, id)
	if err != nil {
		a.reportError(err)
		return err
	}
	writeDetails(a.out, d, a.color)
	return nil
}

// Dismiss hides the notice (default) or one of the feedback banners.
func (a *App) Dismiss(ctx context.Context, args []string) error {
	what := "notice"
	if len(args) > 0 {
		what = args[0]
	}

	switch what {
	case "notice":
		if err := a.form.DismissNotice(ctx); err != nil {
			a.log.Error(ctx, "could not save notice flag", logging.Err(err))
			return err
		}
	case string(form.BannerError), string(form.BannerSuccess), string(form.BannerWarning):
		a.form.Dismiss(form.BannerKind(what))
	default:
		printlnFn("Usage: dismiss [notice|error|success|warning]")
		return fmt.Errorf("%w: dismiss %s", errUsage, what)
	}
	return nil
}

func (a *App) idArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	id, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if id == "" {
		printlnFn("No id given.")
		return "", fmt.Errorf("%w: empty id", errUsage)
	}
	return id, nil
}

// ShowMessages prints the feedback banners that are still visible. A success
// banner disappears once its time is up; errors and warnings stay until
// dismissed.
func (a *App) ShowMessages() {
	writeBanners(a.out, a.form.Banners(), a.color)
}

func (a *App) printNotice() {
	if a.form.NoticeVisible() {
		fmt.Fprintln(a.out, noticeText)
	}
}

// reportError prints a short explanation of an API failure.
func (a *App) reportError(err error) {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, context.Canceled):
		return
	case errors.Is(err, client.ErrUnauthorized):
		printlnFn("Not authorised. Check the access token (-t or CODES_TOKEN).")
	case errors.Is(err, client.ErrNotFound):
		printlnFn("Code not found.")
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
		printlnFn("The codes service is unreachable. Please try again later.")
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			printlnFn("Request failed:", apiErr.Message)
			return
		}
		printlnFn(fmt.Sprintf("Request failed with status %d.", apiErr.StatusCode))
	default:
		printlnFn("Request failed:", err.Error())
	}
}
