package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/codetracker/internal/client/form"
	"github.com/dmitrijs2005/codetracker/internal/codes"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

const ansiReset = "\x1b[0m"

var toneColors = map[codes.Tone]string{
	codes.ToneSuccess: "\x1b[32m",
	codes.ToneWarning: "\x1b[33m",
	codes.ToneCaution: "\x1b[38;5;208m",
	codes.ToneDanger:  "\x1b[31m",
	codes.ToneMuted:   "\x1b[90m",
}

var bannerTones = map[form.BannerKind]codes.Tone{
	form.BannerError:   codes.ToneDanger,
	form.BannerSuccess: codes.ToneSuccess,
	form.BannerWarning: codes.ToneWarning,
}

const noticeText = `How it works:
  - one code: use 'add'
  - several codes: use 'bulk', one per line as "code, name" (the name is optional),
    then a line with only "."
  - codes are checked automatically; follow them with 'list'
Type 'dismiss' to stop showing this notice.`

func paint(s string, tone codes.Tone, color bool) string {
	c, ok := toneColors[tone]
	if !color || !ok {
		return s
	}
	return c + s + ansiReset
}

func badgeText(s codes.Status, color bool) string {
	b := codes.Presentation(s)
	return paint(b.Label, b.Tone, color)
}

func writeBanners(w io.Writer, banners []form.Banner, color bool) {
	for _, b := range banners {
		msg := b.Message
		if len(b.Codes) > 0 {
			msg += " " + strings.Join(b.Codes, ", ")
		}
		fmt.Fprintln(w, paint(fmt.Sprintf("[%s] %s", b.Kind, msg), bannerTones[b.Kind], color))
	}
}

func writePage(w io.Writer, page *codes.ListPage, filter codes.Filter, color bool) {
	if len(page.Codes) == 0 {
		fmt.Fprintln(w, "No codes found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tNAME\tADDED\tSTATUS")
	for _, c := range page.Codes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Code, c.Name, formatTime(c.CreatedAt), badgeText(c.Status, color))
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "page %d, %d of %d code(s)\n", page.Page, len(page.Codes), page.Total)
	if page.HasMore {
		fmt.Fprintf(w, "more: list %s %d\n", filterArg(filter), page.Page+1)
	}
}

func writeDetails(w io.Writer, d *codes.CodeDetails, color bool) {
	c := d.Code
	fmt.Fprintf(w, "ID:      %s\n", c.ID)
	fmt.Fprintf(w, "Code:    %s\n", c.Code)
	if c.Name != "" {
		fmt.Fprintf(w, "Name:    %s\n", c.Name)
	}
	fmt.Fprintf(w, "Status:  %s\n", badgeText(c.Status, color))
	fmt.Fprintf(w, "Added:   %s\n", formatTime(c.CreatedAt))
	if !c.UpdatedAt.IsZero() {
		fmt.Fprintf(w, "Updated: %s\n", formatTime(c.UpdatedAt))
	}

	if len(d.Consultation) == 0 || string(d.Consultation) == "null" {
		fmt.Fprintln(w, "No consultation data.")
		return
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, d.Consultation, "", "  "); err != nil {
		buf.Reset()
		buf.Write(d.Consultation)
	}
	fmt.Fprintf(w, "Consultation:\n%s\n", buf.String())
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func filterArg(f codes.Filter) string {
	if f == "" {
		return string(codes.FilterAll)
	}
	return string(f)
}
