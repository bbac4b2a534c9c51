package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Add(ctx context.Context) error
	Bulk(ctx context.Context) error
	Check(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Update(ctx context.Context) error
	Details(ctx context.Context, args []string) error
	Dismiss(ctx context.Context, args []string) error
	ShowMessages()
}

const helpText = `Available commands:
  add                 add one code (asks for code and optional name)
  bulk                add many codes, one "code, name" per line, end with "."
  check               preview which lines of a batch look valid, end with "."
  list [status] [n]   show page n of your codes, optionally by status
  delete [id]         delete a code
  update              refresh the status of all codes
  details [id]        show the consultation behind a code
  dismiss [what]      hide the notice, or an error/success/warning message
  exit | quit         leave the program`

// runREPL reads commands line by line from reader and dispatches them to a.
// The visible feedback messages are shown again before every prompt until
// they expire or are dismissed.
//
// Command prompts read from the same reader, so a command that asks for
// more input consumes the following lines. The loop exits on EOF or when
// the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		a.ShowMessages()
		printlnFn(fmt.Sprintf("codes %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help", "h":
			printlnFn(helpText)

		case "add", "a":
			_ = a.Add(ctx)

		case "bulk", "b":
			_ = a.Bulk(ctx)

		case "check":
			_ = a.Check(ctx)

		case "list", "l":
			_ = a.List(ctx, args)

		case "delete", "rm":
			_ = a.Delete(ctx, args)

		case "update":
			_ = a.Update(ctx)

		case "details", "show":
			_ = a.Details(ctx, args)

		case "dismiss":
			_ = a.Dismiss(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
