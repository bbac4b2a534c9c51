package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls    []string
	args     [][]string
	messages int
}

func (f *fakeExec) ShowMessages() { f.messages++ }

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) Add(ctx context.Context) error   { return f.record("add", nil) }
func (f *fakeExec) Bulk(ctx context.Context) error  { return f.record("bulk", nil) }
func (f *fakeExec) Check(ctx context.Context) error { return f.record("check", nil) }
func (f *fakeExec) List(ctx context.Context, args []string) error {
	return f.record("list", args)
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	return f.record("delete", args)
}
func (f *fakeExec) Update(ctx context.Context) error { return f.record("update", nil) }
func (f *fakeExec) Details(ctx context.Context, args []string) error {
	return f.record("details", args)
}
func (f *fakeExec) Dismiss(ctx context.Context, args []string) error {
	return f.record("dismiss", args)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"add",
		"bulk",
		"check",
		"",
		"list pending 2",
		"LIST",
		"delete abc",
		"update",
		"details xyz",
		"dismiss warning",
		"exit",
		"add",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	require.Equal(t, []string{"add", "bulk", "check", "list", "list", "delete", "update", "details", "dismiss"}, exec.calls)
	require.Equal(t, []string{"pending", "2"}, exec.args[3])
	require.Empty(t, exec.args[4])
	require.Equal(t, []string{"abc"}, exec.args[5])
	require.Equal(t, []string{"xyz"}, exec.args[7])
	require.Equal(t, []string{"warning"}, exec.args[8])
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(online)" }, bufio.NewReader(strings.NewReader("foobar\nquit\n")))

	require.Empty(t, exec.calls)
	require.Contains(t, *out, "codes (online)> ")
	require.Contains(t, *out, "Unknown command: foobar")
	require.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("update\nlist")))

	require.Equal(t, []string{"update", "list"}, exec.calls)
}

func TestRunREPL_ShowsMessagesBeforeEveryPrompt(t *testing.T) {
	lines := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("update\n\nexit\n")))

	prompts := 0
	for _, l := range *lines {
		if l == "codes > " {
			prompts++
		}
	}
	require.Equal(t, 3, prompts)
	require.Equal(t, prompts, exec.messages)
}

func TestRunREPL_EOF(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("")))

	require.Empty(t, exec.calls)
}
