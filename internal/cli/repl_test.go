package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/washledger/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls   []string
	args    [][]string
	unsaved int
	err     error
}

func (f *fakeExec) rec(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) Add(ctx context.Context) error { return f.rec("add", nil) }
func (f *fakeExec) Today(ctx context.Context) error { return f.rec("today", nil) }
func (f *fakeExec) Day(ctx context.Context, a []string) error { return f.rec("day", a) }
func (f *fakeExec) Edit(ctx context.Context, a []string) error { return f.rec("edit", a) }
func (f *fakeExec) Pending(ctx context.Context) error { return f.rec("pending", nil) }
func (f *fakeExec) Save(ctx context.Context) error { return f.rec("save", nil) }
func (f *fakeExec) Discard(ctx context.Context, a []string) error { return f.rec("discard", a) }
func (f *fakeExec) Delete(ctx context.Context, a []string) error { return f.rec("delete", a) }
func (f *fakeExec) DailyClose(ctx context.Context) error { return f.rec("close", nil) }
func (f *fakeExec) Week(ctx context.Context) error { return f.rec("week", nil) }
func (f *fakeExec) Export(ctx context.Context, a []string) error { return f.rec("export", a) }
func (f *fakeExec) Unsaved() int { return f.unsaved }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func TestRunREPL_Dispatch(t *testing.T) {
	out := capturePrintln(t)
	f := &fakeExec{}
	input := strings.Join([]string{
		"help", "add", "today", "", "day 14/10/2026", "edit 2 price 12,50", "pending", "save",
		"discard 2", "DELETE 3", "close", "week", "export csv 14/10/2026", "frobnicate", "exit", "today",
	}, "\n")

	runREPL(context.Background(), f, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"add", "today", "day", "edit", "pending", "save", "discard", "delete", "close", "week", "export"}, f.calls)
	assert.Equal(t, []string{"2", "price", "12,50"}, f.args[3])
	assert.Equal(t, []string{"csv", "14/10/2026"}, f.args[10])
	assert.Contains(t, (*out)[0], "Commands:")
	assert.Contains(t, *out, "Unknown command: frobnicate")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	out := capturePrintln(t)
	f := &fakeExec{err: fmt.Errorf("update: %w", common.ErrorNotFound)}

	runREPL(context.Background(), f, func() string { return "" }, bufio.NewReader(strings.NewReader("save\nweek")))

	assert.Equal(t, []string{"save", "week"}, f.calls)
	assert.Len(t, *out, 2)
	assert.Contains(t, (*out)[0], "no longer in the sheet")
}

func TestRunREPL_PromptAndUnsavedWarning(t *testing.T) {
	out := capturePrintln(t)
	f := &fakeExec{unsaved: 2}

	runREPL(context.Background(), f, func() string { return "wash> " }, bufio.NewReader(strings.NewReader("quit\n")))

	assert.Equal(t, []string{"wash> ", "2 unsaved change(s) dropped", "Bye!"}, *out)
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrintln(t)
	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewReader(strings.NewReader("")))
	assert.Empty(t, f.calls)
}
