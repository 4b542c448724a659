package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for shell output.
var printlnFn = fmt.Println

// execIface is the command surface runREPL dispatches to; *App satisfies it.
type execIface interface {
	Add(ctx context.Context) error
	Today(ctx context.Context) error
	Day(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Pending(ctx context.Context) error
	Save(ctx context.Context) error
	Discard(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	DailyClose(ctx context.Context) error
	Week(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Unsaved() int
}

const helpText = `Commands:
  add                                   register a wash
  today                                 list today's washes
  day <dd/mm/yyyy>                      list another day
  edit <n> <price|pay|delivery> <value> stage a change to row n
  pending                               show staged changes
  save                                  write staged changes
  discard <n>                           drop the staged change of row n
  delete <n>                            remove row n
  close                                 daily closing totals
  week                                  last seven days
  export <csv|doc> [dd/mm/yyyy]         write a day's report
  exit | quit                           leave`

// runREPL reads one command per line from reader and dispatches it to a
// until EOF or an exit command. Command errors are printed and the loop
// carries on; nothing the failed command touched is assumed changed.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if p := promptFn(); p != "" {
			printlnFn(p)
		}

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "add":
			cmdErr = a.Add(ctx)
		case "today", "l", "list":
			cmdErr = a.Today(ctx)
		case "day":
			cmdErr = a.Day(ctx, args)
		case "edit":
			cmdErr = a.Edit(ctx, args)
		case "pending":
			cmdErr = a.Pending(ctx)
		case "save":
			cmdErr = a.Save(ctx)
		case "discard":
			cmdErr = a.Discard(ctx, args)
		case "delete":
			cmdErr = a.Delete(ctx, args)
		case "close":
			cmdErr = a.DailyClose(ctx)
		case "week":
			cmdErr = a.Week(ctx)
		case "export":
			cmdErr = a.Export(ctx, args)
		case "exit", "quit":
			if n := a.Unsaved(); n > 0 {
				printlnFn(fmt.Sprintf("%d unsaved change(s) dropped", n))
			}
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", describe(cmdErr))
		}
	}
}
