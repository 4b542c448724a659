package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/washledger/internal/config"
	"github.com/dmitrijs2005/washledger/internal/ledger"
	"github.com/dmitrijs2005/washledger/internal/logging"
	"github.com/dmitrijs2005/washledger/internal/models"
	"golang.org/x/term"
)

// Ledger is the part of *ledger.Ledger the shell uses.
type Ledger interface {
	ledger.Mutator
	Create(ctx context.Context, r models.Record) error
	List(ctx context.Context, f ledger.Filter) ([]models.Record, error)
}

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	config *config.Config
	ledger Ledger
	edits  *ledger.EditBuffer
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
	close  func() error

	// last listing; display numbers index into it
	shown     []models.Record
	shownDate time.Time
}

// NewApp opens the configured sheet and builds a shell reading stdin.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, closeFn, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	l := ledger.New(store, ledger.Options{TTL: cfg.CacheTTL, Logger: log})
	a := newApp(cfg, l, log, os.Stdin, os.Stdout)
	a.close = closeFn
	return a, nil
}

func newApp(cfg *config.Config, l Ledger, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config: cfg,
		ledger: l,
		edits:  ledger.NewEditBuffer(l),
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		now:    time.Now,
	}
}

// Run shows today's records and then reads commands until exit or EOF.
// The prompt is only printed when stdin is a terminal.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Car wash till (type 'help' for commands)")
	if err := a.Today(ctx); err != nil {
		a.println("Error:", describe(err))
	}

	prompt := func() string { return "" }
	if isTerminal(int(os.Stdin.Fd())) {
		prompt = a.prompt
	}
	runREPL(ctx, a, prompt, a.reader)
}

func (a *App) prompt() string {
	if n := len(a.edits.Pending()); n > 0 {
		return fmt.Sprintf("wash (%d unsaved)> ", n)
	}
	return "wash> "
}

// Close releases the store.
func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	err := a.close()
	a.close = nil
	return err
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) today() time.Time {
	return models.Day(a.now())
}
