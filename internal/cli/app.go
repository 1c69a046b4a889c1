package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottokitchen/internal/config"
	"github.com/hammamikhairi/ottokitchen/internal/display"
	"github.com/hammamikhairi/ottokitchen/internal/domain"
	"github.com/hammamikhairi/ottokitchen/internal/kitchen"
	"github.com/hammamikhairi/ottokitchen/internal/logger"
	"github.com/hammamikhairi/ottokitchen/internal/menu"
	"github.com/hammamikhairi/ottokitchen/internal/storage"
)

// app is the wired kitchen a command runs against.
type app struct {
	cfg     config.Config
	log     *logger.Logger
	kitchen *kitchen.Kitchen
	ledger  *storage.MemoryLedger
	out     *display.Printer

	closeLog func() error
}

// newApp resolves configuration, opens the log, and loads the menu into a
// fresh kitchen.
func newApp(cmd *cobra.Command, opts *Options) (*app, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("menu") {
		cfg.MenuFile = opts.MenuFile
	}
	if flags.Changed("capacity") {
		cfg.Capacity = opts.Capacity
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logOut, closeLog := openLogOutput(cfg.LogFile, cmd.ErrOrStderr())
	log := logger.New(logger.ParseLevel(cfg.LogLevel), logOut)

	ledger := storage.NewMemoryLedger(log)
	k := kitchen.New(log,
		kitchen.WithCapacity(cfg.Capacity),
		kitchen.WithServedLog(ledger),
	)

	batch, err := menu.NewLoader(log).LoadFile(cmd.Context(), cfg.MenuFile)
	if err != nil {
		closeLog()
		return nil, err
	}
	if rejected := batch.Fill(k); rejected > 0 {
		log.Warn("kitchen full at %d orders, %d dish(es) not ordered", k.Capacity(), rejected)
	}
	log.Debug("kitchen ready: %d open order(s) from %s", k.Size(), cfg.MenuFile)

	return &app{
		cfg:      cfg,
		log:      log,
		kitchen:  k,
		ledger:   ledger,
		out:      display.NewPrinter(cmd.OutOrStdout()),
		closeLog: closeLog,
	}, nil
}

// Close releases the log file, if one was opened.
func (a *app) Close() error {
	return a.closeLog()
}

// openLogOutput returns the log destination for path. "stderr" or an
// empty path log to fallback, as does a file that cannot be opened.
func openLogOutput(path string, fallback io.Writer) (io.Writer, func() error) {
	noop := func() error { return nil }
	if path == "" || path == "stderr" {
		return fallback, noop
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(fallback, "warning: could not create log directory %s: %v (falling back to stderr)\n", dir, err)
			return fallback, noop
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(fallback, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return fallback, noop
	}
	return f, f.Close
}

// serve serves the open dish called name and returns its ticket.
func (a *app) serve(name string) (domain.Ticket, error) {
	d, ok := a.kitchen.FindByName(name)
	if !ok {
		return domain.Ticket{}, fmt.Errorf("%w: no open dish named %q", domain.ErrNotFound, name)
	}
	if !a.kitchen.ServeDish(d) {
		return domain.Ticket{}, fmt.Errorf("%w: %q", domain.ErrNotFound, name)
	}
	tickets := a.ledger.Tickets()
	return tickets[len(tickets)-1], nil
}

// parseCuisine resolves a user-typed cuisine. Unlike menu records, which
// fall back to OTHER, an unrecognised cuisine here is an error.
func parseCuisine(s string) (domain.CuisineType, error) {
	tag := menu.Tag(s)
	c := domain.CuisineFromString(tag)
	if c.String() != tag {
		return 0, fmt.Errorf("unknown cuisine %q", s)
	}
	return c, nil
}
