package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/assistant/internal/common"
	"github.com/dmitrijs2005/assistant/internal/config"
	"github.com/dmitrijs2005/assistant/internal/filex"
	"github.com/dmitrijs2005/assistant/internal/logging"
	"github.com/dmitrijs2005/assistant/internal/repositories/contacts"
	"github.com/dmitrijs2005/assistant/internal/repositories/notes"
	"github.com/dmitrijs2005/assistant/internal/services"
)

const (
	prompt       = "Enter a command: "
	flushTimeout = 5 * time.Second
)

type App struct {
	contacts      services.ContactsService
	notes         services.NotesService
	out           *Output
	log           logging.Logger
	birthdaysDays int
	commands      map[string]command
	closers       []io.Closer
}

// NewApp creates the data directory, opens the log and the configured
// storage, and loads both repositories.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	log, logCloser, err := logging.New(logging.Options{
		Backend: logging.Backend(cfg.Log.Backend),
		Level:   cfg.Log.Level,
		Path:    filepath.Join(dir, cfg.Log.File),
	})
	if err != nil {
		return nil, err
	}
	closers := []io.Closer{logCloser}
	fail := func(err error) (*App, error) {
		closeAll(closers)
		return nil, err
	}

	st, err := openStores(ctx, cfg, dir)
	if err != nil {
		log.Error(ctx, "open storage failed", "storage", cfg.Storage, "error", err)
		return fail(err)
	}
	if st.closer != nil {
		closers = append([]io.Closer{st.closer}, closers...)
	}

	contactsRepo, err := contacts.NewInMemoryRepository(ctx, st.contacts, log)
	if err != nil {
		log.Error(ctx, "load contacts failed", "error", err)
		return fail(err)
	}
	notesRepo, err := notes.NewInMemoryRepository(ctx, st.notes, log)
	if err != nil {
		log.Error(ctx, "load notes failed", "error", err)
		return fail(err)
	}

	log.Info(ctx, "assistant started", "data_dir", dir, "storage", cfg.Storage)

	a := newApp(
		services.NewContactsService(contactsRepo, log),
		services.NewNotesService(notesRepo, notesRepo, log),
		NewOutput(os.Stdout, cfg.Color),
		log,
		cfg.BirthdaysDays,
	)
	a.closers = closers
	return a, nil
}

func newApp(cs services.ContactsService, ns services.NotesService, out *Output, log logging.Logger, birthdaysDays int) *App {
	a := &App{
		contacts:      cs,
		notes:         ns,
		out:           out,
		log:           log.With("component", "cli"),
		birthdaysDays: birthdaysDays,
	}
	a.commands = make(map[string]command)
	for _, c := range a.commandTable() {
		a.commands[c.name] = c
	}
	return a
}

// Run serves the REPL on in until exit, end of input or ctx cancellation,
// then flushes both collections.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	printlnFn(a.out.Info("Welcome to the assistant bot!"))

	replErr := runREPL(ctx, a, in)

	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()
	if err := a.flush(fctx); err != nil {
		printlnFn(a.out.Error("Failed to save data: " + err.Error()))
		return errors.Join(replErr, err)
	}
	return replErr
}

// Close releases the storage and the log.
func (a *App) Close() error {
	return closeAll(a.closers)
}

func (a *App) flush(ctx context.Context) error {
	err := errors.Join(a.contacts.Flush(ctx), a.notes.Flush(ctx))
	if err != nil {
		a.log.Error(ctx, "flush failed", "error", err)
		return err
	}
	a.log.Info(ctx, "data saved")
	return nil
}

// Execute runs one input line. quit reports that the loop should stop.
func (a *App) Execute(ctx context.Context, line string) (reply string, quit bool) {
	name, args, err := parseInput(line)
	if err != nil {
		return a.renderError(ctx, "", err), false
	}
	if name == "" {
		return "", false
	}

	cmd, ok := a.commands[name]
	if !ok {
		return a.out.Error("Invalid command. Available commands: " + a.commandList()), false
	}

	a.log.Debug(ctx, "command", "name", name, "args", len(args))
	reply, err = cmd.run(ctx, args)
	if err != nil {
		return a.renderError(ctx, name, err), false
	}
	return reply, cmd.quit
}

// renderError maps the error taxonomy to user text. Unknown errors are
// logged and reported without details.
func (a *App) renderError(ctx context.Context, cmd string, err error) string {
	var (
		ve *common.ValidationError
		ue *common.UsageError
	)
	switch {
	case errors.As(err, &ve):
		return a.out.Validation(ve.Reason)
	case errors.As(err, &ue), errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrAlreadyExists):
		return a.out.Error(err.Error())
	default:
		a.log.Error(ctx, "command failed", "command", cmd, "error", err)
		return a.out.Error("Internal error, see the log for details")
	}
}

func closeAll(closers []io.Closer) error {
	var errs []error
	for _, c := range closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
