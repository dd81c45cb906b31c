package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/localauth/internal/logging"
	"github.com/dmitrijs2005/localauth/internal/metrics"
	"github.com/dmitrijs2005/localauth/internal/models"
	"github.com/dmitrijs2005/localauth/internal/services"
)

// StatsSource supplies the counters printed by the stats command.
type StatsSource interface {
	Snapshot() ([]metrics.Sample, error)
}

type App struct {
	authService services.AuthService
	stats       StatsSource
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	current     *models.User
}

// NewApp builds an App reading commands from in and writing to out.
// stats may be nil.
func NewApp(as services.AuthService, stats StatsSource, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		authService: as,
		stats:       stats,
		log:         log.With("component", "cli"),
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Run restores the previous session and blocks in the REPL until the user
// exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.current = a.authService.Bootstrap(ctx)

	a.println("Welcome to localauth (type 'help' for commands)")
	if a.current != nil {
		a.println(fmt.Sprintf("Welcome back, %s!", a.current.Name))
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) status() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.current.Email)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// report prints the user-facing text for err and logs the details.
func (a *App) report(ctx context.Context, op string, err error) {
	code := services.CodeOf(err)
	a.log.Debug(ctx, "command failed", "op", op, "code", code, "error", err)
	a.println(services.UserMessage(code))
}
