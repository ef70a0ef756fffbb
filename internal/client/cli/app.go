package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/voteportal/internal/client/services"
	"github.com/dmitrijs2005/voteportal/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	authService services.AuthService
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer

	mu   sync.Mutex
	mode Mode
}

func NewApp(as services.AuthService, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		authService: as,
		logger:      logger.With("component", "cli"),
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Mode is the last observed connectivity to the API.
func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// setMode is called from the watcher goroutine and from commands.
func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

// Run prints the banner, starts the connectivity watcher and blocks in the
// REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context, pingInterval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Student Voting Portal (type 'help' for commands)")
	a.checkOnline(ctx)

	if pingInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, pingInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	ok, err := a.authService.IsAuthenticated(ctx)
	if err != nil {
		a.logger.Error(ctx, "read session", "error", err)
		return false
	}
	return ok
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.authService.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
	} else {
		a.setMode(ctx, ModeOnline)
	}
}

// StartOnlineStatusWatcher pings the API every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	ctx := context.Background()
	s := ""
	if id, err := a.authService.CurrentIdentity(ctx); err == nil && id != nil {
		s = id.MatricNumber + " "
	} else if a.isLoggedIn(ctx) {
		s = "session "
	}
	if m := a.Mode(); m != ModeUnknown {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
