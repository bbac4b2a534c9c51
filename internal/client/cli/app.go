package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/codetracker/internal/client/client"
	"github.com/dmitrijs2005/codetracker/internal/client/config"
	"github.com/dmitrijs2005/codetracker/internal/client/form"
	"github.com/dmitrijs2005/codetracker/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/codetracker/internal/client/services"
	"github.com/dmitrijs2005/codetracker/internal/codes"
	"github.com/dmitrijs2005/codetracker/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single connectivity check.
const pingTimeout = 3 * time.Second

type App struct {
	config       *config.Config
	codesService services.CodesService
	form         *form.Form
	norm         codes.Normalizer
	log          logging.Logger
	db           *sql.DB
	reader       *bufio.Reader
	out          io.Writer
	color        bool

	modeMu sync.RWMutex
	mode   Mode
}

// NewApp opens the local database, builds the API client and the form.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", logging.Err(err), "path", c.DBPath)
		return nil, err
	}

	apiClient, err := client.NewCodesClient(c.ServerURL, c.AuthToken, c.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	cs := services.NewCodesService(apiClient, log)
	prefs := services.NewPreferencesService(preferences.NewSQLiteRepository(db))

	app, err := newApp(ctx, c, cs, prefs, log, time.Now)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.db = db
	app.color = isTerminal(int(os.Stdout.Fd()))
	return app, nil
}

func newApp(ctx context.Context, c *config.Config, cs services.CodesService, prefs form.Preferences, log logging.Logger, now func() time.Time) (*App, error) {
	norm := c.Normalizer()

	f, err := form.New(ctx, cs, prefs, form.Options{
		Normalizer: norm,
		SuccessTTL: c.SuccessTTL,
		Now:        now,
	})
	if err != nil {
		if f == nil {
			return nil, err
		}
		log.Warn(ctx, "notice flag unavailable", logging.Err(err))
	}

	return &App{
		config:       c,
		codesService: cs,
		form:         f,
		norm:         norm,
		log:          log,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}, nil
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

// Run shows the greeting, starts the watcher and blocks in the REPL until
// the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close(ctx)

	a.checkSession(time.Now())

	fmt.Fprintln(a.out, "Consultation codes CLI (type 'help' for commands)")
	a.printNotice()

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the API client and the local database.
func (a *App) Close(ctx context.Context) {
	if err := a.codesService.Close(ctx); err != nil {
		a.log.Warn(ctx, "close api client", logging.Err(err))
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "close database", logging.Err(err))
		}
	}
}

// checkSession warns about a missing or expired bearer token.
func (a *App) checkSession(now time.Time) {
	ctx := context.Background()
	s, err := client.ParseSession(a.config.AuthToken)
	if err != nil {
		a.log.Warn(ctx, "access token unusable, requests may be rejected", logging.Err(err))
		return
	}
	if s.Expired(now) {
		a.log.Warn(ctx, "access token expired", "expired_at", s.ExpiresAt)
		return
	}
	a.log.Debug(ctx, "session", "user", s.UserID, "expires_at", s.ExpiresAt)
}

func (a *App) getStatus() string {
	if m := a.Mode(); m != "" {
		return fmt.Sprintf("(%s)", m)
	}
	return ""
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.codesService.Ping(ctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the API every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

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
