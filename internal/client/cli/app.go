package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/interviewdesk/internal/client/config"
	"github.com/dmitrijs2005/interviewdesk/internal/client/proctoring"
	"github.com/dmitrijs2005/interviewdesk/internal/client/services"
	"github.com/dmitrijs2005/interviewdesk/internal/client/session"
	"github.com/dmitrijs2005/interviewdesk/internal/client/storage"
	"github.com/dmitrijs2005/interviewdesk/internal/cryptox"
	"github.com/dmitrijs2005/interviewdesk/internal/logging"
)

// App is the REPL client: an auth service over the configured storage plus
// a local proctoring store and its overlay.
type App struct {
	config  *config.Config
	auth    services.AuthService
	log     logging.Logger
	proctor *proctoring.Store
	camera  *proctoring.VideoElement
	overlay *proctoring.Overlay
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the configured storage and builds the services on top of it.
// Auth metrics are registered on reg.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, reg prometheus.Registerer) (*App, error) {
	repo, err := storage.Open(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening storage", "backend", c.StorageBackend, "error", err)
		return nil, err
	}

	hasher, err := cryptox.NewHasher(c.PasswordScheme)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	metrics, err := services.NewMetrics(reg)
	if err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	auth := services.NewAuthService(
		session.NewStore(repo, log),
		hasher,
		services.WithDelay(c.AuthDelay),
		services.WithLogger(log),
		services.WithMetrics(metrics),
	)

	return newApp(c, auth, log, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, auth services.AuthService, log logging.Logger, in io.Reader, out io.Writer) *App {
	store := proctoring.NewStore()
	camera := &proctoring.VideoElement{}
	overlay := proctoring.New(store, proctoring.Options{
		EnabledByDefault: true,
		VideoRef:         &proctoring.Ref{Current: camera},
	})

	return &App{
		config:  c,
		auth:    auth,
		log:     log,
		proctor: store,
		camera:  camera,
		overlay: overlay,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run restores the persisted session, scopes the auth service to ctx and
// blocks in the REPL until the user exits. The service is closed on return.
func (a *App) Run(ctx context.Context) error {
	if err := a.auth.Open(ctx); err != nil {
		return err
	}
	defer func() {
		if err := a.auth.Close(ctx); err != nil {
			a.log.Warn(ctx, "error closing storage", "error", err)
		}
	}()

	a.Root(services.WithAuth(ctx, a.auth))
	return nil
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := services.FromContext(ctx).CurrentUser()
	return ok
}
