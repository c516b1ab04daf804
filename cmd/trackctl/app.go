package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/healteex/trackctl/config"
	"github.com/healteex/trackctl/internal/adapters/filevault"
	"github.com/healteex/trackctl/internal/adapters/redisvault"
	"github.com/healteex/trackctl/internal/api"
	"github.com/healteex/trackctl/internal/controller"
	"github.com/healteex/trackctl/internal/ports"
	"github.com/healteex/trackctl/internal/service"
	"github.com/healteex/trackctl/internal/session"
)

// app bundles the wired client stack for one command invocation. Commands are
// short-lived processes, so the session store restores persisted state on
// construction and every mutation persists before the process exits.
type app struct {
	Config    config.AppConfig
	Logger    *slog.Logger
	API       *api.Client
	Vault     ports.SessionVault
	Sessions  *session.Store
	Dashboard *service.DashboardService
	Nav       *cliNavigator

	redisClient *redis.Client
}

func newApp(cmdCtx *commandContext) (*app, error) {
	a := &app{
		Config: cmdCtx.Config,
		Logger: cmdCtx.Logger,
		Nav:    &cliNavigator{},
	}

	a.API = api.NewClient(api.Options{
		BaseURL:    cmdCtx.Config.API.BaseURL,
		HTTPClient: &http.Client{Timeout: cmdCtx.Config.API.Timeout},
	})

	vault, err := a.buildVault()
	if err != nil {
		return nil, err
	}
	a.Vault = vault

	a.Sessions = session.NewStore(cmdCtx.Ctx, session.Options{
		Accounts: a.API,
		Vault:    vault,
		Logger:   cmdCtx.Logger,
	})

	a.Dashboard = service.NewDashboardService(service.DashboardServiceOptions{
		Inventory: a.API,
		Logger:    cmdCtx.Logger,
	})

	return a, nil
}

func (a *app) buildVault() (ports.SessionVault, error) {
	switch a.Config.Session.Backend {
	case config.SessionBackendRedis:
		a.redisClient = redis.NewClient(&redis.Options{
			Addr:     a.Config.Redis.Addr,
			Password: a.Config.Redis.Password,
			DB:       a.Config.Redis.DB,
		})
		return redisvault.New(redisvault.Options{
			Client:     a.redisClient,
			DurableTTL: a.Config.Session.DurableTTL,
			ScopedTTL:  a.Config.Session.ScopedTTL,
		})
	default:
		return filevault.New(filevault.Options{
			Dir: a.Config.Session.Dir,
		})
	}
}

// Close releases infrastructure clients. Safe to call when nothing was opened.
func (a *app) Close() {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.Logger.Warn("redis close failed", "error", err)
		}
	}
}

// requireAuth runs the route guard for a protected command. When the session
// is anonymous the guard records the attempted route and bounces to login; the
// command surfaces that as an actionable error instead of navigating.
func (a *app) requireAuth(route string) error {
	guard := controller.NewGuard(a.Sessions, a.Nav)
	if !guard.Allow(route) {
		return fmt.Errorf("not signed in; run %q first", "trackctl login")
	}
	return nil
}

// cliNavigator satisfies the navigation port for a process that has no
// screens. It records transitions so commands can report where a flow landed.
type cliNavigator struct {
	Route string
	From  string
}

func (n *cliNavigator) NavigateTo(route string) {
	n.Route = route
	n.From = ""
}

func (n *cliNavigator) NavigateFrom(route, from string) {
	n.Route = route
	n.From = from
}

// promptAuthURL is handed to the federated credential provider so the user
// can open the consent page manually when the browser does not auto-open.
func promptAuthURL(url string) {
	_ = writef(os.Stderr, "Open the following URL in your browser to continue:\n\n  %s\n\n", url)
}
