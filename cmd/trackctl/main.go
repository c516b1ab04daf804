package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/healteex/trackctl/config"
	"github.com/healteex/trackctl/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

func main() {
	logger := bootstrap.InitLogger("info")

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with a usage status
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with a usage status
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must propagate failure to callers
	}
	logger = bootstrap.InitLogger(cfg.LogLevel)

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Sign in with email and password, or --google for federated sign-in",
			run:         runLogin,
		},
		"logout": {
			name:        "logout",
			description: "Sign out and clear the stored session",
			run:         runLogout,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the signed-in account",
			run:         runWhoami,
		},
		"refresh": {
			name:        "refresh",
			description: "Exchange the refresh token for a fresh access token",
			run:         runRefresh,
		},
		"signup-request": {
			name:        "signup-request",
			description: "Ask the backend to email a signup verification token",
			run:         runSignupRequest,
		},
		"signup-verify": {
			name:        "signup-verify",
			description: "Complete signup with the emailed token and sign in",
			run:         runSignupVerify,
		},
		"dashboard": {
			name:        "dashboard",
			description: "Fetch and render the supply-chain dashboard",
			run:         runDashboard,
		},
		"facility-create": {
			name:        "facility-create",
			description: "Register a new health facility",
			run:         runFacilityCreate,
		},
		"txn-record": {
			name:        "txn-record",
			description: "Record an inventory transaction",
			run:         runTxnRecord,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: trackctl <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, c := range commands() {
		if err := writef(os.Stdout, "  %-18s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}
