package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/bokuwaitgel/smart-locker-panel/config"
	"github.com/bokuwaitgel/smart-locker-panel/internal/bootstrap"
)

const tokenEnv = "LOCKER_TOKEN"

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
	// Token seeds the in-memory session; read from LOCKER_TOKEN.
	Token string
	Out   io.Writer
	In    io.Reader
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(os.Stdout); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(os.Stdout); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmdCtx := &commandContext{
		Ctx:    ctx,
		Logger: logger,
		Config: cfg,
		Token:  os.Getenv(tokenEnv),
		Out:    os.Stdout,
		In:     os.Stdin,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		if errors.Is(runErr, errSessionExpired) || errors.Is(runErr, errNotLoggedIn) {
			_ = writef(os.Stderr, "%s: %v\n", cmdName, runErr)
		} else {
			logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		}
		stop()
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Exchange credentials for a token and print it (export as " + tokenEnv + ")",
			run:         runLogin,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the identity carried by " + tokenEnv,
			run:         runWhoami,
		},
		"stats": {
			name:        "stats",
			description: "Show container and locker counters",
			run:         runStats,
		},
		"containers": {
			name:        "containers",
			description: "List containers",
			run:         runContainers,
		},
		"lockers": {
			name:        "lockers",
			description: "List lockers, optionally for one board",
			run:         runLockers,
		},
		"orders": {
			name:        "orders",
			description: "List delivery orders filtered by board and status",
			run:         runOrders,
		},
		"open-locker": {
			name:        "open-locker",
			description: "Ask a board to open one of its lockers",
			run:         runOpenLocker,
		},
		"set-locker-status": {
			name:        "set-locker-status",
			description: "Change a locker's status",
			run:         runSetLockerStatus,
		},
		"set-order-status": {
			name:        "set-order-status",
			description: "Change a delivery order's status",
			run:         runSetOrderStatus,
		},
		"set-container-status": {
			name:        "set-container-status",
			description: "Change a container's status",
			run:         runSetContainerStatus,
		},
		"banners": {
			name:        "banners",
			description: "List banners",
			run:         runBanners,
		},
	}
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: locker-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(w, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(w, "  %-22s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return writef(w, "\nThe bearer token is read from %s.\n", tokenEnv)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
