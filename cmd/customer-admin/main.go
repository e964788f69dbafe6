package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/criseulises/customer-admin-go/config"
	"github.com/criseulises/customer-admin-go/internal/bootstrap"
	domainauth "github.com/criseulises/customer-admin-go/internal/domain/auth"
	apperrors "github.com/criseulises/customer-admin-go/internal/errors"
	"github.com/criseulises/customer-admin-go/internal/service"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx      context.Context
	Logger   *slog.Logger
	Config   config.AppConfig
	Services *bootstrap.ServiceContainer
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
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
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	services, err := bootstrap.BuildServices(cfg, logger)
	if err != nil {
		logger.ErrorContext(context.Background(), "build services", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal wiring failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:      context.Background(),
		Logger:   logger,
		Config:   cfg,
		Services: services,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		handleUnauthorized(cmdCtx, runErr)
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

// handleUnauthorized is the single place a rejected token is turned into a
// sign-out. Services and the HTTP client report the rejection and otherwise
// leave the stored session alone.
func handleUnauthorized(cmdCtx *commandContext, err error) {
	if !apperrors.IsUnauthorized(err) {
		return
	}
	if clearErr := cmdCtx.Services.Sessions.Clear(cmdCtx.Ctx); clearErr != nil {
		cmdCtx.Logger.Warn("clear rejected session failed", "error", clearErr)
	}
	if writeErr := writeln(os.Stderr,
		"The backend rejected the stored session; credentials cleared.",
		"Run `customer-admin login` to sign in again."); writeErr != nil {
		cmdCtx.Logger.Warn("print unauthorized notice failed", "error", writeErr)
	}
}

// requireRole gates a command the way a view guard gates a route: unknown
// visitors are sent to login, known visitors lacking the role are refused.
func requireRole(cmdCtx *commandContext, required ...domainauth.Role) error {
	decision, err := cmdCtx.Services.Guard.Authorize(cmdCtx.Ctx, required...)
	if err != nil {
		return fmt.Errorf("authorize: %w", err)
	}
	if decision.Granted() {
		return nil
	}
	if decision.Redirect == service.LoginPath {
		return errors.New("not signed in; run `customer-admin login` first")
	}
	return fmt.Errorf("role %s is not allowed to run this command", decision.Session.Role())
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Sign in against the backend and store the session",
			run:         runLogin,
		},
		"logout": {
			name:        "logout",
			description: "Discard the stored session",
			run:         runLogout,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the signed-in account",
			run:         runWhoami,
		},
		"list-customers": {
			name:        "list-customers",
			description: "List customers page by page",
			run:         runListCustomers,
		},
		"search-customers": {
			name:        "search-customers",
			description: "Search customers by name, email, or document",
			run:         runSearchCustomers,
		},
		"get-customer": {
			name:        "get-customer",
			description: "Show a single customer with addresses",
			run:         runGetCustomer,
		},
		"create-customer": {
			name:        "create-customer",
			description: "Create a customer from a JSON request file",
			run:         runCreateCustomer,
		},
		"update-customer": {
			name:        "update-customer",
			description: "Update customer fields from a JSON request file",
			run:         runUpdateCustomer,
		},
		"activate-customer": {
			name:        "activate-customer",
			description: "Reactivate a deactivated customer",
			run:         runActivateCustomer,
		},
		"deactivate-customer": {
			name:        "deactivate-customer",
			description: "Deactivate a customer",
			run:         runDeactivateCustomer,
		},
		"customer-stats": {
			name:        "customer-stats",
			description: "Show customer statistics",
			run:         runCustomerStats,
		},
		"customers-by-user": {
			name:        "customers-by-user",
			description: "List customers managed by a specific administrator",
			run:         runCustomersByUser,
		},
		"list-users": {
			name:        "list-users",
			description: "List administrator accounts page by page",
			run:         runListUsers,
		},
		"list-admins": {
			name:        "list-admins",
			description: "List active administrator accounts",
			run:         runListAdmins,
		},
		"get-user": {
			name:        "get-user",
			description: "Show a single administrator account",
			run:         runGetUser,
		},
		"search-users": {
			name:        "search-users",
			description: "Search administrator accounts by name or email",
			run:         runSearchUsers,
		},
		"create-user": {
			name:        "create-user",
			description: "Create an administrator account",
			run:         runCreateUser,
		},
		"update-user": {
			name:        "update-user",
			description: "Update an administrator account",
			run:         runUpdateUser,
		},
		"activate-user": {
			name:        "activate-user",
			description: "Reactivate a deactivated administrator account",
			run:         runActivateUser,
		},
		"deactivate-user": {
			name:        "deactivate-user",
			description: "Deactivate an administrator account",
			run:         runDeactivateUser,
		},
		"user-stats": {
			name:        "user-stats",
			description: "Show administrator account statistics",
			run:         runUserStats,
		},
		"dashboard": {
			name:        "dashboard",
			description: "Show customer and administrator statistics side by side",
			run:         runDashboard,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: customer-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, c := range commands() {
		if err := writef(os.Stdout, "  %-24s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}
