package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	domainauth "github.com/criseulises/customer-admin-go/internal/domain/auth"
	"github.com/criseulises/customer-admin-go/internal/domain/model"
)

func runListUsers(cmdCtx *commandContext, args []string) error {
	var opts pageOptions
	fs := flag.NewFlagSet("list-users", flag.ContinueOnError)
	addPageFlags(fs, &opts)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse list-users flags: %w", err)
	}
	if err := requireRole(cmdCtx, domainauth.RoleSuperAdmin); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	page, err := cmdCtx.Services.Users.List(ctx, opts.request())
	if err != nil {
		return err
	}
	if err := printUserTable(os.Stdout, page.Content); err != nil {
		return err
	}
	return printPageFooter(os.Stdout, page.TotalElements, page.Number, page.TotalPages)
}

func runListAdmins(cmdCtx *commandContext, _ []string) error {
	if err := requireRole(cmdCtx, domainauth.RoleSuperAdmin); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	admins, err := cmdCtx.Services.Users.ActiveAdmins(ctx)
	if err != nil {
		return err
	}
	return printUserTable(os.Stdout, admins)
}

func runGetUser(cmdCtx *commandContext, args []string) error {
	opts, err := parseIDFlags("get-user", args)
	if err != nil {
		return err
	}
	if err := requireRole(cmdCtx, domainauth.RoleSuperAdmin); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	user, err := cmdCtx.Services.Users.GetByID(ctx, opts.ID)
	if err != nil {
		return err
	}
	return printUserTable(os.Stdout, []model.User{*user})
}

func runSearchUsers(cmdCtx *commandContext, args []string) error {
	var term string
	fs := flag.NewFlagSet("search-users", flag.ContinueOnError)
	fs.StringVar(&term, "term", "", "Search term")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse search-users flags: %w", err)
	}
	if term == "" {
		return errors.New("-term is required")
	}
	if err := requireRole(cmdCtx, domainauth.RoleSuperAdmin); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	users, err := cmdCtx.Services.Users.Search(ctx, term)
	if err != nil {
		return err
	}
	return printUserTable(os.Stdout, users)
}

func runCreateUser(cmdCtx *commandContext, args []string) error {
	var req model.CreateUserRequest
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	fs.StringVar(&req.FirstName, "first-name", "", "First name")
	fs.StringVar(&req.LastName, "last-name", "", "Last name")
	fs.StringVar(&req.Email, "email", "", "Email address")
	fs.StringVar(&req.Password, "password", "", "Initial password")
	fs.StringVar(&req.Role, "role", string(domainauth.RoleAdmin), "Role: ADMIN or SUPERADMIN")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse create-user flags: %w", err)
	}
	if err := requireRole(cmdCtx, domainauth.RoleSuperAdmin); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	user, err := cmdCtx.Services.Users.Create(ctx, &req)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Info("user created", "id", user.ID, "email", user.Email, "role", user.Role)
	return printUserTable(os.Stdout, []model.User{*user})
}

func runUpdateUser(cmdCtx *commandContext, args []string) error {
	var req model.UpdateUserRequest
	var id int64
	var password string
	fs := flag.NewFlagSet("update-user", flag.ContinueOnError)
	fs.Int64Var(&id, "id", 0, "Administrator account ID")
	fs.StringVar(&req.FirstName, "first-name", "", "First name")
	fs.StringVar(&req.LastName, "last-name", "", "Last name")
	fs.StringVar(&req.Email, "email", "", "Email address")
	fs.StringVar(&password, "password", "", "New password (omit to keep the current one)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse update-user flags: %w", err)
	}
	if id <= 0 {
		return errors.New("-id is required and must be positive")
	}
	if password != "" {
		req.Password = &password
	}
	if err := requireRole(cmdCtx, domainauth.RoleSuperAdmin); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	user, err := cmdCtx.Services.Users.Update(ctx, id, &req)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Info("user updated", "id", user.ID)
	return printUserTable(os.Stdout, []model.User{*user})
}

func runActivateUser(cmdCtx *commandContext, args []string) error {
	opts, err := parseIDFlags("activate-user", args)
	if err != nil {
		return err
	}
	if err := requireRole(cmdCtx, domainauth.RoleSuperAdmin); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	if err := cmdCtx.Services.Users.Activate(ctx, opts.ID); err != nil {
		return err
	}
	return writef(os.Stdout, "User %d activated.\n", opts.ID)
}

func runDeactivateUser(cmdCtx *commandContext, args []string) error {
	opts, err := parseIDFlags("deactivate-user", args)
	if err != nil {
		return err
	}
	if err := requireRole(cmdCtx, domainauth.RoleSuperAdmin); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	if err := cmdCtx.Services.Users.Deactivate(ctx, opts.ID); err != nil {
		return err
	}
	return writef(os.Stdout, "User %d deactivated.\n", opts.ID)
}

func runUserStats(cmdCtx *commandContext, _ []string) error {
	if err := requireRole(cmdCtx, domainauth.RoleSuperAdmin); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	stats, err := cmdCtx.Services.Users.Statistics(ctx)
	if err != nil {
		return err
	}
	return printUserStats(os.Stdout, stats)
}
