package main

import (
	"os"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/criseulises/customer-admin-go/internal/domain/auth"
	"github.com/criseulises/customer-admin-go/internal/domain/model"
)

func runDashboard(cmdCtx *commandContext, _ []string) error {
	if err := requireRole(cmdCtx, domainauth.RoleSuperAdmin); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	var customerStats *model.CustomerStatistics
	var userStats *model.UserStatistics

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := cmdCtx.Services.Customers.Statistics(gctx)
		if err != nil {
			return err
		}
		customerStats = stats
		return nil
	})
	g.Go(func() error {
		stats, err := cmdCtx.Services.Users.Statistics(gctx)
		if err != nil {
			return err
		}
		userStats = stats
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := writeln(os.Stdout, "Customers"); err != nil {
		return err
	}
	if err := printCustomerStats(os.Stdout, customerStats); err != nil {
		return err
	}
	if err := writeln(os.Stdout, "\nAdministrators"); err != nil {
		return err
	}
	return printUserStats(os.Stdout, userStats)
}
