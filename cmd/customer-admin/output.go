package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/criseulises/customer-admin-go/internal/domain/model"
)

const commandTimeout = 2 * time.Minute

func contextWithTimeout(cmdCtx *commandContext) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmdCtx.Ctx, commandTimeout)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, args...)
	return err
}

func printCustomerTable(w io.Writer, customers []model.Customer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "ID\tName\tEmail\tDocument\tActive\tAddresses"); err != nil {
		return fmt.Errorf("write customer header: %w", err)
	}
	for i := range customers {
		c := &customers[i]
		if err := writef(tw, "%d\t%s\t%s\t%s %s\t%t\t%d\n",
			c.ID, c.FullName, c.Email, c.DocumentType, c.DocumentNumber, c.Active, len(c.Addresses)); err != nil {
			return fmt.Errorf("write customer row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush customer table: %w", err)
	}
	return nil
}

func printCustomerDetail(w io.Writer, c *model.Customer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"ID", fmt.Sprintf("%d", c.ID)},
		{"Name", c.FullName},
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Document", fmt.Sprintf("%s %s", c.DocumentType, c.DocumentNumber)},
		{"Active", fmt.Sprintf("%t", c.Active)},
		{"Created", c.CreatedAt.Format(time.RFC3339)},
	}
	for _, row := range rows {
		if err := writef(tw, "%s\t%s\n", row.label, row.value); err != nil {
			return fmt.Errorf("write customer field: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush customer detail: %w", err)
	}

	if len(c.Addresses) == 0 {
		return nil
	}
	if err := writeln(w, "\nAddresses:"); err != nil {
		return fmt.Errorf("write address header: %w", err)
	}
	atw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writeln(atw, "Street\tCity\tCountry\tType\tPrimary"); err != nil {
		return fmt.Errorf("write address columns: %w", err)
	}
	for _, addr := range c.Addresses {
		if err := writef(atw, "%s\t%s\t%s\t%s\t%t\n",
			addr.Street, addr.City, addr.Country, addr.Type, addr.IsPrimary); err != nil {
			return fmt.Errorf("write address row: %w", err)
		}
	}
	if err := atw.Flush(); err != nil {
		return fmt.Errorf("flush address table: %w", err)
	}
	return nil
}

func printUserTable(w io.Writer, users []model.User) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "ID\tName\tEmail\tRole\tActive"); err != nil {
		return fmt.Errorf("write user header: %w", err)
	}
	for i := range users {
		u := &users[i]
		if err := writef(tw, "%d\t%s\t%s\t%s\t%t\n",
			u.ID, u.FullName, u.Email, u.Role, u.Active); err != nil {
			return fmt.Errorf("write user row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush user table: %w", err)
	}
	return nil
}

func printPageFooter(w io.Writer, totalElements int64, number, totalPages int) error {
	return writef(w, "\nPage %d of %d (%d total)\n", number+1, totalPages, totalElements)
}

func printCustomerStats(w io.Writer, stats *model.CustomerStatistics) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "Metric\tValue"); err != nil {
		return fmt.Errorf("write stats header: %w", err)
	}
	if err := writef(tw, "Total Customers\t%d\n", stats.Total); err != nil {
		return fmt.Errorf("write total customers: %w", err)
	}
	if err := writef(tw, "Active\t%d\n", stats.Active); err != nil {
		return fmt.Errorf("write active customers: %w", err)
	}
	if err := writef(tw, "Inactive\t%d\n", stats.Inactive); err != nil {
		return fmt.Errorf("write inactive customers: %w", err)
	}
	if err := writef(tw, "Created This Month\t%d\n", stats.CreatedThisMonth); err != nil {
		return fmt.Errorf("write created this month: %w", err)
	}
	if err := writef(tw, "Created This Week\t%d\n", stats.CreatedThisWeek); err != nil {
		return fmt.Errorf("write created this week: %w", err)
	}
	if err := writef(tw, "Avg Addresses\t%.2f\n", stats.AverageAddressesPerCustomer); err != nil {
		return fmt.Errorf("write avg addresses: %w", err)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush customer stats: %w", err)
	}
	return nil
}

func printUserStats(w io.Writer, stats *model.UserStatistics) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "Metric\tValue"); err != nil {
		return fmt.Errorf("write stats header: %w", err)
	}
	if err := writef(tw, "Total Users\t%d\n", stats.Total); err != nil {
		return fmt.Errorf("write total users: %w", err)
	}
	if err := writef(tw, "Active\t%d\n", stats.Active); err != nil {
		return fmt.Errorf("write active users: %w", err)
	}
	if err := writef(tw, "Inactive\t%d\n", stats.Inactive); err != nil {
		return fmt.Errorf("write inactive users: %w", err)
	}
	if err := writef(tw, "Admins\t%d\n", stats.Admins); err != nil {
		return fmt.Errorf("write admins: %w", err)
	}
	if err := writef(tw, "Super Admins\t%d\n", stats.SuperAdmins); err != nil {
		return fmt.Errorf("write super admins: %w", err)
	}
	if err := writef(tw, "Created This Month\t%d\n", stats.CreatedThisMonth); err != nil {
		return fmt.Errorf("write created this month: %w", err)
	}
	if err := writef(tw, "Created This Week\t%d\n", stats.CreatedThisWeek); err != nil {
		return fmt.Errorf("write created this week: %w", err)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush user stats: %w", err)
	}
	return nil
}

// readRequestFile loads a JSON request document from path, or from stdin
// when path is "-".
func readRequestFile(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request file: %w", err)
	}
	return data, nil
}
