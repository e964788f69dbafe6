package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/criseulises/customer-admin-go/internal/domain/model"
)

type pageOptions struct {
	Page int
	Size int
	Sort string
}

func addPageFlags(fs *flag.FlagSet, opts *pageOptions) {
	fs.IntVar(&opts.Page, "page", 0, "Zero-based page index")
	fs.IntVar(&opts.Size, "size", 20, "Page size")
	fs.StringVar(&opts.Sort, "sort", "", "Sort expression, e.g. createdAt,desc")
}

func (o pageOptions) request() model.PageRequest {
	return model.PageRequest{Page: o.Page, Size: o.Size, Sort: o.Sort}
}

type idOptions struct {
	ID int64
}

func parseIDFlags(name string, args []string) (idOptions, error) {
	var opts idOptions
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Int64Var(&opts.ID, "id", 0, "Record ID")
	if err := fs.Parse(args); err != nil {
		return idOptions{}, fmt.Errorf("parse %s flags: %w", name, err)
	}
	if opts.ID <= 0 {
		return idOptions{}, errors.New("-id is required and must be positive")
	}
	return opts, nil
}

func runListCustomers(cmdCtx *commandContext, args []string) error {
	var opts pageOptions
	fs := flag.NewFlagSet("list-customers", flag.ContinueOnError)
	addPageFlags(fs, &opts)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse list-customers flags: %w", err)
	}
	if err := requireRole(cmdCtx); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	page, err := cmdCtx.Services.Customers.List(ctx, opts.request())
	if err != nil {
		return err
	}
	if err := printCustomerTable(os.Stdout, page.Content); err != nil {
		return err
	}
	return printPageFooter(os.Stdout, page.TotalElements, page.Number, page.TotalPages)
}

func runSearchCustomers(cmdCtx *commandContext, args []string) error {
	var opts pageOptions
	var term string
	fs := flag.NewFlagSet("search-customers", flag.ContinueOnError)
	fs.StringVar(&term, "term", "", "Search term")
	addPageFlags(fs, &opts)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse search-customers flags: %w", err)
	}
	if term == "" {
		return errors.New("-term is required")
	}
	if err := requireRole(cmdCtx); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	page, err := cmdCtx.Services.Customers.Search(ctx, term, opts.request())
	if err != nil {
		return err
	}
	if err := printCustomerTable(os.Stdout, page.Content); err != nil {
		return err
	}
	return printPageFooter(os.Stdout, page.TotalElements, page.Number, page.TotalPages)
}

func runGetCustomer(cmdCtx *commandContext, args []string) error {
	opts, err := parseIDFlags("get-customer", args)
	if err != nil {
		return err
	}
	if err := requireRole(cmdCtx); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	customer, err := cmdCtx.Services.Customers.GetByID(ctx, opts.ID)
	if err != nil {
		return err
	}
	return printCustomerDetail(os.Stdout, customer)
}

func runCreateCustomer(cmdCtx *commandContext, args []string) error {
	var file string
	fs := flag.NewFlagSet("create-customer", flag.ContinueOnError)
	fs.StringVar(&file, "file", "", "JSON request file, or - for stdin")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse create-customer flags: %w", err)
	}
	if file == "" {
		return errors.New("-file is required")
	}
	if err := requireRole(cmdCtx); err != nil {
		return err
	}

	data, err := readRequestFile(file)
	if err != nil {
		return err
	}
	var req model.CreateCustomerRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode create request: %w", err)
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	customer, err := cmdCtx.Services.Customers.Create(ctx, &req)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Info("customer created", "id", customer.ID, "email", customer.Email)
	return printCustomerDetail(os.Stdout, customer)
}

func runUpdateCustomer(cmdCtx *commandContext, args []string) error {
	var file string
	var id int64
	fs := flag.NewFlagSet("update-customer", flag.ContinueOnError)
	fs.Int64Var(&id, "id", 0, "Customer ID")
	fs.StringVar(&file, "file", "", "JSON request file, or - for stdin")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse update-customer flags: %w", err)
	}
	if id <= 0 {
		return errors.New("-id is required and must be positive")
	}
	if file == "" {
		return errors.New("-file is required")
	}
	if err := requireRole(cmdCtx); err != nil {
		return err
	}

	data, err := readRequestFile(file)
	if err != nil {
		return err
	}
	var req model.UpdateCustomerRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode update request: %w", err)
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	customer, err := cmdCtx.Services.Customers.Update(ctx, id, &req)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Info("customer updated", "id", customer.ID)
	return printCustomerDetail(os.Stdout, customer)
}

func runActivateCustomer(cmdCtx *commandContext, args []string) error {
	opts, err := parseIDFlags("activate-customer", args)
	if err != nil {
		return err
	}
	if err := requireRole(cmdCtx); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	if err := cmdCtx.Services.Customers.Activate(ctx, opts.ID); err != nil {
		return err
	}
	return writef(os.Stdout, "Customer %d activated.\n", opts.ID)
}

func runDeactivateCustomer(cmdCtx *commandContext, args []string) error {
	opts, err := parseIDFlags("deactivate-customer", args)
	if err != nil {
		return err
	}
	if err := requireRole(cmdCtx); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	if err := cmdCtx.Services.Customers.Deactivate(ctx, opts.ID); err != nil {
		return err
	}
	return writef(os.Stdout, "Customer %d deactivated.\n", opts.ID)
}

func runCustomerStats(cmdCtx *commandContext, _ []string) error {
	if err := requireRole(cmdCtx); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	stats, err := cmdCtx.Services.Customers.Statistics(ctx)
	if err != nil {
		return err
	}
	return printCustomerStats(os.Stdout, stats)
}

func runCustomersByUser(cmdCtx *commandContext, args []string) error {
	var opts pageOptions
	var userID int64
	fs := flag.NewFlagSet("customers-by-user", flag.ContinueOnError)
	fs.Int64Var(&userID, "user-id", 0, "Administrator account ID")
	addPageFlags(fs, &opts)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse customers-by-user flags: %w", err)
	}
	if userID <= 0 {
		return errors.New("-user-id is required and must be positive")
	}
	if err := requireRole(cmdCtx); err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	page, err := cmdCtx.Services.Customers.ListByUser(ctx, userID, opts.request())
	if err != nil {
		return err
	}
	if err := printCustomerTable(os.Stdout, page.Content); err != nil {
		return err
	}
	return printPageFooter(os.Stdout, page.TotalElements, page.Number, page.TotalPages)
}
