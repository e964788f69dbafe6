package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

type loginOptions struct {
	Email    string
	Password string
}

func parseLoginFlags(args []string) (loginOptions, error) {
	var opts loginOptions
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.StringVar(&opts.Email, "email", "", "Account email")
	fs.StringVar(&opts.Password, "password", "", "Account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return loginOptions{}, fmt.Errorf("parse login flags: %w", err)
	}
	return opts, nil
}

func runLogin(cmdCtx *commandContext, args []string) error {
	opts, err := parseLoginFlags(args)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	if opts.Email == "" {
		opts.Email, err = promptLine(reader, "Email: ")
		if err != nil {
			return err
		}
	}
	if opts.Password == "" {
		opts.Password, err = promptLine(reader, "Password: ")
		if err != nil {
			return err
		}
	}

	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	sess, err := cmdCtx.Services.Auth.Login(ctx, opts.Email, opts.Password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	cmdCtx.Logger.Info("signed in",
		"email", sess.User.Email,
		"role", sess.User.Role,
		"expires_at", sess.ExpiresAt.Format(time.RFC3339),
	)
	return writef(os.Stdout, "Signed in as %s (%s). Session expires %s.\n",
		sess.User.Email, sess.User.Role, sess.ExpiresAt.Format(time.RFC3339))
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	if err := writef(os.Stderr, "%s", prompt); err != nil {
		return "", fmt.Errorf("print prompt: %w", err)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("empty input")
	}
	return line, nil
}

func runLogout(cmdCtx *commandContext, _ []string) error {
	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	if err := cmdCtx.Services.Auth.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return writeln(os.Stdout, "Signed out.")
}

func runWhoami(cmdCtx *commandContext, _ []string) error {
	ctx, cancel := contextWithTimeout(cmdCtx)
	defer cancel()

	user, err := cmdCtx.Services.Auth.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("current user: %w", err)
	}
	if user == nil {
		return writeln(os.Stdout, "Not signed in.")
	}
	return writef(os.Stdout, "%s <%s> role=%s\n", user.FullName, user.Email, user.Role)
}
