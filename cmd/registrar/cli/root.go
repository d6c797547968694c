// Package cli exposes the registrar as cobra commands.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odyssey-erp/registrar/internal/command"
)

// Executor runs one line of user input.
type Executor interface {
	Execute(ctx context.Context, raw string) (command.Result, error)
}

// Prompter reports the current privilege for the shell prompt.
type Prompter interface {
	Prompt() string
}

// MetricsWriter dumps collected metrics.
type MetricsWriter interface {
	WriteText(w io.Writer) error
}

// Options wires the commands. Nil streams default to the process streams.
type Options struct {
	Executor Executor
	Prompter Prompter
	Metrics  MetricsWriter
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// ErrCommandFailed is returned by exec when the command reported an error.
var ErrCommandFailed = errors.New("cli: command failed")

// NewRoot builds the registrar command tree. Running it without a
// subcommand starts the interactive shell.
func NewRoot(opts Options) *cobra.Command {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	shell := &cobra.Command{
		Use:   "shell",
		Short: "Read commands from standard input until exit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd.Context(), opts)
		},
	}

	exec := &cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Run a single command and print its result.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.Executor.Execute(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			render(opts.Stdout, res)
			if res.Failed() {
				return ErrCommandFailed
			}
			return nil
		},
	}

	metrics := &cobra.Command{
		Use:   "metrics",
		Short: "Replay commands from standard input, then print the collected metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Metrics == nil {
				return errors.New("cli: metrics not configured")
			}
			replay := opts
			replay.Stdout = io.Discard
			replay.Prompter = nil
			if err := runShell(cmd.Context(), replay); err != nil {
				return err
			}
			return opts.Metrics.WriteText(opts.Stdout)
		},
	}

	root := &cobra.Command{
		Use:           "registrar",
		Short:         "Manage persons, exams, assessments and the canteen from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          shell.RunE,
	}
	root.SetIn(opts.Stdin)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)
	root.AddCommand(shell, exec, metrics)
	return root
}

func runShell(ctx context.Context, opts Options) error {
	scanner := bufio.NewScanner(opts.Stdin)
	for {
		if opts.Prompter != nil {
			fmt.Fprintf(opts.Stdout, "%s> ", opts.Prompter.Prompt())
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("cli: read input: %w", err)
			}
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := opts.Executor.Execute(ctx, line)
		if err != nil {
			return err
		}
		render(opts.Stdout, res)
		if res.Exit {
			return nil
		}
	}
}
