// Command brace validates and renders placeholder templates from the shell.
//
// The check subcommand is the ahead-of-use validation tier: it runs the full
// template scan against a declared argument count and exits non-zero on any
// violation, which makes it usable from go:generate directives and CI. The
// render subcommand is the runtime tier: it formats command-line arguments
// through a template and prints the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/brace"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})

	root := &cobra.Command{
		Use:           "brace",
		Short:         "Validate and render {index:fill align width.precision} templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(checkCommand(logger), renderCommand(logger))

	return root.ExecuteContext(ctx)
}

func checkCommand(logger *log.Logger) *cobra.Command {
	var numArgs int
	cmd := &cobra.Command{
		Use:   "check template...",
		Short: "Validate templates against an argument count without rendering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, tmpl := range args {
				if _, err := brace.Compile(tmpl, numArgs); err != nil {
					logger.Error("invalid template", "template", tmpl, "err", err)
					failed++
					continue
				}
				logger.Debug("template ok", "template", tmpl, "args", numArgs)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d template(s) invalid", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&numArgs, "args", "n", 0, "number of arguments the template must consume")
	return cmd
}

func renderCommand(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "render template [arg...]",
		Short: "Render a template against command-line arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, len(args)-1)
			for i, raw := range args[1:] {
				values[i] = coerce(raw)
				logger.Debug("argument", "index", i, "value", values[i])
			}
			out, err := brace.Format(args[0], values...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// coerce gives shell arguments a useful type: integer, then float, then
// boolean, falling back to text.
func coerce(s string) any {
	if v, err := brace.ParseInt(s, 10); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	if s == "true" || s == "false" {
		return s == "true"
	}
	return s
}
