// Package main is the entry point for the instance-port-report application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/OpenSecOps-Org/Foundation-instance-port-report/model"
	"github.com/OpenSecOps-Org/Foundation-instance-port-report/service/flag"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	a := newApp(defaultDeps(), model.VersionInfo{Version: version, Commit: commit, Date: date})
	root := a.newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// app holds the parsed flags and the service constructors of one invocation.
type app struct {
	deps        deps
	versionInfo model.VersionInfo
	flagService flag.Service
	out         io.Writer
	errOut      io.Writer
}

func newApp(d deps, versionInfo model.VersionInfo) *app {
	return &app{deps: d, versionInfo: versionInfo, out: os.Stdout, errOut: os.Stderr}
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "instance-port-report",
		Short:         "Report EC2 instances and the ports their security groups expose",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.reportCommand(cmd.Context())
		},
	}
	a.flagService = flag.NewService(root.PersistentFlags())

	root.AddCommand(a.newReportCmd(), a.newAccountsCmd(), a.newRegionsCmd(), a.newRenderCmd())
	return root
}

func (a *app) newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Scan accounts and regions, then print, save or email the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.reportCommand(cmd.Context())
		},
	}
}

func (a *app) newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the active accounts of the organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags, err := a.flagService.GetParsedFlags()
			if err != nil {
				return fmt.Errorf("failed to parse flags: %w", err)
			}
			return a.runAccounts(cmd.Context(), flags)
		},
	}
}

func (a *app) newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Print the regions a report would cover",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags, err := a.flagService.GetParsedFlags()
			if err != nil {
				return fmt.Errorf("failed to parse flags: %w", err)
			}
			return a.runRegions(cmd.Context(), flags)
		},
	}
}

func (a *app) newRenderCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a report from a JSON scan export without calling EC2",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags, err := a.flagService.GetParsedFlags()
			if err != nil {
				return fmt.Errorf("failed to parse flags: %w", err)
			}
			flags.Input = input
			return a.runRender(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Scan export written with --output json")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (a *app) reportCommand(ctx context.Context) error {
	flags, err := a.flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	if flags.Version {
		a.printVersion()
		return nil
	}

	return a.runReport(ctx, flags)
}

func (a *app) printVersion() {
	fmt.Fprint(a.out, a.versionInfo)
}
