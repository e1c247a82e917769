/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package cobrau

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/edmfacets/pkg/goutils/logger"
)

/*

Persistent flags:

  -v, --verbose   Print verbose output (detailed level)
      --trace     Print trace output   (most detailed level)

*/

const (
	flag_Verbose = "verbose"
	flag_Trace   = "trace"
)

// Returns root command with version subcommand, verbose and trace flags.
//
// args are command line arguments including program name.
func PrepareRootCmd(use string, short string, args []string, version string, cmds ...*cobra.Command) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   use,
		Short: short,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if ok, _ := cmd.Flags().GetBool(flag_Trace); ok {
				logger.SetLogLevel(logger.LogLevelTrace)
				logger.Verbose("Using logger.LogLevelTrace...")
			} else if ok, _ := cmd.Flags().GetBool(flag_Verbose); ok {
				logger.SetLogLevel(logger.LogLevelVerbose)
				logger.Verbose("Using logger.LogLevelVerbose...")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolP(flag_Verbose, "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool(flag_Trace, false, "Enable extremely verbose output")

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Root().Name(), version)
		},
	}

	if len(args) > 0 {
		rootCmd.SetArgs(args[1:])
	}
	rootCmd.AddCommand(cmds...)
	rootCmd.AddCommand(versionCmd)
	rootCmd.InitDefaultCompletionCmd()
	return rootCmd
}
