package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sqltext",
		Short:        "sqltext",
		SilenceUsage: true,
		Long:         `CLI tool for checking, minifying, comparing and converting SQL scripts across dialects. See README.md.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	directory   string
	dialectName string
	verbose     bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory holding sqltext.yaml and .env; validate --all scans its subtree for *.sql-files")
	rootCmd.PersistentFlags().StringVar(&dialectName, "dialect", "", "SQL dialect; overrides the dialect of sqltext.yaml (see the dialects command)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	return rootCmd.Execute()
}
