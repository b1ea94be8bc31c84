package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vippsas/sqltext"
	"github.com/vippsas/sqltext/go/mapfs"
)

var errInvalid = errors.New("invalid SQL")

var (
	validateAll  bool
	validateJSON bool

	validateCmd = &cobra.Command{
		Use:   "validate [files...]",
		Short: "Checks the syntax of SQL scripts",
		Long: `Checks the syntax of SQL scripts in the configured dialect. Without arguments the script is read
from stdin; with --all every *.sql-file below --directory is checked. Files are checked concurrently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			logger := logrus.StandardLogger()
			closeGrammars, err := cfg.ConfigureGrammars(logger)
			if err != nil {
				return err
			}
			defer func() { _ = closeGrammars() }()

			toolkit := sqltext.New(sqltext.Options{Logger: logger, PreviewLength: cfg.Validate.PreviewLength})

			if !validateAll && (len(args) == 0 || (len(args) == 1 && args[0] == "-")) {
				input, err := readInput(cmd, "-")
				if err != nil {
					return err
				}
				result := toolkit.Validate(input, cfg.Dialect)
				if validateJSON {
					if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
						return err
					}
				} else if result.IsValid {
					fmt.Fprintln(cmd.OutOrStdout(), okFmt("Valid "+cfg.Dialect.Label()))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), errorFmt(result.Error.String()))
				}
				if !result.IsValid {
					return errInvalid
				}
				return nil
			}

			if validateAll && len(args) > 0 {
				_ = cmd.Help()
				return errors.New("--all takes no file arguments")
			}
			fsys := os.DirFS(directory)
			var named mapfs.MapFS
			if !validateAll {
				named = mapfs.New(args...)
				fsys = named
			}

			files, err := toolkit.ValidateFiles(cmd.Context(), fsys, cfg.Dialect)
			var diagnostics sqltext.DiagnosticsError
			if errors.As(err, &diagnostics) {
				for _, d := range diagnostics.Errors {
					if named != nil {
						d.File = named.Path(d.File)
					}
					fmt.Fprintln(cmd.OutOrStdout(), errorFmt(d.String()))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d of %d files invalid\n", len(diagnostics.Errors), len(files))
				return errInvalid
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okFmt(fmt.Sprintf("%d files valid %s", len(files), cfg.Dialect.Label())))
			return nil
		},
	}
)

func init() {
	validateCmd.Flags().BoolVar(&validateAll, "all", false, "check every *.sql-file below --directory")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "print the result of a stdin check as JSON")
	rootCmd.AddCommand(validateCmd)
}
