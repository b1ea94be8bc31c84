package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vippsas/sqltext/minify"
)

var (
	minifyKeepComments bool
	minifyJSON         bool

	minifyCmd = &cobra.Command{
		Use:   "minify [file]",
		Short: "Shrinks a SQL script",
		Long: `Collapses whitespace and removes comments of a SQL script, leaving string literals and quoted
identifiers untouched. The script is read from the file, or from stdin when none is given. Size statistics
are printed to stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			input, err := readInput(cmd, inputName(args))
			if err != nil {
				return err
			}

			opts := cfg.Minify
			if minifyKeepComments {
				opts.RemoveComments = false
			}
			result := minify.Minify(input, opts)
			if minifyJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			if !result.Success {
				return errors.New(result.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.MinifiedSQL)
			fmt.Fprintln(cmd.ErrOrStderr(), faintFmt(fmt.Sprintf("%d -> %d characters, %d%% smaller",
				result.OriginalSize, result.MinifiedSize, result.Savings)))
			return nil
		},
	}
)

func init() {
	minifyCmd.Flags().BoolVar(&minifyKeepComments, "keep-comments", false, "keep comments even if sqltext.yaml removes them")
	minifyCmd.Flags().BoolVar(&minifyJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(minifyCmd)
}
