package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
	"github.com/vippsas/sqltext/sqlparser"
)

var (
	scanFault bool

	scanCmd = &cobra.Command{
		Use:   "scan [file]",
		Short: "Dumps the lexical spans of a SQL script",
		Long: `Splits a SQL script into code, string literal, quoted identifier and comment spans using the lexical
rules of the configured dialect, and dumps them. Meant for debugging.`,
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

			spans := sqlparser.Classify(cfg.Dialect, input)
			p := repr.New(cmd.OutOrStdout(), repr.Indent("  "), repr.OmitEmpty(true))
			if scanFault {
				fault := spans.Fault()
				if fault == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "no lexical fault")
					return nil
				}
				p.Println(fault)
				return nil
			}
			p.Println(spans)
			return nil
		},
	}
)

func init() {
	scanCmd.Flags().BoolVar(&scanFault, "fault", false, "only print the first unterminated literal or comment")
	rootCmd.AddCommand(scanCmd)
}
