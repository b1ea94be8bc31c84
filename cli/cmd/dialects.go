package cmd

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/vippsas/sqltext/dialect"
)

var grammarNames = map[dialect.GrammarKind]string{
	dialect.GrammarGeneric: "generic",
	dialect.GrammarVitess:  "vitess",
	dialect.GrammarPgQuery: "pg_query",
}

var familyNames = map[dialect.Family]string{
	dialect.FamilyANSI:     "ansi",
	dialect.FamilyPostgres: "postgres",
	dialect.FamilyTSQL:     "t-sql",
}

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "Lists the supported SQL dialects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Name", "Label", "Aliases", "Lexer", "Grammar", "Convert"})
		for _, info := range dialect.All() {
			convertible := ""
			if info.Converter {
				convertible = "yes"
			}
			t.AppendRow(table.Row{
				info.Name,
				info.Label,
				strings.Join(info.Aliases, ", "),
				familyNames[info.Family],
				grammarNames[info.Grammar],
				convertible,
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dialectsCmd)
}
