package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/vippsas/sqltext/sqldiff"
)

var (
	diffSideBySide bool
	diffPatch      bool
	diffContext    int

	diffCmd = &cobra.Command{
		Use:   "diff <original> <modified>",
		Short: "Compares two SQL scripts line by line",
		Long: `Compares two SQL scripts line by line. The default output interleaves both scripts; --side-by-side
prints them as two columns and --patch prints a unified diff that patch(1) understands. Either file may
be - for stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			modified, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if diffPatch {
				patch, err := sqldiff.Patch(original, modified, args[0], args[1], diffContext)
				if err != nil {
					return err
				}
				_, err = io.WriteString(w, patch)
				return err
			}

			result := sqldiff.Compare(original, modified)
			if !result.HasChanges {
				fmt.Fprintln(w, "No differences")
				return nil
			}
			if diffSideBySide {
				renderSideBySide(w, result.Changes)
			} else {
				renderUnified(w, result.Changes)
			}
			fmt.Fprintf(w, "%s %s %s\n",
				addedFmt(fmt.Sprintf("+%d", result.Additions)),
				removedFmt(fmt.Sprintf("-%d", result.Deletions)),
				faintFmt(fmt.Sprintf("%d unchanged", result.Unchanged)))
			return nil
		},
	}
)

func renderUnified(w io.Writer, changes []sqldiff.Change) {
	for _, row := range sqldiff.Unified(changes) {
		switch row.Kind {
		case sqldiff.Added:
			fmt.Fprintln(w, addedFmt(fmt.Sprintf("%4s %4d + %s", "", row.NewLine, row.Text)))
		case sqldiff.Removed:
			fmt.Fprintln(w, removedFmt(fmt.Sprintf("%4d %4s - %s", row.OldLine, "", row.Text)))
		default:
			fmt.Fprintf(w, "%4d %4d   %s\n", row.OldLine, row.NewLine, row.Text)
		}
	}
}

// renderSideBySide pairs removed lines with the added lines that replace
// them, so a changed line shows up on one table row.
func renderSideBySide(w io.Writer, changes []sqldiff.Change) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Original", "#", "Modified"})

	var removed []sqldiff.Row
	flush := func(added []sqldiff.Row) {
		for i := 0; i < len(removed) || i < len(added); i++ {
			row := table.Row{"", "", "", ""}
			if i < len(removed) {
				row[0] = strconv.Itoa(removed[i].OldLine)
				row[1] = removedFmt(removed[i].Text)
			}
			if i < len(added) {
				row[2] = strconv.Itoa(added[i].NewLine)
				row[3] = addedFmt(added[i].Text)
			}
			t.AppendRow(row)
		}
		removed = nil
	}

	rows := sqldiff.Unified(changes)
	for i := 0; i < len(rows); i++ {
		switch rows[i].Kind {
		case sqldiff.Removed:
			removed = append(removed, rows[i])
		case sqldiff.Added:
			var added []sqldiff.Row
			for ; i < len(rows) && rows[i].Kind == sqldiff.Added; i++ {
				added = append(added, rows[i])
			}
			i--
			flush(added)
		default:
			flush(nil)
			t.AppendRow(table.Row{rows[i].OldLine, rows[i].Text, rows[i].NewLine, rows[i].Text})
		}
	}
	flush(nil)
	t.Render()
}

func init() {
	diffCmd.Flags().BoolVar(&diffSideBySide, "side-by-side", false, "print the scripts as two columns")
	diffCmd.Flags().BoolVar(&diffPatch, "patch", false, "print a unified diff")
	diffCmd.Flags().IntVar(&diffContext, "context", 3, "lines of context in --patch output")
	rootCmd.AddCommand(diffCmd)
}
