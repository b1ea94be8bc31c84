package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	errorFmt   = color.New(color.FgRed, color.Bold).SprintFunc()
	okFmt      = color.New(color.FgGreen).SprintFunc()
	removedFmt = color.New(color.FgRed).SprintFunc()
	addedFmt   = color.New(color.FgGreen).SprintFunc()
	faintFmt   = color.New(color.Faint).SprintFunc()
)

// readInput reads the named file, or stdin when name is "-".
func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		buf, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		return string(buf), nil
	}
	buf, err := os.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", name)
	}
	return string(buf), nil
}

// inputName is the single optional file argument, "-" when absent.
func inputName(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
