package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vippsas/sqltext"
	"github.com/vippsas/sqltext/convert"
	"github.com/vippsas/sqltext/dialect"
)

var (
	convertFrom    string
	convertTo      string
	convertExample bool

	convertCmd = &cobra.Command{
		Use:   "convert --from <dialect> --to <dialect> [file]",
		Short: "Converts a SQL script to another dialect with a language model",
		Long: `Converts a SQL script to another dialect by asking an OpenAI compatible language model. The
converted SQL is streamed to stdout as it arrives and the model's summary of the changes is printed to
stderr. The API key is read from OPENAI_API_KEY, also when set in .env. With --example the sample schema
of the source dialect is converted. Interrupting the command cancels the request.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			from, err := dialect.Parse(convertFrom)
			if err != nil {
				return err
			}
			to, err := dialect.Parse(convertTo)
			if err != nil {
				return err
			}

			var input string
			if convertExample {
				input = convert.ExampleSchema(from)
			} else if input, err = readInput(cmd, inputName(args)); err != nil {
				return err
			}

			completer, err := convert.NewOpenAI(cfg.Convert)
			if err != nil {
				return err
			}
			toolkit := sqltext.New(sqltext.Options{Logger: logrus.StandardLogger(), Completer: completer})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			w := cmd.OutOrStdout()
			written := 0
			result, err := toolkit.Convert(ctx, convert.Request{SQL: input, Source: from, Target: to}, func(r convert.Result) {
				written = printFrom(w, r.SQL, written)
			})
			var userErr *convert.UserError
			if errors.As(err, &userErr) {
				_ = cmd.Help()
				return err
			}
			if err != nil {
				return err
			}
			printFrom(w, result.SQL, written)
			if result.SQL != "" && !strings.HasSuffix(result.SQL, "\n") {
				fmt.Fprintln(w)
			}
			if result.Canceled {
				fmt.Fprintln(cmd.ErrOrStderr(), errorFmt("Conversion canceled"))
				return nil
			}
			if result.Summary != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), faintFmt(strings.TrimSpace(result.Summary)))
			}
			return nil
		},
	}
)

// printFrom prints the part of sql past the first n bytes and returns the
// new count. Results only grow while streaming.
func printFrom(w io.Writer, sql string, n int) int {
	if len(sql) > n {
		fmt.Fprint(w, sql[n:])
		return len(sql)
	}
	return n
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source dialect")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target dialect")
	convertCmd.Flags().BoolVar(&convertExample, "example", false, "convert the example schema of the source dialect")
	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}
