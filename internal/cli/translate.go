package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mica/internal/diag"
	"mica/internal/front"
	"mica/internal/ir"
)

// NewTranslateCommand creates the translate command.
func NewTranslateCommand() *cobra.Command {
	var cse bool

	cmd := &cobra.Command{
		Use:           "translate <file.mica>",
		Short:         "Translate a file and print every produced function",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(args[0], cse, cmd)
		},
	}

	cmd.Flags().BoolVar(&cse, "cse", false, "eliminate common subexpressions before printing")

	return cmd
}

func runTranslate(path string, cse bool, cmd *cobra.Command) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	unit, terr := front.TranslateSource(string(source), front.SourceName(path))
	if terr != nil {
		reporter := diag.NewReporter(path, string(source))
		fmt.Fprint(cmd.ErrOrStderr(), reporter.Format(terr))
		return errors.New("translation failed")
	}

	out := cmd.OutOrStdout()
	for _, ref := range unit.Env.Symbols() {
		fn, ok := unit.Env.Resolve(ref)
		if !ok {
			continue
		}
		body := fn.Body
		if cse {
			body = ir.CSE(body)
		}
		printed := ir.Print(&ir.Lambda{Ref: fn.Ref, Params: fn.Params, Body: body})
		fmt.Fprintf(out, "%s = %s\n", ref.Label, printed)
	}
	fmt.Fprintf(out, "entry: %s\n", unit.Entry.Label)

	return nil
}
