package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mica/internal/diag"
	"mica/internal/front"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "check <file.mica>",
		Short:         "Translate a file and report diagnostics",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], cmd)
		},
	}

	return cmd
}

func runCheck(path string, cmd *cobra.Command) error {
	startTime := time.Now()

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	_, terr := front.TranslateSource(string(source), front.SourceName(path))

	duration := formatDuration(time.Since(startTime))
	if terr != nil {
		reporter := diag.NewReporter(path, string(source))
		fmt.Fprint(cmd.ErrOrStderr(), reporter.Format(terr))
		color.Red("Check failed after %s", duration)
		return errors.New("check failed")
	}

	color.Green("Successfully checked %s in %s", path, duration)
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
