// Package cli implements the registro command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"registro/config"
	"registro/config/setup"

	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for a failed command
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// env is shared by all commands of one invocation
type env struct {
	configFile string
	dbPath     string
	jsonOut    bool

	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

// NewRootCmd builds the command tree writing to out and errOut
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	e := &env{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "registro",
		Short: "Registro keeps a list of text records and fetches class schedules",
		Long: `Registro stores free-form text records in a local SQLite database and
fetches class schedules ("horarios") from the schedule API, rendering them
as HTML or exporting them to PDF.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(e.configFile)
			if err != nil {
				return userError("load config: %w", err)
			}
			if e.dbPath != "" {
				cfg.DBPath = e.dbPath
			}
			e.cfg = cfg
			e.logger = setup.NewLogger(cfg, e.errOut)
			slog.SetDefault(e.logger)
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&e.configFile, "config", "", "config file (default: ./registro.yaml)")
	root.PersistentFlags().StringVar(&e.dbPath, "db", "", "SQLite database path (overrides DB_PATH)")
	root.PersistentFlags().BoolVar(&e.jsonOut, "json", false, "output as JSON")

	root.AddCommand(newServeCmd(e))
	root.AddCommand(newRecordsCmd(e))
	root.AddCommand(newScheduleCmd(e))

	return root
}

// Run executes the CLI with args and returns the process exit code
func Run(args []string, out, errOut io.Writer) int {
	root := NewRootCmd(out, errOut)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}

	fmt.Fprintln(errOut, "Error:", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// Unknown commands, bad flags and wrong argument counts
	return exitUserError
}

// Execute runs the CLI against the process arguments
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
