package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/genricoloni/deskwall/internal/config"
	"github.com/genricoloni/deskwall/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const (
	exitOK      = 0
	exitFailure = 1
	exitPartial = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs one command and returns the process exit status.
// overrides are appended to the fx graph of the session.
func execute(args []string, stdout, stderr io.Writer, overrides ...fx.Option) int {
	root := newRootCommand(overrides)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	var partial *domain.PartialFailureError
	if errors.As(err, &partial) {
		fmt.Fprintf(stderr, "deskwall: partial failure: %v\n", err)
		return exitPartial
	}
	fmt.Fprintf(stderr, "deskwall: %v\n", err)
	return exitFailure
}

func newRootCommand(overrides []fx.Option) *cobra.Command {
	v := config.NewViper()
	var cfg *config.AppConfig

	root := &cobra.Command{
		Use:           "deskwall",
		Short:         "Get or set the desktop wallpaper of each monitor",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(v)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String(config.KeyBackend, config.BackendAuto, "wallpaper service backend (auto, windows, plasma, gnome)")
	flags.String(config.KeyLogLevel, "warn", "minimum log level written to stderr")
	flags.String(config.KeyLogFormat, "console", "log encoding (console, json)")
	for _, key := range []string{config.KeyBackend, config.KeyLogLevel, config.KeyLogFormat} {
		// Lookup cannot fail for flags registered above
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	env := func() *commandEnv {
		return &commandEnv{cfg: cfg, overrides: overrides}
	}
	root.AddCommand(
		newGetCommand(env),
		newSetCommand(env),
		newMonitorsCommand(env),
		newModeCommand(env),
	)
	return root
}
