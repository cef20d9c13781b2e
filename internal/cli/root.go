// Package cli implements the piilog command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/piilog/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger zerolog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Run executes the piilog command with os.Args and returns the exit code.
func Run() int {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      config.New(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "piilog",
		Short:         "piilog - redact personal data in key=value logs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(a.v, cfgFile); err != nil {
				return err
			}
			if noBoundary, _ := cmd.Flags().GetBool("no-boundary"); noBoundary {
				a.v.Set(config.KeyBoundary, false)
			}
			cfg, err := config.Get(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.stderr, NoColor: true}).
				Level(cfg.LogLevel).
				With().Timestamp().Logger()
			a.logger.Debug().Strs("fields", cfg.Fields).Str("separator", cfg.Separator).Msg("configuration loaded")
			return nil
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Config file (default is $HOME/.config/piilog/piilog.yaml or ./piilog.yaml)")
	flags.StringSlice("fields", nil, "Fields to redact (default name,email,phone,ssn,credit_card)")
	flags.String("redaction", "", `Text written in place of redacted values (default "***")`)
	flags.String("separator", "", `Delimiter between key=value pairs (default ";")`)
	flags.Bool("no-boundary", false, "Match field names anywhere, not only after a separator")
	flags.String("log-level", "", `Diagnostics level on stderr (default "warn")`)

	for key, name := range map[string]string{
		config.KeyFields:    "fields",
		config.KeyRedaction: "redaction",
		config.KeySeparator: "separator",
		config.KeyLogLevel:  "log-level",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		a.filterCommand(),
		a.renderCommand(),
		a.fieldsCommand(),
	)

	return rootCmd
}
