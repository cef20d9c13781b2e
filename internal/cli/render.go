package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/m-mizutani/piilog"
	"github.com/spf13/cobra"
)

func (a *app) renderCommand() *cobra.Command {
	var name, level string

	cmd := &cobra.Command{
		Use:   "render MESSAGE...",
		Short: "Render messages as redacted log lines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(level)); err != nil {
				return fmt.Errorf("%w: level: %w", piilog.ErrInvalidConfiguration, err)
			}

			f, err := a.cfg.Formatter()
			if err != nil {
				return err
			}

			for _, msg := range args {
				line := f.Render(piilog.Record{
					Name:    name,
					Level:   lvl,
					Time:    time.Now(),
					Message: msg,
				})
				if _, err := fmt.Fprintln(a.stdout, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", piilog.DefaultLoggerName, "Logger name")
	cmd.Flags().StringVarP(&level, "level", "l", "INFO", "Record level")

	return cmd
}
