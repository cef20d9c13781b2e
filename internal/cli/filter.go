package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/piilog"
	"github.com/spf13/cobra"
)

// maxLineSize bounds a single log line read by filter.
const maxLineSize = 1024 * 1024

func (a *app) filterCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "filter [file...]",
		Short: "Redact log lines from files or stdin",
		Long:  "Redact configured fields in every line read from the given files, or from stdin when no file is given, and write the lines to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.cfg.Redactor()
			if err != nil {
				return err
			}

			if output == "" {
				return a.filterAll(r, args, a.stdout)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			if err := a.filterAll(r, args, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing output file: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

func (a *app) filterAll(r *piilog.Redactor, args []string, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if len(args) == 0 {
		if err := a.filterStream(r, a.stdin, bw, "stdin"); err != nil {
			return err
		}
	}
	for _, path := range args {
		if err := a.filterFile(r, path, bw); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (a *app) filterFile(r *piilog.Redactor, path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	return a.filterStream(r, f, w, path)
}

func (a *app) filterStream(r *piilog.Redactor, in io.Reader, w io.Writer, source string) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := 0
	for scanner.Scan() {
		if _, err := io.WriteString(w, r.Redact(scanner.Text())+"\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}

	a.logger.Debug().Str("source", source).Int("lines", lines).Msg("filtered")
	return nil
}
