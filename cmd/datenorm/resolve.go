package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/resolve"
)

var (
	showStage bool
	asUTC     bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [date ...]",
	Short: "Resolve date strings given as arguments or on stdin, one per line",
	Example: `  datenorm resolve "Tues, 04 June 2013 15:00:00 +0900"
  cat dates.txt | datenorm resolve --show-stage`,
	RunE: runResolve,
}

func init() {
	f := resolveCmd.Flags()
	f.BoolVar(&cfg.Debug, "debug", false, "Log stage diagnostics and print a message for unresolved input")
	f.BoolVar(&showStage, "show-stage", false, "Print the resolving stage and format name after each result")
	f.BoolVar(&asUTC, "utc", false, "Print resolved instants in UTC (naive values are read as UTC)")
	f.BoolVar(&cfg.FailOnUnresolved, "fail-on-unresolved", false, "Exit non-zero when any input does not resolve")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	log, r := setup()

	inputs := args
	if len(inputs) == 0 {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			log.Error().Err(err).Msg("failed to read stdin")
			os.Exit(exitcode.UsageError)
		}
		inputs = lines
	}

	raws := make([]*string, len(inputs))
	for i := range inputs {
		raws[i] = &inputs[i]
	}
	outcomes, err := resolve.Batch(cmd.Context(), r, raws, cfg.Workers, cfg.Debug)
	if err != nil {
		log.Error().Err(err).Msg("resolve interrupted")
		os.Exit(exitcode.ResolveError)
	}

	out := cmd.OutOrStdout()
	var unresolved int
	for i, oc := range outcomes {
		if !oc.Resolved() {
			unresolved++
		}
		fmt.Fprintln(out, formatOutcome(inputs[i], oc))
	}

	if unresolved > 0 && cfg.FailOnUnresolved {
		log.Warn().Int("unresolved", unresolved).Int("total", len(inputs)).Msg("some inputs did not resolve")
		if unresolved == len(inputs) {
			os.Exit(exitcode.ResolveError)
		}
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}

func formatOutcome(raw string, oc resolve.Outcome) string {
	if !oc.Resolved() {
		msg := "null"
		if cfg.Debug {
			msg = resolve.UnresolvedMessage(raw)
		}
		if showStage {
			return msg + "\t" + resolve.StageNone.String()
		}
		return msg
	}

	res := oc.Resolution
	value := res.Timestamp.String()
	if asUTC {
		value = res.Timestamp.UTC().Format(time.RFC3339Nano)
	}
	if !showStage {
		return value
	}
	parts := []string{value, res.Stage.String()}
	if res.Specifier != "" {
		parts = append(parts, res.Specifier)
	}
	return strings.Join(parts, "\t")
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
