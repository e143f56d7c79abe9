// Package main provides the CLI entrypoint for diarium.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dgerard42/diarium/internal/config"
	"github.com/dgerard42/diarium/internal/journal"
	"github.com/dgerard42/diarium/internal/model"
	"github.com/dgerard42/diarium/internal/names"
	"github.com/dgerard42/diarium/internal/reportui"
	"github.com/dgerard42/diarium/internal/sheet"
	"github.com/dgerard42/diarium/internal/stats"
	"github.com/dgerard42/diarium/internal/store"
)

const (
	defaultRecordsOut = "records.json"
	defaultRunsLimit  = 20
)

var (
	convertInput  string
	convertOutput string
	convertSheet  int

	statsInput  string
	statsOutput string
	statsPrint  bool
	statsDB     bool

	browseInput string

	runsLast int
	runsShow int64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "diarium",
		Short:         "Daily journal spreadsheet converter and analyzer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newRunsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a journal spreadsheet to normalized JSON records",
		Args:  cobra.NoArgs,
		RunE:  runConvertCmd,
	}
	cmd.Flags().StringVar(&convertInput, "input", "", "journal spreadsheet (.xlsx)")
	cmd.Flags().StringVar(&convertOutput, "output", defaultRecordsOut, "output records file")
	cmd.Flags().IntVar(&convertSheet, "sheet", config.DefaultSheet, "sheet index, starting at 1")
	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	return cmd
}

func runConvertCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	tables := config.Resolve(fileCfg)
	if cmd.Flags().Changed("sheet") {
		tables.Sheet = convertSheet
	}
	if tables.Sheet < 1 {
		return fmt.Errorf("--sheet must be >= 1")
	}

	rows, err := sheet.ReadRows(convertInput, tables.Sheet)
	if err != nil {
		return fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	reconciler := names.New(tables.People, tables.Family, tables.Aliases, tables.Residual)
	normalizer := journal.New(reconciler, journal.Targets(tables.Targets))
	records := normalizer.Normalize(rows)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	if err := os.WriteFile(convertOutput, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	logErrf("Wrote %d records to %s\n", len(records), convertOutput)
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Build a stats report from normalized records",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsInput, "input", defaultRecordsOut, "records file")
	cmd.Flags().StringVar(&statsOutput, "output", "", "output report file")
	cmd.Flags().BoolVar(&statsPrint, "print", false, "print the report to stdout")
	cmd.Flags().BoolVar(&statsDB, "db", false, "archive the run in the local database")
	return cmd
}

func runStatsCmd(_ *cobra.Command, _ []string) error {
	records, err := loadRecords(statsInput)
	if err != nil {
		return err
	}

	report := stats.Build(records)
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if statsOutput != "" {
		if err := os.WriteFile(statsOutput, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logErrf("Wrote report to %s\n", statsOutput)
	}
	if statsPrint {
		if err := stats.Render(os.Stdout, report, stats.DetectWidth()); err != nil {
			return fmt.Errorf("failed to print report: %w", err)
		}
	}
	if statsDB {
		if err := archiveRun(statsInput, records, data); err != nil {
			return err
		}
	}
	if statsOutput == "" && !statsPrint && !statsDB {
		if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func archiveRun(source string, records []model.Record, reportJSON []byte) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	firstDate, lastDate := dateRange(records)
	run := store.Run{
		CreatedAt:  time.Now(),
		Source:     filepath.Base(source),
		Records:    len(records),
		FirstDate:  firstDate,
		LastDate:   lastDate,
		ReportJSON: string(reportJSON),
	}
	id, err := st.InsertRun(context.Background(), run)
	if err != nil {
		return fmt.Errorf("failed to archive run: %w", err)
	}
	logErrf("Archived run %d (%d records)\n", id, len(records))
	return nil
}

func dateRange(records []model.Record) (string, string) {
	var first, last string
	for _, record := range records {
		date := record.Date()
		if date == "" {
			continue
		}
		if first == "" || date < first {
			first = date
		}
		if last == "" || date > last {
			last = date
		}
	}
	return first, last
}

func loadRecords(path string) ([]model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return model.DecodeRecords(rows), nil
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a stats report in the TUI",
		Args:  cobra.NoArgs,
		RunE:  runBrowseCmd,
	}
	cmd.Flags().StringVar(&browseInput, "input", "", "report file")
	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	return cmd
}

func runBrowseCmd(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(browseInput)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}
	var report stats.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return fmt.Errorf("failed to decode report: %w", err)
	}

	program := tea.NewProgram(reportui.NewModel(report), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run report TUI: %w", err)
	}
	return nil
}

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List archived stats runs",
		Args:  cobra.NoArgs,
		RunE:  runRunsCmd,
	}
	cmd.Flags().IntVar(&runsLast, "last", defaultRunsLimit, "number of runs to show")
	cmd.Flags().Int64Var(&runsShow, "show", 0, "print the archived report of one run")
	return cmd
}

func runRunsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if runsShow > 0 {
		run, err := st.GetRun(context.Background(), runsShow)
		if err != nil {
			return fmt.Errorf("failed to load run %d: %w", runsShow, err)
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), run.ReportJSON); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	runs, err := st.ListRuns(context.Background(), runsLast)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		logErrln("No archived runs. Archive one with: diarium stats --db")
		return nil
	}
	for _, run := range runs {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d records\t%s..%s\n",
			run.ID, run.CreatedAt.Format("2006-01-02 15:04"), run.Source,
			run.Records, run.FirstDate, run.LastDate); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# diarium configuration
# Uncomment a value to enable it. CLI flags override config values.

[convert]
# sheet = %d               # Sheet index, starting at 1

[targets]
# "sleep-time" = "23:30"   # Target times for deviation fields
# "wakeup-time" = "08:30"
# "lunch-time" = "14:00"
# "dinner-time" = "21:30"

[names]
# family = ["Victor", "Sara"]      # Roster the "family" keyword expands to
# residual = ["Gubau"]             # Leftover tokens dropped after joining
# [names.alias]
# "gerard" = "Gerard Martínez"

# Dictionary entries are matched in file order.
# [[names.person]]
# name = "Gerard Martínez"
# tokens = ["Gerard", "Martínez"]
`,
		config.DefaultSheet,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
