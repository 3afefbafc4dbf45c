// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"table-tamer/internal/config"
	"table-tamer/internal/help"
	"table-tamer/internal/io/csvio"
	"table-tamer/internal/io/excelio"
	"table-tamer/internal/io/sqliteio"
	"table-tamer/internal/observability"
	"table-tamer/internal/patterns"
	"table-tamer/internal/table"
	"table-tamer/internal/version"

	"table-tamer/internal/formatters"
	_ "table-tamer/internal/formatters/csv"
	_ "table-tamer/internal/formatters/json"
	_ "table-tamer/internal/formatters/text"
	_ "table-tamer/internal/formatters/yaml"

	"golang.org/x/term"
)

// configFlags holds command line flag values
type configFlags struct {
	format           string
	encoding         string
	sqliteTable      string
	patternsFile     string
	nameColumns      string
	tokenColumns     string
	completeClusters string
	requiredColumns  string
	workers          int
	verbose          bool
	debug            bool
	noColor          bool
	detectHeader     bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format           string
	encoding         string
	sqliteTable      string
	patternsFile     string
	nameColumns      []string
	tokenColumns     []string
	completeClusters []string
	requiredColumns  []string
	workers          int
	verbose          bool
	debug            bool
	noColor          bool
	detectHeader     bool
}

// resolveConfiguration resolves final configuration values from config file, profile, and command line flags
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.format != "" {
		final.format = flags.format
	}

	// Encoding
	final.encoding = ""
	if cfg != nil && cfg.Defaults.Encoding != "" {
		final.encoding = cfg.Defaults.Encoding
	}
	if activeProfile != nil && activeProfile.Encoding != "" {
		final.encoding = activeProfile.Encoding
	}
	if isFlagSet("encoding") {
		final.encoding = flags.encoding
	}

	// SQLite table name
	final.sqliteTable = "data"
	if cfg != nil && cfg.Defaults.SQLiteTable != "" {
		final.sqliteTable = cfg.Defaults.SQLiteTable
	}
	if isFlagSet("table") && flags.sqliteTable != "" {
		final.sqliteTable = flags.sqliteTable
	}

	// Pattern file
	if cfg != nil {
		final.patternsFile = cfg.Cleaning.PatternsFile
	}
	if activeProfile != nil && activeProfile.PatternsFile != "" {
		final.patternsFile = activeProfile.PatternsFile
	}
	if isFlagSet("patterns") {
		final.patternsFile = flags.patternsFile
	}

	// Name columns
	if cfg != nil {
		final.nameColumns = cfg.Cleaning.NameColumns
	}
	if activeProfile != nil && len(activeProfile.NameColumns) > 0 {
		final.nameColumns = activeProfile.NameColumns
	}
	if isFlagSet("name-column") {
		final.nameColumns = splitList(flags.nameColumns)
	}

	// Token columns
	if cfg != nil {
		final.tokenColumns = cfg.Cleaning.TokenColumns
	}
	if activeProfile != nil && len(activeProfile.TokenColumns) > 0 {
		final.tokenColumns = activeProfile.TokenColumns
	}
	if isFlagSet("token-columns") {
		final.tokenColumns = splitList(flags.tokenColumns)
	}

	// Cluster columns
	if cfg != nil {
		final.completeClusters = cfg.Cleaning.CompleteClusters
	}
	if activeProfile != nil && len(activeProfile.CompleteClusters) > 0 {
		final.completeClusters = activeProfile.CompleteClusters
	}
	if isFlagSet("complete-clusters") {
		final.completeClusters = splitList(flags.completeClusters)
	}

	// Required columns
	if cfg != nil {
		final.requiredColumns = cfg.Cleaning.RequiredColumns
	}
	if activeProfile != nil && len(activeProfile.RequiredColumns) > 0 {
		final.requiredColumns = activeProfile.RequiredColumns
	}
	if isFlagSet("required-columns") {
		final.requiredColumns = splitList(flags.requiredColumns)
	}

	// Workers
	final.workers = 0 // resolved to CPU count by the worker pool
	if cfg != nil && cfg.Defaults.Workers > 0 {
		final.workers = cfg.Defaults.Workers
	}
	if activeProfile != nil && activeProfile.Workers > 0 {
		final.workers = activeProfile.Workers
	}
	if isFlagSet("workers") {
		final.workers = flags.workers
	}

	// Verbose
	final.verbose = false // default fallback
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	final.debug = false // default fallback
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	final.noColor = false // default fallback
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Header detection
	final.detectHeader = false // default fallback
	if cfg != nil {
		final.detectHeader = cfg.Defaults.DetectHeader
	}
	if activeProfile != nil {
		final.detectHeader = activeProfile.DetectHeader
	}
	if isFlagSet("detect-header") {
		final.detectHeader = flags.detectHeader
	}

	return final
}

// handleProfiles handles profile listing and selection
func handleProfiles(cfg *config.Config, listProfiles bool, profileName string) *config.Profile {
	if listProfiles {
		names := cfg.ListProfiles()
		if len(names) == 0 {
			fmt.Println("No profiles defined in configuration")
			os.Exit(0)
		}
		fmt.Println("Available profiles:")
		for _, name := range names {
			profile := cfg.GetProfile(name)
			if profile.Description != "" {
				fmt.Printf("  %s - %s\n", name, profile.Description)
			} else {
				fmt.Printf("  %s\n", name)
			}
		}
		os.Exit(0)
	}

	if profileName == "" {
		return nil
	}
	profile := cfg.GetProfile(profileName)
	if profile == nil {
		fmt.Fprintf(os.Stderr, "Error: Profile '%s' not found in configuration\n", profileName)
		os.Exit(1)
	}
	return profile
}

func main() {
	inputFile := flag.String("file", "", "Path to the input table (.csv, .xlsx, .db, .sqlite)")
	sqliteTable := flag.String("table", "data", "Table name for SQLite input and output")
	outputFile := flag.String("output", "", "Path for the cleaned table (default: <input>.cleaned.<ext>)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	nameColumns := flag.String("name-column", "", "Column of free-text names to parse (comma-separated for multiple)")
	tokenColumns := flag.String("token-columns", "", "Comma-separated pre-split name columns: first[,middle],last")
	patternsFile := flag.String("patterns", "", "Custom pattern file merged over the built-in tables (.yml/.yaml)")
	encoding := flag.String("encoding", "", "Legacy CSV encoding (e.g. windows-1252); default UTF-8")
	detectHeader := flag.Bool("detect-header", false, "Promote the first header-like row instead of trusting row one")
	completeClusters := flag.String("complete-clusters", "", "Comma-separated columns to forward-fill")
	requiredColumns := flag.String("required-columns", "", "Comma-separated columns a row must fill to survive")
	workers := flag.Int("workers", 0, "Worker goroutines for name parsing (default: CPU count)")
	outputFormat := flag.String("format", "", "Report format: text, json, csv, yaml (default: text)")
	reportFile := flag.String("report", "", "Path to report output file (if not specified, output to stdout)")
	verbose := flag.Bool("verbose", false, "Include rejected row contents in the report")
	debug := flag.Bool("debug", false, "Enable step-by-step pipeline logging")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	listFormats := flag.Bool("list-formats", false, "List available report formats")
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help information")
	explainOp := flag.String("explain", "", "Show detailed help for a cleaning operation")

	flag.Parse()

	// Handle version command
	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	if *listFormats {
		fmt.Println("Available report formats:")
		for _, name := range formatters.List() {
			if f, ok := formatters.Get(name); ok {
				fmt.Printf("  %s - %s\n", name, f.Description())
			}
		}
		return
	}

	// Auto-detect non-interactive environment
	if !isTerminal(os.Stdout) || os.Getenv("CI") != "" {
		setBoolFlag(noColor, true)
	}

	// Create debug observer early for configuration logging
	var debugObs *observability.DebugObserver
	if *debug {
		debugObs = observability.NewDebugObserver(os.Stderr)
		debugObs.LogDetail("main", fmt.Sprintf("Command line arguments: %v", os.Args))
	}

	cfg := config.LoadConfigOrDefault(*configFile)
	if err := config.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	activeProfile := handleProfiles(cfg, *listProfiles, *profileName)

	finalConfig := resolveConfiguration(cfg, activeProfile, &configFlags{
		format:           *outputFormat,
		encoding:         *encoding,
		sqliteTable:      *sqliteTable,
		patternsFile:     *patternsFile,
		nameColumns:      *nameColumns,
		tokenColumns:     *tokenColumns,
		completeClusters: *completeClusters,
		requiredColumns:  *requiredColumns,
		workers:          *workers,
		verbose:          *verbose,
		debug:            *debug,
		noColor:          *noColor,
		detectHeader:     *detectHeader,
	})

	// Handle help commands
	if *showHelp || *explainOp != "" {
		helpSystem := help.NewSystem(finalConfig.noColor)
		for _, provider := range help.BuiltinProviders() {
			helpSystem.RegisterProvider(provider)
		}

		if *explainOp != "" {
			if !helpSystem.ShowOperationHelp(*explainOp) {
				os.Exit(1)
			}
			return
		}

		args := flag.Args()
		switch {
		case len(args) == 0:
			helpSystem.ShowGeneralHelp()
			return
		case len(args) == 1:
			if strings.EqualFold(args[0], "operations") {
				helpSystem.ShowOperationsHelp()
				return
			}
			if helpSystem.ShowOperationHelp(args[0]) {
				return
			}
			os.Exit(1)
		default:
			fmt.Println("Error: Too many arguments for help command")
			fmt.Println("Use 'table-tamer --help', 'table-tamer --help operations', or 'table-tamer --help <operation>'")
			os.Exit(1)
		}
	}

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: Input file is required")
		fmt.Fprintln(os.Stderr, "Use 'table-tamer --help' for usage information")
		os.Exit(1)
	}

	if len(finalConfig.tokenColumns) == 1 || len(finalConfig.tokenColumns) > 3 {
		fmt.Fprintf(os.Stderr, "Error: --token-columns takes 2 or 3 column labels, got %d\n", len(finalConfig.tokenColumns))
		os.Exit(1)
	}

	obsLevel := observability.LevelOff
	if finalConfig.debug {
		obsLevel = observability.LevelDebug
	}
	observer := observability.NewStandardObserver(obsLevel, os.Stderr)
	complete := observer.StartTiming("cli", "clean", *inputFile)

	report := &table.Report{Source: *inputFile}

	t, err := readTable(*inputFile, finalConfig, report, debugObs)
	if err != nil {
		complete(false, nil)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	report.RowsIn = len(t.Rows)

	if err := runPipeline(t, finalConfig, report, debugObs); err != nil {
		complete(false, nil)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	report.RowsOut = len(t.Rows)

	outputPath := *outputFile
	if outputPath == "" {
		outputPath = defaultOutputPath(*inputFile)
	}
	if err := writeTable(outputPath, finalConfig, t); err != nil {
		complete(false, nil)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if debugObs != nil {
		debugObs.LogDetail("main", fmt.Sprintf("Cleaned table written to %s", outputPath))
	}

	if err := renderReport(report, finalConfig, *reportFile); err != nil {
		complete(false, nil)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	complete(true, map[string]interface{}{
		"rows_in":       report.RowsIn,
		"rows_out":      report.RowsOut,
		"rejected_rows": len(report.RejectedRows),
		"invalid_names": report.InvalidNames(),
	})
}

// readTable loads the input into a table, dispatching on the file extension.
func readTable(path string, final *finalConfiguration, report *table.Report, debugObs *observability.DebugObserver) (*table.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var finish func(success bool, details string)
	if debugObs != nil {
		finish = debugObs.StartStep("read", ext, path)
	}

	t, err := func() (*table.Table, error) {
		switch ext {
		case ".csv":
			rows, err := csvio.Read(path, final.encoding)
			if err != nil {
				return nil, err
			}
			return tableFromRows(rows, final.detectHeader, report)
		case ".xlsx":
			rows, err := excelio.Read(path)
			if err != nil {
				return nil, err
			}
			return tableFromRows(rows, final.detectHeader, report)
		case ".db", ".sqlite", ".sqlite3":
			columns, rows, err := sqliteio.Read(path, final.sqliteTable)
			if err != nil {
				return nil, err
			}
			return table.New(columns, rows), nil
		default:
			return nil, fmt.Errorf("unsupported input file type '%s' (expected .csv, .xlsx, .db, or .sqlite)", ext)
		}
	}()

	if finish != nil {
		details := ""
		if t != nil {
			details = fmt.Sprintf("%d rows", len(t.Rows))
		}
		finish(err == nil, details)
	}
	return t, err
}

// tableFromRows splits raw rows into header and data. The first row is the
// header unless header detection is requested, in which case preamble rows
// above the first header-like row are dropped.
func tableFromRows(rows [][]string, detectHeader bool, report *table.Report) (*table.Table, error) {
	if detectHeader {
		t := table.New(nil, rows)
		stats, ok := t.DetectHeader()
		if !ok {
			return nil, fmt.Errorf("no header-like row found in input")
		}
		report.Record(stats)
		return t, nil
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input table is empty")
	}
	return table.New(rows[0], rows[1:]), nil
}

// runPipeline applies the cleaning operations in their fixed order, recording
// per-operation counters in the report.
func runPipeline(t *table.Table, final *finalConfiguration, report *table.Report, debugObs *observability.DebugObserver) (err error) {
	if debugObs != nil {
		finish := debugObs.StartStep("pipeline", "clean", report.Source)
		defer func() { finish(err == nil, fmt.Sprintf("%d operations", len(report.Operations))) }()
	}

	report.Record(t.StandardizeHeader())
	t.Normalize()

	if len(final.completeClusters) > 0 {
		stats, err := t.CompleteClusters(final.completeClusters)
		if err != nil {
			return err
		}
		report.Record(stats)
	}

	if len(final.requiredColumns) > 0 {
		rejected, err := t.RejectIncompleteRows(final.requiredColumns)
		if err != nil {
			return err
		}
		report.Reject(rejected)
		report.Record(table.OperationStats{Name: "reject_incomplete_rows", RowsAffected: len(rejected)})
	}

	if len(final.nameColumns) == 0 && len(final.tokenColumns) == 0 {
		return nil
	}

	ps, err := patterns.Load(final.patternsFile)
	if err != nil {
		return fmt.Errorf("loading pattern tables: %w", err)
	}

	for i, column := range final.nameColumns {
		nameNum := 0
		if len(final.nameColumns) > 1 {
			nameNum = i + 1
		}
		if debugObs != nil {
			debugObs.LogDetail("pipeline", fmt.Sprintf("Parsing name column '%s'", column))
		}
		stats, err := t.ParseNameColumn(ps, column, nameNum, final.workers)
		if err != nil {
			return err
		}
		report.Record(stats)
	}

	if len(final.tokenColumns) > 0 {
		if debugObs != nil {
			debugObs.LogDetail("pipeline", fmt.Sprintf("Parsing token columns %v", final.tokenColumns))
		}
		stats, err := t.ParseTokenizedNames(ps, final.tokenColumns, 0, final.workers)
		if err != nil {
			return err
		}
		report.Record(stats)
	}
	return nil
}

// writeTable writes the cleaned table, dispatching on the output extension.
func writeTable(path string, final *finalConfiguration, t *table.Table) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return csvio.Write(path, t.Columns, t.Rows)
	case ".xlsx":
		return excelio.Write(path, t.Columns, t.Rows)
	case ".db", ".sqlite", ".sqlite3":
		return sqliteio.Write(path, final.sqliteTable, t.Columns, t.Rows)
	default:
		return fmt.Errorf("unsupported output file type '%s' (expected .csv, .xlsx, .db, or .sqlite)", ext)
	}
}

// renderReport formats the run report and writes it to the report file or
// stdout. File output always disables color codes.
func renderReport(report *table.Report, final *finalConfiguration, reportFile string) error {
	options := formatters.FormatterOptions{
		Verbose: final.verbose,
		NoColor: final.noColor || reportFile != "",
	}
	out, err := formatters.Export(final.format, report, options)
	if err != nil {
		return err
	}
	if reportFile != "" {
		return os.WriteFile(reportFile, []byte(out), 0o600)
	}
	fmt.Println(out)
	return nil
}

// defaultOutputPath derives the cleaned-table path from the input path by
// inserting ".cleaned" before the extension.
func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".cleaned" + ext
}

// splitList splits a comma-separated flag value into trimmed, non-empty items.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// setBoolFlag safely sets the value of a boolean flag pointer if it's not nil
func setBoolFlag(flag *bool, value bool) {
	if flag != nil {
		*flag = value
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
