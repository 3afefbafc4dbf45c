// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// OperationInfo contains standardized information about a cleaning operation
type OperationInfo struct {
	Name                string   // Operation name (e.g., "parse_name_column")
	ShortDescription    string   // Short description for the operations list
	DetailedDescription string   // Detailed description of what the operation does
	Flags               []string // CLI flags that control the operation
	ReportDetails       []string // Counter keys the operation records in the report
	Examples            []string // Usage examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetOperationInfo() OperationInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	noColor   bool
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		noColor:   noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"negative": color.New(color.FgRed),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetOperationInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Table Tamer - Tabular Data Cleaning Tool")
	fmt.Println("========================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  table-tamer --file <path-to-table> [options]")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tInput table: .csv, .xlsx, or .db/.sqlite (required)")
	fmt.Fprintln(w, "  --table\t<name>\tTable name for SQLite input/output (default: data)")
	fmt.Fprintln(w, "  --output\t<path>\tCleaned table destination; extension picks the writer (default: <input>.cleaned.csv)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --name-column\t<label>\tColumn of free-text names to parse (repeatable via comma separation)")
	fmt.Fprintln(w, "  --token-columns\t<labels>\tComma-separated pre-split name columns (first[,middle],last)")
	fmt.Fprintln(w, "  --patterns\t<path>\tCustom pattern file merged over the built-in tables (.yml/.yaml)")
	fmt.Fprintln(w, "  --encoding\t<name>\tLegacy CSV encoding (e.g. windows-1252); default UTF-8")
	fmt.Fprintln(w, "  --detect-header\t\tPromote the first header-like row instead of trusting row one")
	fmt.Fprintln(w, "  --complete-clusters\t<labels>\tComma-separated columns to forward-fill")
	fmt.Fprintln(w, "  --required-columns\t<labels>\tComma-separated columns a row must fill to survive")
	fmt.Fprintln(w, "  --workers\t<n>\tWorker goroutines for name parsing (default: CPU count)")
	fmt.Fprintln(w, "  --format\t<format>\tReport format: text, json, csv, yaml (default: text)")
	fmt.Fprintln(w, "  --report\t<path>\tWrite the report to a file instead of stdout")
	fmt.Fprintln(w, "  --verbose\t\tInclude rejected row contents in the report")
	fmt.Fprintln(w, "  --debug\t\tEnable step-by-step pipeline logging")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --list-formats\t\tList available report formats")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	fmt.Fprintln(w, "  --help operations\t\tList all cleaning operations")
	fmt.Fprintln(w, "  --help <operation>\t\tShow detailed help for a specific operation")
	fmt.Fprintln(w, "  --explain <operation>\t\tAlias for --help <operation>")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic usage:")
	h.colors["example"].Println("    table-tamer --file customers.csv --name-column customer")
	h.colors["example"].Println("    table-tamer --file export.xlsx --detect-header --name-column owner --format json")
	fmt.Println("  Pre-split name fields:")
	h.colors["example"].Println("    table-tamer --file people.csv --token-columns first,middle,last")
	fmt.Println("  Structural cleanup:")
	h.colors["example"].Println("    table-tamer --file report.csv --complete-clusters region --required-columns name,amount")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Default config: ~/.table-tamer/config.yaml")
	fmt.Println("  Project config: table-tamer.yaml or .table-tamer.yaml (in current directory)")
	fmt.Println("  Environment: TABLE_TAMER_CONFIG_DIR - Override config directory")
}

// ShowOperationsHelp displays information about all available operations
func (h *System) ShowOperationsHelp() {
	h.colors["title"].Println("Available Cleaning Operations")
	fmt.Println("=============================")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  OPERATION\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  ---------\t-----------")

	var names []string
	for _, provider := range h.providers {
		names = append(names, provider.GetOperationInfo().Name)
	}
	sort.Strings(names)

	for _, name := range names {
		info := h.providers[strings.ToLower(name)].GetOperationInfo()
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\n", info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a specific operation, use:")
	h.colors["example"].Println("  table-tamer --help <operation>")
}

// ShowOperationHelp displays detailed help for a specific operation
func (h *System) ShowOperationHelp(name string) bool {
	provider, exists := h.providers[strings.ToLower(name)]
	if !exists {
		h.colors["negative"].Printf("Error: Operation '%s' not found.\n", name)
		fmt.Println("Use 'table-tamer --help operations' to see the available operations.")
		return false
	}

	info := provider.GetOperationInfo()

	h.colors["title"].Printf("%s\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)))
	fmt.Println()
	fmt.Println(info.DetailedDescription)

	if len(info.Flags) > 0 {
		fmt.Println()
		h.colors["header"].Println("FLAGS:")
		for _, f := range info.Flags {
			h.colors["item"].Printf("  %s\n", f)
		}
	}

	if len(info.ReportDetails) > 0 {
		fmt.Println()
		h.colors["header"].Println("REPORT COUNTERS:")
		for _, d := range info.ReportDetails {
			h.colors["item"].Printf("  %s\n", d)
		}
	}

	if len(info.Examples) > 0 {
		fmt.Println()
		h.colors["header"].Println("EXAMPLES:")
		for _, e := range info.Examples {
			h.colors["example"].Printf("  %s\n", e)
		}
	}

	return true
}
