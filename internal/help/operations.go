// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

// staticProvider wraps a fixed OperationInfo.
type staticProvider struct {
	info OperationInfo
}

func (p staticProvider) GetOperationInfo() OperationInfo {
	return p.info
}

// BuiltinProviders returns help providers for the built-in cleaning
// operations.
func BuiltinProviders() []Provider {
	return []Provider{
		staticProvider{OperationInfo{
			Name:             "standardize_header",
			ShortDescription: "Rewrite column labels into unambiguous snake_case",
			DetailedDescription: "Lowercases every column label, strips punctuation, collapses\n" +
				"whitespace runs to underscores, and deduplicates repeated labels with a\n" +
				"numeric suffix. Always runs, since later operations address columns by\n" +
				"their standardized labels.",
			ReportDetails: []string{"rows_affected: labels changed"},
			Examples:      []string{`table-tamer --file export.csv`},
		}},
		staticProvider{OperationInfo{
			Name:             "detect_header",
			ShortDescription: "Find the real header row below title/junk preamble",
			DetailedDescription: "Scans rows for the first one whose cells are all non-empty and\n" +
				"non-numeric, promotes it to the column labels, and drops it plus any\n" +
				"preamble rows above it. Useful for spreadsheet exports that start with\n" +
				"title banners.",
			Flags:         []string{"--detect-header"},
			ReportDetails: []string{"rows_affected: rows consumed", "preamble_rows: junk rows above the header"},
			Examples:      []string{`table-tamer --file export.xlsx --detect-header`},
		}},
		staticProvider{OperationInfo{
			Name:             "complete_clusters",
			ShortDescription: "Forward-fill group labels written only on their first row",
			DetailedDescription: "For each named column, fills every empty cell from the nearest\n" +
				"non-empty cell above it. This repairs exports where a group value (a\n" +
				"region, a category) appears once per block rather than on every row.",
			Flags:         []string{"--complete-clusters <labels>"},
			ReportDetails: []string{"<label>: cells filled per column"},
			Examples:      []string{`table-tamer --file report.csv --complete-clusters region,category`},
		}},
		staticProvider{OperationInfo{
			Name:             "reject_incomplete_rows",
			ShortDescription: "Drop rows missing required values, keeping them in the report",
			DetailedDescription: "Removes every row with an empty cell in any required column.\n" +
				"Rejected rows are never lost: they are carried in the run report with\n" +
				"their original indexes for review.",
			Flags:         []string{"--required-columns <labels>"},
			ReportDetails: []string{"rows_affected: rows rejected"},
			Examples:      []string{`table-tamer --file report.csv --required-columns name,amount --verbose`},
		}},
		staticProvider{OperationInfo{
			Name:             "parse_name_column",
			ShortDescription: "Parse a free-text name column into structured fields",
			DetailedDescription: "Runs the multi-phase name parser over every value in the column:\n" +
				"parenthetical alternate names, honorific prefixes and suffixes, middle\n" +
				"initial clustering, compound first names (\"Mary Ann\"), multi-part last\n" +
				"names (\"Van Houten\"), and two-person records (\"Bob and Helen Parr\").\n" +
				"Parsed fields join the table as new columns; records the parser could\n" +
				"not make sense of are flagged in a 'valid' column rather than dropped.",
			Flags: []string{
				"--name-column <label>",
				"--patterns <path>  (merge custom pattern tables)",
				"--workers <n>",
			},
			ReportDetails: []string{"parsed: records processed", "invalid_names: records flagged invalid"},
			Examples: []string{
				`table-tamer --file customers.csv --name-column customer`,
				`table-tamer --file customers.csv --name-column customer --patterns extra.yml`,
			},
		}},
		staticProvider{OperationInfo{
			Name:             "parse_tokenized_names",
			ShortDescription: "Parse pre-split first/middle/last columns",
			DetailedDescription: "Cleans name fields that already arrive split into columns:\n" +
				"normalizes casing, extracts a trailing initial from the first-name\n" +
				"field, and splits inline ampersands (\"Bob & Helen\") into second-person\n" +
				"fields. Field positions keep their meaning, so empty cells stay empty.",
			Flags:         []string{"--token-columns <first[,middle],last>"},
			ReportDetails: []string{"parsed: records processed", "invalid_names: records flagged invalid"},
			Examples:      []string{`table-tamer --file people.csv --token-columns first,middle,last`},
		}},
	}
}
