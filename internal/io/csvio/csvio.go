// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package csvio reads and writes CSV tables, with optional decoding of
// legacy single-byte encodings still common in spreadsheet exports.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// decoders maps the encoding names accepted by Read. UTF-8 input needs no
// entry; it is the default.
var decoders = map[string]*charmap.Charmap{
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-5":   charmap.ISO8859_5,
	"iso-8859-15":  charmap.ISO8859_15,
	"koi8-r":       charmap.KOI8R,
}

// Encodings lists the supported non-UTF-8 encoding names.
func Encodings() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	return names
}

// Read loads all records from a CSV file. encoding selects a legacy decoder
// by name; the empty string means UTF-8. Rows may be ragged; the reader does
// not enforce a fixed field count because malformed exports are exactly what
// the cleaning pipeline exists for.
func Read(path, encoding string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	var src io.Reader = f
	if encoding != "" {
		cm, ok := decoders[strings.ToLower(encoding)]
		if !ok {
			return nil, fmt.Errorf("unsupported encoding %q (supported: %s)",
				encoding, strings.Join(Encodings(), ", "))
		}
		src = transform.NewReader(f, cm.NewDecoder())
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

// Write saves a header row plus data rows as UTF-8 CSV.
func Write(path string, columns []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	w.Flush()
	return w.Error()
}
