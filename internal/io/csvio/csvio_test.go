// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	columns := []string{"name", "city"}
	rows := [][]string{
		{"Bob Parr", "Metroville"},
		{"Helen Parr", "Metroville"},
	}

	require.NoError(t, Write(path, columns, rows))

	got, err := Read(path, "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, columns, got[0])
	assert.Equal(t, rows[0], got[1])
	assert.Equal(t, rows[1], got[2])
}

func TestReadRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1\n1,2,3,4\n"), 0o644))

	got, err := Read(path, "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Len(t, got[1], 1)
	assert.Len(t, got[2], 4)
}

func TestReadLegacyEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.csv")
	// "José,Muñoz" in Windows-1252.
	data := []byte{'J', 'o', 's', 0xE9, ',', 'M', 'u', 0xF1, 'o', 'z', '\n'}
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := Read(path, "windows-1252")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"José", "Muñoz"}, got[0])
}

func TestReadUnsupportedEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	_, err := Read(path, "ebcdic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"), "")
	assert.Error(t, err)
}
