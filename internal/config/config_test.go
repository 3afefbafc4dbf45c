// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOrDefault_NoFile(t *testing.T) {
	// With no config file, should return defaults without error
	cfg := LoadConfigOrDefault("")
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Defaults.Format == "" {
		t.Error("expected default format to be set")
	}
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	// A path that doesn't exist should fall back to defaults
	cfg := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults)")
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("expected fallback format=text, got %q", cfg.Defaults.Format)
	}
}

func TestLoadConfigOrDefault_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  format: json
  workers: 4
cleaning:
  name_columns: [customer, owner]
  required_columns: [amount]
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("expected format=json, got %q", cfg.Defaults.Format)
	}
	if cfg.Defaults.Workers != 4 {
		t.Errorf("expected workers=4, got %d", cfg.Defaults.Workers)
	}
	if len(cfg.Cleaning.NameColumns) != 2 || cfg.Cleaning.NameColumns[0] != "customer" {
		t.Errorf("unexpected name_columns: %v", cfg.Cleaning.NameColumns)
	}
	// Fields not in the file keep their defaults
	if cfg.Defaults.SQLiteTable != "data" {
		t.Errorf("expected sqlite_table=data, got %q", cfg.Defaults.SQLiteTable)
	}
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Should fall back to defaults, not panic
	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults on parse error)")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("expected default format=text, got %q", cfg.Defaults.Format)
	}
	if cfg.Defaults.SQLiteTable != "data" {
		t.Errorf("expected default sqlite_table=data, got %q", cfg.Defaults.SQLiteTable)
	}
	if cfg.Defaults.Workers != 0 {
		t.Errorf("expected default workers=0 (CPU count), got %d", cfg.Defaults.Workers)
	}
}

func TestLoadConfig_BadPatternsExtension(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
cleaning:
  patterns_file: patterns.json
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected validation error for non-YAML patterns file")
	}
}

func TestProfiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
profiles:
  nightly:
    format: csv
    detect_header: true
    description: batch cleanup
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.ListProfiles()) != 1 {
		t.Errorf("expected 1 profile, got %v", cfg.ListProfiles())
	}
	p := cfg.GetProfile("nightly")
	if p == nil {
		t.Fatal("expected nightly profile")
	}
	if p.Format != "csv" || !p.DetectHeader {
		t.Errorf("unexpected profile values: %+v", p)
	}
	if cfg.GetProfile("missing") != nil {
		t.Error("expected nil for unknown profile")
	}
}
