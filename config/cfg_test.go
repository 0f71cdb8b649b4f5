package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rupor-github/gencfg"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
generator:
  indent: "    "
  class_attributes: ["class", "className", "ngClass"]
  sort: none
  markup_extensions: [".html", ".vue"]
  output_name_template: "{{ .SourceFile }}-styles"
  slugify_names: true
logging:
  console:
    level: normal
  file:
    level: debug
    destination: /tmp/test.log
    mode: append
reporting:
  destination: /tmp/test-report.zip
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}

	if cfg.Generator.Indent != "    " {
		t.Errorf("Indent = %q, want four spaces", cfg.Generator.Indent)
	}

	if len(cfg.Generator.ClassAttributes) != 3 {
		t.Errorf("ClassAttributes length = %d, want 3", len(cfg.Generator.ClassAttributes))
	}

	if cfg.Generator.Sort != SortModeNone {
		t.Errorf("Sort = %v, want SortModeNone", cfg.Generator.Sort)
	}

	if len(cfg.Generator.MarkupExtensions) != 2 {
		t.Errorf("MarkupExtensions length = %d, want 2", len(cfg.Generator.MarkupExtensions))
	}

	if cfg.Generator.OutputNameTemplate != "{{ .SourceFile }}-styles" {
		t.Errorf("OutputNameTemplate = %q, template should not be expanded on load", cfg.Generator.OutputNameTemplate)
	}

	if !cfg.Generator.SlugifyNames {
		t.Error("Expected SlugifyNames to be true")
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `version: 1
generator:
  slugify_names: true
  invalid indent
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
generator:
  slugify_names: true
`

	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_values.yaml")

	// Invalid version number
	configWithInvalidVersion := `version: 2
generator:
  slugify_names: true
`

	if err := os.WriteFile(configPath, []byte(configWithInvalidVersion), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected validation error for invalid version")
	}
}

func TestLoadConfiguration_BadMarkupExtension(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad_ext.yaml")

	// Extensions must start with a dot
	configWithBadExt := `version: 1
generator:
  markup_extensions: ["html"]
`

	if err := os.WriteFile(configPath, []byte(configWithBadExt), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected validation error for extension without leading dot")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Generator: GeneratorConfig{
			Indent:           "  ",
			ClassAttributes:  []string{"class"},
			Sort:             SortModeCanonical,
			MarkupExtensions: []string{".html"},
		},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Dump() returned empty data")
	}

	// Verify we can load it back
	cfg2 := &Config{}
	_, err = unmarshalConfig(data, cfg2, false)
	if err != nil {
		t.Errorf("Dumped config cannot be loaded: %v", err)
	}

	if cfg2.Version != cfg.Version {
		t.Errorf("Version mismatch after dump/load: got %d, want %d", cfg2.Version, cfg.Version)
	}

	if cfg2.Generator.Sort != SortModeCanonical {
		t.Errorf("Sort mismatch after dump/load: got %v, want %v", cfg2.Generator.Sort, SortModeCanonical)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		data := []byte(`version: 1`)
		cfg := &Config{}

		result, err := unmarshalConfig(data, cfg, false)
		if err != nil {
			t.Errorf("unmarshalConfig() error = %v", err)
		}

		if result == nil {
			t.Fatal("unmarshalConfig() returned nil")
		}

		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		data := []byte(`invalid: [yaml`)
		cfg := &Config{}

		_, err := unmarshalConfig(data, cfg, false)
		if err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Generator.Indent != "  " {
		t.Errorf("Default indent = %q, want two spaces", cfg.Generator.Indent)
	}

	if cfg.Generator.Sort != SortModeCanonical {
		t.Errorf("Default sort = %v, want SortModeCanonical", cfg.Generator.Sort)
	}

	if len(cfg.Generator.ClassAttributes) == 0 {
		t.Error("Default class attributes should not be empty")
	}

	found := false
	for _, a := range cfg.Generator.ClassAttributes {
		if a == "class" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Default class attributes %v should include %q", cfg.Generator.ClassAttributes, "class")
	}

	if len(cfg.Generator.MarkupExtensions) == 0 {
		t.Error("Default markup extensions should not be empty")
	}

	if cfg.Generator.SlugifyNames {
		t.Error("Slugification should be off by default")
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	// Partial config that only overrides some values
	partialConfig := `version: 1
generator:
  indent: "\t"
`

	if err := os.WriteFile(configPath, []byte(partialConfig), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	// Check that explicitly set value is used
	if cfg.Generator.Indent != "\t" {
		t.Errorf("Indent = %q, want tab from config file", cfg.Generator.Indent)
	}

	// Check that default values are still present for unspecified fields
	if len(cfg.Generator.ClassAttributes) == 0 {
		t.Error("ClassAttributes should have default value")
	}
	if cfg.Generator.Sort != SortModeCanonical {
		t.Errorf("Sort = %v, should keep default", cfg.Generator.Sort)
	}
}

func TestSortMode_String(t *testing.T) {
	tests := []struct {
		mode     SortMode
		expected string
	}{
		{SortModeNone, "none"},
		{SortModeCanonical, "canonical"},
		{SortMode(99), "SortMode(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := tt.mode.String()
			if got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSortMode_IsValid(t *testing.T) {
	tests := []struct {
		mode  SortMode
		valid bool
	}{
		{SortModeNone, true},
		{SortModeCanonical, true},
		{SortMode(99), false},
		{SortMode(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := tt.mode.IsValid()
			if got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  SortMode
		shouldErr bool
	}{
		{"none lowercase", "none", SortModeNone, false},
		{"NONE uppercase", "NONE", SortModeNone, false},
		{"canonical", "canonical", SortModeCanonical, false},
		{"invalid", "invalid", SortMode(0), true},
		{"empty", "", SortMode(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortMode(tt.input)
			if tt.shouldErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if got != tt.expected {
					t.Errorf("ParseSortMode(%q) = %v, want %v", tt.input, got, tt.expected)
				}
			}
		})
	}
}

func TestSortMode_UnmarshalText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  SortMode
		shouldErr bool
	}{
		{"none", "none", SortModeNone, false},
		{"canonical", "canonical", SortModeCanonical, false},
		{"invalid", "invalid", SortMode(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mode SortMode
			err := mode.UnmarshalText([]byte(tt.input))
			if tt.shouldErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
			} else {
				if err != nil {
					t.Errorf("UnmarshalText() error = %v", err)
				}
				if mode != tt.expected {
					t.Errorf("UnmarshalText(%q) = %v, want %v", tt.input, mode, tt.expected)
				}
			}
		})
	}
}

func TestSortModeNames(t *testing.T) {
	names := SortModeNames()
	expected := []string{"none", "canonical"}

	if len(names) != len(expected) {
		t.Fatalf("SortModeNames() length = %d, want %d", len(names), len(expected))
	}

	for i, name := range expected {
		if names[i] != name {
			t.Errorf("SortModeNames()[%d] = %q, want %q", i, names[i], name)
		}
	}
}
