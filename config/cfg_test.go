package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
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
		t.Errorf("default config version = %d, want 1", cfg.Version)
	}
	if cfg.Document.FileMode != "0644" {
		t.Errorf("default file_mode = %q, want %q", cfg.Document.FileMode, "0644")
	}
	if cfg.Document.Backup != BackupModeNone {
		t.Errorf("default backup = %v, want none", cfg.Document.Backup)
	}
	if cfg.Document.OutputNameTemplate == "" {
		t.Error("default output_name_template is empty")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("default console log level = %q, want %q", cfg.Logging.ConsoleLogger.Level, "normal")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	configContent := `version: 1
document:
  stylesheet_path: ""
  file_mode: "0600"
  backup: copy
  file_name_transliterate: true
logging:
  console:
    level: none
  file:
    level: debug
    destination: /tmp/tcss-test.log
    mode: overwrite
reporting:
  destination: /tmp/tcss-test-report.zip
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Document.FileMode != "0600" {
		t.Errorf("file_mode = %q, want %q", cfg.Document.FileMode, "0600")
	}
	if cfg.Document.Backup != BackupModeCopy {
		t.Errorf("backup = %v, want copy", cfg.Document.Backup)
	}
	if !cfg.Document.FileNameTransliterate {
		t.Error("file_name_transliterate not picked up from file")
	}
	if cfg.Logging.FileLogger.Level != "debug" {
		t.Errorf("file log level = %q, want %q", cfg.Logging.FileLogger.Level, "debug")
	}
	// Values absent from the file keep template defaults.
	if cfg.Document.OutputNameTemplate == "" {
		t.Error("output_name_template default was lost")
	}
}

func TestLoadConfiguration_UnknownField(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\nnonsense: true\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("expected error for unknown configuration field")
	}
}

func TestLoadConfiguration_BadBackupMode(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	content := "version: 1\ndocument:\n  backup: sideways\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("expected error for invalid backup mode")
	}
}

func TestDocumentConfig_Mode(t *testing.T) {
	tests := []struct {
		in   string
		want os.FileMode
	}{
		{"0644", 0644},
		{"0600", 0600},
		{"644", 0644},
		{"", 0644},
		{"garbage", 0644},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := DocumentConfig{FileMode: tt.in}
			if got := c.Mode(); got != tt.want {
				t.Errorf("Mode(%q) = %o, want %o", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrepareAndDump(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Errorf("default configuration missing version, got:\n%s", data)
	}

	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	out, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(out), "file_mode:") {
		t.Errorf("dumped configuration missing document section:\n%s", out)
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"style.css", "style.css"},
		{"../../etc/passwd", "etcpasswd"},
		{".hidden", "hidden"},
		{"", "_bad_file_name_"},
		{"...", "_bad_file_name_"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CleanFileName(tt.in); got != tt.want {
				t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
