package configschema

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "apigen.yaml", `root: services
layout:
  app_file: main.py
log:
  level: debug
  format: json
`)

	config, diags := Load(path)
	if config == nil {
		t.Fatal("Expected config to be loaded")
	}
	if diags.HasErrors() {
		t.Fatalf("Expected no errors, got: %v", diags.Items())
	}

	if config.Root != "services" {
		t.Errorf("Expected root 'services', got '%s'", config.Root)
	}
	if config.Layout.AppFile != "main.py" {
		t.Errorf("Expected app file 'main.py', got '%s'", config.Layout.AppFile)
	}
	if config.Layout.LogicFile != "logic.py" {
		t.Errorf("Expected default logic file, got '%s'", config.Layout.LogicFile)
	}
	if config.Log.Format != "json" {
		t.Errorf("Expected json format, got '%s'", config.Log.Format)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "apigen.toml", `root = "out"

[layout]
init_file = "__init__.py"

[log]
color = true
`)

	config, diags := Load(path)
	if config == nil || diags.HasErrors() {
		t.Fatalf("Expected config without errors, got: %v", diags.Items())
	}

	if config.Root != "out" {
		t.Errorf("Expected root 'out', got '%s'", config.Root)
	}
	if config.Layout.InitFile != "__init__.py" {
		t.Errorf("Expected init file '__init__.py', got '%s'", config.Layout.InitFile)
	}
	if !config.Log.Color {
		t.Error("Expected color to be enabled")
	}

	layout := config.NamingLayout()
	if layout.AppFile != "app.py" || layout.InitFile != "__init__.py" {
		t.Errorf("Unexpected layout: %+v", layout)
	}
}

func TestLoadNonExistent(t *testing.T) {
	config, diags := Load("/nonexistent/apigen.yaml")
	if config != nil {
		t.Error("Expected config to be nil for nonexistent file")
	}
	if !diags.HasErrors() {
		t.Error("Expected errors for nonexistent file")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "apigen.json", `{}`)

	config, diags := Load(path)
	if config != nil || !diags.HasErrors() {
		t.Error("Expected unsupported format to fail")
	}
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeConfig(t, "apigen.yaml", "layout: [unclosed\n")

	_, diags := Load(path)
	if !diags.HasErrors() {
		t.Error("Expected YAML syntax error")
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantError bool
		wantPath  string
	}{
		{
			name:      "duplicate file names",
			content:   "layout:\n  app_file: app.py\n  logic_file: app.py\n",
			wantError: true,
			wantPath:  "layout.logic_file",
		},
		{
			name:      "path separator",
			content:   "layout:\n  init_file: pkg/_init.py\n",
			wantError: true,
			wantPath:  "layout.init_file",
		},
		{
			name:      "bad level",
			content:   "log:\n  level: trace\n",
			wantError: true,
			wantPath:  "log.level",
		},
		{
			name:      "bad format",
			content:   "log:\n  format: xml\n",
			wantError: true,
			wantPath:  "log.format",
		},
		{
			name:      "non python app file warns",
			content:   "layout:\n  app_file: app.txt\n",
			wantError: false,
			wantPath:  "layout.app_file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := Load(writeConfig(t, "apigen.yaml", tt.content))

			if diags.HasErrors() != tt.wantError {
				t.Fatalf("HasErrors() = %v, want %v (%v)", diags.HasErrors(), tt.wantError, diags.Items())
			}

			found := false
			for _, d := range diags.Items() {
				if d.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected diagnostic for %s, got %v", tt.wantPath, diags.Items())
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	if _, ok := Discover(dir); ok {
		t.Fatal("Expected no configuration in empty directory")
	}

	if err := os.WriteFile(filepath.Join(dir, "apigen.toml"), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "apigen.yaml"), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	path, ok := Discover(dir)
	if !ok || filepath.Base(path) != "apigen.yaml" {
		t.Errorf("Expected apigen.yaml to win, got %q", path)
	}
}

func TestDefault(t *testing.T) {
	config := Default()
	if config.Root != "." || config.Layout.AppFile != "app.py" || config.Log.Level != "info" {
		t.Errorf("Unexpected defaults: %+v", config)
	}
}
