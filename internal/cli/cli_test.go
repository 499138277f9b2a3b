package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestCLI() *CLI {
	return New(io.Discard, log.InfoLevel)
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.arm")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("loadConfig(\"\") = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "armature.toml")
	content := "tolerance = 1e-6\nmesh_cells = 64\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.Tolerance != 1e-6 {
		t.Errorf("Tolerance = %g, want 1e-6", cfg.Tolerance)
	}
	if cfg.MeshCells != 64 {
		t.Errorf("MeshCells = %d, want 64", cfg.MeshCells)
	}
	// Unset keys keep their defaults.
	if cfg.MarkerSize != DefaultConfig().MarkerSize {
		t.Errorf("MarkerSize = %g, want default %g", cfg.MarkerSize, DefaultConfig().MarkerSize)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero mesh cells", "mesh_cells = 0\n"},
		{"negative marker size", "marker_size = -1.0\n"},
		{"malformed toml", "mesh_cells = = 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "armature.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := loadConfig(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestCheckCommandCleanScript(t *testing.T) {
	path := writeScript(t, `
		(frame "base" :transform (translate (vec3 1 0 0 :unit :m)))
		(frame "arm" :parent "base" :transform (translate (vec3 0 2 0 :unit :m)))
	`)

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"check", path})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.Execute(); err != nil {
		t.Errorf("check failed on clean script: %v", err)
	}
}

func TestCheckCommandReportsScriptErrors(t *testing.T) {
	path := writeScript(t, `(vec3 1 2)`)

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"check", path})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.Execute(); err == nil {
		t.Error("expected error for script with wrong arity")
	}
}

func TestCheckCommandMissingFile(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"check", filepath.Join(t.TempDir(), "missing.arm")})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.Execute(); err == nil {
		t.Error("expected error for missing script file")
	}
}

func TestFramesCommandListsWorldOrigins(t *testing.T) {
	path := writeScript(t, `
		(frame "base" :transform (translate (vec3 1 0 0 :unit :m)))
		(frame "arm" :parent "base" :transform (translate (vec3 0 2 0 :unit :m)))
	`)

	var out bytes.Buffer
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"frames", path})
	root.SetOut(&out)
	root.SetErr(io.Discard)
	if err := root.Execute(); err != nil {
		t.Fatalf("frames failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"world", "base", "arm"} {
		if !strings.Contains(text, want) {
			t.Errorf("frames output missing %q:\n%s", want, text)
		}
	}
	// arm sits at (1, 2, 0) in world coordinates.
	if !strings.Contains(text, "origin=(1, 2, 0)") {
		t.Errorf("frames output missing arm world origin:\n%s", text)
	}
}
