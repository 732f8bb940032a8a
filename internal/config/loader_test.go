package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/color-stack/internal/core"
)

// isolate points the search directories at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse embedded: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultColorStackConfig()) {
		t.Errorf("embedded YAML differs from DefaultColorStackConfig:\n%+v\n%+v", cfg, DefaultColorStackConfig())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultColorStackConfig()) {
		t.Error("expected embedded defaults")
	}
	if got := Locate(""); got != "" {
		t.Errorf("Locate = %q, expected embedded", got)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, filepath.Join("configs", FileName), "ball:\n  color: blue\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ball.Color != core.ColorBlue {
		t.Errorf("local config not used, ball color = %v", cfg.Ball.Color)
	}

	userPath := filepath.Join(home, ".colorstack", "configs", FileName)
	writeFile(t, userPath, "ball:\n  color: green\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ball.Color != core.ColorGreen {
		t.Errorf("user config should win, ball color = %v", cfg.Ball.Color)
	}
	if got := Locate(""); got != userPath {
		t.Errorf("Locate = %q, expected %q", got, userPath)
	}
}

func TestLoadSkipsBrokenSearchFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".colorstack", "configs", FileName), "ball: [oops\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ball.Color != core.ColorRed {
		t.Errorf("broken user file should be skipped, ball color = %v", cfg.Ball.Color)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")

	writeFile(t, path, `
obstacles:
  min_stack: 5
  max_stack: 5
palette: [blue, grey]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Obstacles.MinStack != 5 || cfg.Obstacles.MaxStack != 5 {
		t.Errorf("obstacles = %+v", cfg.Obstacles)
	}
	if cfg.Obstacles.Width != 200 {
		t.Error("omitted keys should keep defaults")
	}
	if !reflect.DeepEqual(cfg.Palette, []core.Color{core.ColorBlue, core.ColorGray}) {
		t.Errorf("palette = %v", cfg.Palette)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "field: [\n", "failed to parse"},
		{"unknown key", "feild:\n  width: 10\n", "failed to parse"},
		{"unknown color", "ball:\n  color: teal\n", "unknown color"},
		{"invalid value", "spawn:\n  interval: 0\n", "spawn.interval"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			writeFile(t, path, tc.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultColorStackConfig()) {
		t.Error("empty document should yield defaults")
	}
}

func TestMarshalIsLoadable(t *testing.T) {
	cfg := DefaultColorStackConfig()
	ApplyPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "color: red") {
		t.Errorf("colors should be written by name:\n%s", data)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Error("marshalled config does not load back to the same value")
	}
}
