package spritesheet

import (
	"testing"

	"gopkg.in/yaml.v2"
)

func TestSheetConfigFromYAML(t *testing.T) {
	src := `
mode: grid
padding: 2
columns: 4
scale: 2
`
	var cfg SheetConfig
	if err := yaml.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	want := Options{Mode: ModeGrid, Padding: 2, Columns: 4, Scale: 2}
	if opts != want {
		t.Errorf("Options = %+v, want %+v", opts, want)
	}
}

func TestSheetConfigDefaults(t *testing.T) {
	opts, err := SheetConfig{}.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Mode != ModeHorizontal {
		t.Errorf("empty mode should keep the default, got %v", opts.Mode)
	}
}

func TestSheetConfigBadMode(t *testing.T) {
	if _, err := (SheetConfig{Mode: "spiral"}).Options(); err == nil {
		t.Error("Options should reject an unknown mode")
	}
}
