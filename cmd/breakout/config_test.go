package main

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	for _, id := range []string{"breakout", "breakout_classic"} {
		var buf bytes.Buffer
		if err := writeDefaultConfig(&buf, id); err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		cfg, err := config.ParseBreakout(buf.Bytes())
		if err != nil {
			t.Fatalf("%s: printed config does not load: %v", id, err)
		}
		if cfg != config.DefaultBreakoutConfig() {
			t.Errorf("%s: printed config = %+v, want defaults", id, cfg)
		}
	}

	if err := writeDefaultConfig(&bytes.Buffer{}, "pong"); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	want := config.DefaultBreakoutConfig()
	config.ApplyLayoutPreset(&want, config.LayoutClassic)

	var buf bytes.Buffer
	if err := writeConfig(&buf, want); err != nil {
		t.Fatal(err)
	}

	var got config.BreakoutConfig
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestConfigCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"config", "breakout_classic"})
	defer rootCmd.SetArgs(nil)
	defer rootCmd.SetOut(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), config.GetDefaultYAML("breakout_classic")) {
		t.Errorf("output differs from the embedded config:\n%s", buf.String())
	}
}
