package app

import (
	"flag"
	"testing"
)

func TestBindParsesRepeatableSets(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("nimbus", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-view", "slice",
		"-width", "320",
		"-preset", "storm",
		"-set", "coverage=0.3",
		"-set", "haze = 0.9",
		"-set", "broken",
		"-set", "coverage=0.4",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.View != "slice" || cfg.Width != 320 {
		t.Fatalf("config %+v", cfg)
	}
	m := cfg.ViewConfig()
	if m["coverage"] != "0.4" {
		t.Fatalf("coverage=%q, expected the last override", m["coverage"])
	}
	if m["haze"] != "0.9" {
		t.Fatalf("haze=%q", m["haze"])
	}
	if _, ok := m["broken"]; ok {
		t.Fatalf("pair without '=' accepted")
	}
	if m["w"] != "320" || m["h"] != "540" || m["preset"] != "storm" {
		t.Fatalf("view config %v", m)
	}
	if _, ok := m["params"]; ok {
		t.Fatalf("empty params path passed through")
	}
}
