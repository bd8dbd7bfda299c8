package frame

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeMergesOverDefaults(t *testing.T) {
	p, err := Decode(strings.NewReader(`{"coverage":0.95,"scatteringAnisotropy":0.3}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	d := DefaultParams()
	if p.Coverage != 0.95 || p.Anisotropy != 0.3 {
		t.Fatalf("decoded fields not applied: %+v", p)
	}
	if p.Density != d.Density || p.Steps != d.Steps {
		t.Fatalf("missing fields lost defaults: %+v", p)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"coverage":`)); err == nil {
		t.Fatalf("expected error for truncated document")
	}
}

func TestMergeKeepsBase(t *testing.T) {
	base := DefaultParams()
	base.Haze = 0.9
	p, err := Merge(base, []byte(`{"density":0.5}`))
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if p.Density != 0.5 || p.Haze != 0.9 {
		t.Fatalf("merge result %+v", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	want, err := Preset("storm")
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("loaded %+v, expected %+v", got, want)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
