package frame

import (
	"errors"
	"testing"
)

func TestBuiltinPresetsRegistered(t *testing.T) {
	names := Presets()
	want := map[string]bool{"default": true, "noon": true, "overcast": true, "storm": true, "cirrus": true, "night": true, "clear": true}
	found := 0
	for _, n := range names {
		if want[n] {
			found++
		}
	}
	if found != len(want) {
		t.Fatalf("presets %v missing some of %v", names, want)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("preset names not sorted: %v", names)
		}
	}
}

func TestPresetsStayInRange(t *testing.T) {
	for _, name := range Presets() {
		p, err := Preset(name)
		if err != nil {
			t.Fatalf("preset %q: %v", name, err)
		}
		if c := p.Clamped(); c != p {
			t.Fatalf("preset %q out of range: %+v", name, p)
		}
	}
}

func TestUnknownPreset(t *testing.T) {
	if _, err := Preset("fog-of-war"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("err=%v, expected ErrUnknownPreset", err)
	}
}

func TestPresetReturnsFreshCopy(t *testing.T) {
	a, _ := Preset("noon")
	a.Density = 0
	b, _ := Preset("noon")
	if b.Density == 0 {
		t.Fatalf("preset shared state between calls")
	}
}
