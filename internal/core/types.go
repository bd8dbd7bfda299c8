package core

import "sort"

// Size describes the pixel dimensions of a view.
type Size struct {
	W int
	H int
}

// View is anything the viewer, the server or the headless tools can show:
// it advances with wall time and exposes an RGBA8 frame.
type View interface {
	Name() string
	Size() Size
	// Reset restores the initial camera and clock. The seed perturbs
	// anything a view chooses to randomize.
	Reset(seed int64)
	// Step advances the view by dt seconds and renders a new frame.
	Step(dt float64)
	// Pixels returns the last rendered frame, 4*W*H bytes, row 0 on top.
	Pixels() []byte
}

// Factory constructs a View using an optional configuration map.
type Factory func(cfg map[string]string) View

var views = map[string]Factory{}

// Register adds a view factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	views[name] = f
}

// Views exposes the registry of available view factories.
func Views() map[string]Factory {
	return views
}

// Names returns the registered view names in sorted order.
func Names() []string {
	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
