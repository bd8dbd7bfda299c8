package views

import (
	"fmt"
	"time"

	"nimbus/internal/camera"
	"nimbus/internal/core"
	"nimbus/internal/frame"
)

// Host is a view the interactive front ends can steer. Every view built
// on Base satisfies it.
type Host interface {
	core.View
	core.ParameterSnapshotProvider
	core.ParameterControlsProvider
	core.FloatParameterSetter
	core.IntParameterSetter

	Params() frame.CloudParams
	SetParams(frame.CloudParams)
	Camera() *camera.State
	Clock() *core.FrameClock
	Buffer() *core.PixelBuffer
	Viewport() (int, int)
	SetViewport(w, h int)
	UseContext(frame.Context)
	NextContext() frame.Context
	LastContext() frame.Context
	LastRenderTime() time.Duration
}

// Open builds the registered view called name.
func Open(name string, cfg map[string]string) (Host, error) {
	factory, ok := core.Views()[name]
	if !ok {
		return nil, fmt.Errorf("unknown view %q (have %v)", name, core.Names())
	}
	h, ok := factory(cfg).(Host)
	if !ok {
		return nil, fmt.Errorf("view %q is not interactive", name)
	}
	return h, nil
}

// Carry copies the parameters, camera pose and pause state of src into
// dst so switching views keeps the scene.
func Carry(dst, src Host) {
	if dst == nil || src == nil {
		return
	}
	dst.SetParams(src.Params())
	*dst.Camera() = *src.Camera()
	dst.Clock().SetPaused(src.Clock().Paused())
	dst.SetViewport(src.Viewport())
}
