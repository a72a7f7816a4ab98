// Package viewer owns the current model and the repair step list, and drives
// step navigation. It is the only writer of the scene graph.
package viewer

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/repairguide/internal/engine/camera"
	"github.com/Faultbox/repairguide/internal/engine/lighting"
	"github.com/Faultbox/repairguide/internal/engine/scene"
	"github.com/Faultbox/repairguide/internal/logger"
	"github.com/Faultbox/repairguide/pkg/schema"
)

// Info describes the navigation position for step controls.
type Info struct {
	Index       int // -1 when there are no steps
	Total       int
	IsFirst     bool
	IsLast      bool
	Title       string
	Description string
}

// HasSteps reports whether a step list is loaded.
func (i Info) HasSteps() bool {
	return i.Total > 0
}

// Viewer holds the scene graph and navigation state. Mutations are atomic with
// respect to Snapshot, so a render loop can run alongside them.
type Viewer struct {
	mu     sync.RWMutex
	group  *scene.Group
	steps  []schema.Step
	index  int
	camera *camera.Orbit
	stage  lighting.Stage
	log    *zap.Logger
}

// New creates a viewer with no model and no steps.
func New() *Viewer {
	return &Viewer{
		index:  -1,
		camera: camera.NewOrbit(),
		stage:  lighting.Default(),
		log:    logger.Named("viewer"),
	}
}

// LoadModel builds desc and swaps it in, disposing the previous model. The
// step list belongs to the old model and is cleared, and the camera is
// refitted to the new model.
func (v *Viewer) LoadModel(desc schema.ModelDescription) {
	g := scene.Build(desc)
	bounds := g.Bounds()

	v.mu.Lock()
	old := v.group
	v.group = g
	v.steps = nil
	v.index = -1
	v.camera.Fit(bounds)
	v.mu.Unlock()

	if old != nil {
		old.Dispose()
	}
	v.log.Info("model loaded",
		zap.Stringer("id", g.ID),
		zap.String("objectType", g.ObjectType),
		zap.Strings("solids", g.Names()))
}

// HasModel reports whether a model is loaded.
func (v *Viewer) HasModel() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.group != nil
}

// UpdateModelState applies st to the current model without touching
// navigation. It does nothing when no model is loaded.
func (v *Viewer) UpdateModelState(st schema.ModelState) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return scene.ApplyState(v.group, st)
}

// SetSteps replaces the step list, moves to the first step and applies it.
// An empty list leaves the viewer with no steps.
func (v *Viewer) SetSteps(steps []schema.Step) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.steps = append([]schema.Step(nil), steps...)
	if len(v.steps) == 0 {
		v.index = -1
		return nil
	}
	v.index = 0
	v.log.Debug("steps loaded", zap.Int("total", len(v.steps)))
	return scene.ApplyState(v.group, v.steps[0].ModelState)
}

// SetStep moves to step i and applies its state. An index outside the list
// is ignored and reported as false.
func (v *Viewer) SetStep(i int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.setStepLocked(i)
}

// Next moves one step forward.
func (v *Viewer) Next() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.setStepLocked(v.index + 1)
}

// Previous moves one step back.
func (v *Viewer) Previous() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.setStepLocked(v.index - 1)
}

func (v *Viewer) setStepLocked(i int) bool {
	if len(v.steps) == 0 || i < 0 || i >= len(v.steps) {
		return false
	}
	v.index = i
	// Per-solid failures are logged by the scene and never block navigation.
	_ = scene.ApplyState(v.group, v.steps[i].ModelState)
	v.log.Debug("step applied", zap.Int("index", i), zap.String("title", v.steps[i].Title))
	return true
}

// Info returns the current navigation position.
func (v *Viewer) Info() Info {
	v.mu.RLock()
	defer v.mu.RUnlock()

	info := Info{Index: v.index, Total: len(v.steps)}
	if v.index >= 0 && v.index < len(v.steps) {
		info.IsFirst = v.index == 0
		info.IsLast = v.index == len(v.steps)-1
		info.Title = v.steps[v.index].Title
		info.Description = v.steps[v.index].Description
	}
	return info
}

// Steps returns a copy of the step list.
func (v *Viewer) Steps() []schema.Step {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]schema.Step(nil), v.steps...)
}

// Accept applies a chat response: a model first, then its steps. Error
// responses carry only a message and change nothing.
func (v *Viewer) Accept(resp schema.ChatResponse) error {
	if resp.Error {
		v.log.Warn("chat returned an error", zap.String("message", resp.Message))
		return nil
	}
	if resp.ModelData != nil {
		v.LoadModel(*resp.ModelData)
	}
	if len(resp.Steps) > 0 {
		return v.SetSteps(resp.Steps)
	}
	return nil
}

// Snapshot returns a copy of the current scene for rendering.
func (v *Viewer) Snapshot() scene.Frame {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.group.Frame()
}

// Camera returns a copy of the current camera.
func (v *Viewer) Camera() camera.Orbit {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return *v.camera
}

// Stage returns the lights and floor the model is shown on.
func (v *Viewer) Stage() lighting.Stage {
	return v.stage
}

// OrbitCamera rotates the camera by a pointer delta in pixels.
func (v *Viewer) OrbitCamera(dx, dy float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.camera.Drag(dx, dy)
}

// ZoomCamera zooms in for positive delta and out for negative.
func (v *Viewer) ZoomCamera(delta float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.camera.Zoom(delta)
}

// ResetCamera refits the camera to the current model, or to the initial
// position when none is loaded.
func (v *Viewer) ResetCamera() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.group == nil {
		v.camera.Reset()
		return
	}
	v.camera.Fit(v.group.Bounds())
}

// Close disposes the current model.
func (v *Viewer) Close() {
	v.mu.Lock()
	g := v.group
	v.group = nil
	v.steps = nil
	v.index = -1
	v.camera.Reset()
	v.mu.Unlock()

	if g != nil {
		g.Dispose()
	}
}
