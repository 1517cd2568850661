// Package engine wires the viewer together and runs the single-threaded render loop:
// poll events, map input onto the camera, advance the animation clock, compose the
// frame transforms, draw and present.
package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/Carmen-Shannon/floatarts/engine/animation"
	"github.com/Carmen-Shannon/floatarts/engine/camera"
	"github.com/Carmen-Shannon/floatarts/engine/config"
	"github.com/Carmen-Shannon/floatarts/engine/light"
	"github.com/Carmen-Shannon/floatarts/engine/loader"
	"github.com/Carmen-Shannon/floatarts/engine/model"
	"github.com/Carmen-Shannon/floatarts/engine/profiler"
	"github.com/Carmen-Shannon/floatarts/engine/renderer"
	"github.com/Carmen-Shannon/floatarts/engine/transform"
	"github.com/Carmen-Shannon/floatarts/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// inputSource is the part of the window the loop samples every tick.
type inputSource interface {
	camera.Cursor
	KeyDown(keyCode int) bool
	MouseButtonDown(button int) bool
	CursorPos() (x, y float64)
	RequestClose()
	Time() float64

	// Width and Height are the framebuffer size; ScreenSize is the window size in the
	// coordinates CursorPos and WarpCursor use.
	Width() int
	Height() int
	ScreenSize() (width, height int)
}

// frameDrawer is the part of the renderer the loop drives every tick.
type frameDrawer interface {
	Draw(frame transform.Frame) error
}

// loop holds the per-tick state. It never touches the platform directly.
type loop struct {
	input    inputSource
	drawer   frameDrawer
	bindings [common.ActionCount]int

	cam        *camera.State
	controller camera.Controller
	clock      *animation.Clock
	composer   transform.Composer

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback func(frame transform.Frame)
	lastFrame     transform.Frame
	err           error
}

type engine struct {
	loop

	cfg      config.Config
	window   window.Window
	renderer renderer.Renderer
	loader   loader.Loader

	closeOnce sync.Once
}

// Engine runs the viewer.
type Engine interface {
	// Window returns the engine's window.
	Window() window.Window

	// Config returns the configuration the engine was built from.
	Config() config.Config

	// Camera returns the live camera state. It is mutated by every tick.
	Camera() *camera.State

	// LastFrame returns the transforms composed by the most recent tick.
	LastFrame() transform.Frame

	// EnableProfiler enables the periodic FPS/memory log line.
	EnableProfiler()

	// DisableProfiler disables the periodic FPS/memory log line.
	DisableProfiler()

	// SetFrameCallback registers a callback invoked with every composed frame after it is drawn.
	//
	// Parameters:
	//   - callback: the function to call, or nil to clear
	SetFrameCallback(callback func(frame transform.Frame))

	// Run blocks in the render loop until the window closes or a draw fails.
	//
	// Returns:
	//   - error: the draw error that stopped the loop, or nil after a normal close
	Run() error

	// Quit asks the window to close; Run returns after the current tick.
	Quit()

	// Close releases the renderer and the window in reverse creation order.
	//
	// Returns:
	//   - error: an error from closing the window
	Close() error
}

var _ Engine = &engine{}

// NewEngine builds every collaborator from cfg. The texture decode is started on the
// loader's worker pool before the window opens and is joined before the renderer uploads
// it, so decoding overlaps window and shader creation.
//
// Parameters:
//   - cfg: a validated configuration
//   - options: functional options to configure the engine
//
// Returns:
//   - Engine: the ready engine
//   - error: wraps common.ErrInitialization, common.ErrAssetLoad or common.ErrShader
func NewEngine(cfg config.Config, options ...EngineBuilderOption) (Engine, error) {
	bindings, err := cfg.KeyBindings()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInitialization, err)
	}
	backendType, err := renderer.ParseBackendType(cfg.Backend)
	if err != nil {
		return nil, err
	}

	e := &engine{
		cfg: cfg,
		loop: loop{
			bindings:         bindings,
			profiler:         profiler.NewProfiler(),
			profilingEnabled: cfg.Profiling,
		},
	}
	for _, opt := range options {
		opt(e)
	}
	if e.loader == nil {
		e.loader = loader.NewLoader(loader.WithFlipVertical(true))
	}

	pending := e.loader.LoadTextureAsync(cfg.Texture)

	clientAPI := window.ClientAPIOpenGL
	if backendType == renderer.BackendTypeWGPU {
		clientAPI = window.ClientAPINone
	}
	e.window, err = window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithClientAPI(clientAPI),
		window.WithVSync(cfg.Window.VSync),
	)
	if err != nil {
		// the decode still owns a worker; let it finish before reporting
		pending.Wait()
		return nil, err
	}

	presentMode := renderer.PresentModeUncapped
	if cfg.Window.VSync {
		presentMode = renderer.PresentModeVSync
	}
	variant := cfg.TransformVariant()
	e.renderer, err = renderer.NewRenderer(backendType, e.window, variant,
		renderer.WithClearColor(cfg.ClearColor),
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(renderer.MSAASampleCount(cfg.MSAA)),
	)
	if err != nil {
		pending.Wait()
		return nil, errors.Join(err, e.window.Close())
	}

	tex, err := pending.Wait()
	if err != nil {
		return nil, errors.Join(err, e.Close())
	}
	var marker model.Model
	if variant.HasLight {
		marker = model.NewLightMarker()
	}
	if err := e.renderer.Init(model.ForVariant(variant.Quad, variant.HasNormals), marker, tex); err != nil {
		return nil, errors.Join(err, e.Close())
	}

	e.input = e.window
	e.drawer = e.renderer
	if err := e.buildScene(cfg, variant); err != nil {
		return nil, errors.Join(err, e.Close())
	}

	e.window.SetUpdateCallback(e.update)
	e.window.SetResizeCallback(e.resize)
	e.window.SetScreenResizeCallback(e.screenResize)

	log.Printf("[Engine] %s variant on %s, texture %s", variant.Name, backendType, tex.Name)
	return e, nil
}

// buildScene creates the camera, controller, light, composer and clock from cfg. The
// projection follows the framebuffer size and cursor centring follows the screen size.
func (l *loop) buildScene(cfg config.Config, variant transform.Variant) error {
	width, height := l.input.Width(), l.input.Height()
	screenWidth, screenHeight := l.input.ScreenSize()

	cc := cfg.Camera
	l.cam = camera.NewState(
		camera.WithPosition(mgl32.Vec3(cc.Position)),
		camera.WithFacing(mgl32.Vec3(cc.Facing)),
		camera.WithMoveSpeed(cc.BaseSpeed),
		camera.WithSensitivity(cc.Sensitivity),
	)
	l.controller = camera.NewController(
		camera.WithScreenSize(screenWidth, screenHeight),
		camera.WithBaseSpeed(cc.BaseSpeed),
		camera.WithBoostSpeed(cc.BoostSpeed),
		camera.WithPitchLimit(cc.PitchLimit),
	)

	opts := []transform.ComposerBuilderOption{
		transform.WithFov(cfg.Projection.Fov),
		transform.WithAspect(width, height),
		transform.WithClipPlanes(cfg.Projection.Near, cfg.Projection.Far),
		transform.WithVariant(variant),
	}
	if variant.HasLight {
		lc := cfg.Light
		opts = append(opts, transform.WithLight(light.NewLight(
			light.WithPosition(lc.Position[0], lc.Position[1], lc.Position[2]),
			light.WithColor(lc.Color[0], lc.Color[1], lc.Color[2], lc.Color[3]),
			light.WithMarkerScale(lc.MarkerScale),
		)))
	}
	composer, err := transform.NewComposer(opts...)
	if err != nil {
		return err
	}
	l.composer = composer
	l.clock = variant.NewClock(l.input.Time())
	return nil
}

// sample reads the bound keys, the left mouse button and the cursor.
func (l *loop) sample() camera.InputSnapshot {
	var in camera.InputSnapshot
	for a := range l.bindings {
		in.Pressed[a] = l.input.KeyDown(l.bindings[a])
	}
	in.LookHeld = l.input.MouseButtonDown(common.MouseButtonLeft)
	in.CursorX, in.CursorY = l.input.CursorPos()
	return in
}

// tick runs one iteration: input, clock, composition, draw.
func (l *loop) tick() error {
	in := l.sample()
	if in.Down(common.ActionQuit) {
		l.input.RequestClose()
	}

	l.controller.Update(l.cam, in, l.input)
	l.lastFrame = l.composer.Compose(l.cam, l.clock, l.input.Time())

	if err := l.drawer.Draw(l.lastFrame); err != nil {
		return err
	}
	if l.frameCallback != nil {
		l.frameCallback(l.lastFrame)
	}
	if l.profilingEnabled {
		l.profiler.Tick()
	}
	return nil
}

// update is the window's per-iteration callback.
func (e *engine) update() {
	if e.err != nil {
		return
	}
	if err := e.tick(); err != nil {
		log.Printf("[Engine] draw failed: %v", err)
		e.err = err
		e.window.RequestClose()
	}
}

func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.composer.SetAspect(width, height)
	e.renderer.Resize(width, height)
}

// screenResize keeps cursor centring in the window's screen coordinates.
func (l *loop) screenResize(width, height int) {
	l.controller.SetScreenSize(width, height)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Config() config.Config {
	return e.cfg
}

func (e *engine) Camera() *camera.State {
	return e.cam
}

func (e *engine) LastFrame() transform.Frame {
	return e.lastFrame
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameCallback(callback func(frame transform.Frame)) {
	e.frameCallback = callback
}

func (e *engine) Run() error {
	e.window.ProcessMessages()
	return e.err
}

func (e *engine) Quit() {
	e.window.RequestClose()
}

func (e *engine) Close() error {
	var err error
	e.closeOnce.Do(func() {
		if e.renderer != nil {
			e.renderer.Release()
		}
		if e.window != nil {
			err = e.window.Close()
		}
		log.Printf("[Engine] closed")
	})
	return err
}
