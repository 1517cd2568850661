package window

import (
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// ClientAPI selects the graphics API the window creates a context for.
type ClientAPI int

const (
	// ClientAPIOpenGL creates a core-profile OpenGL context and makes it current.
	ClientAPIOpenGL ClientAPI = iota

	// ClientAPINone creates no context. WebGPU renders through SurfaceDescriptor instead.
	ClientAPINone
)

// Window defines the platform window: the event loop, per-tick input sampling and the
// cursor controls used by the free-look camera.
type Window interface {
	// SetUpdateCallback sets the function run once per loop iteration, after events are polled.
	//
	// Parameters:
	//   - callback: the per-tick function
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: receives the new framebuffer size in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScreenResizeCallback sets the function called when the window is resized in
	// screen coordinates, the space CursorPos and WarpCursor work in.
	//
	// Parameters:
	//   - callback: receives the new window size in screen coordinates
	SetScreenResizeCallback(callback func(width, height int))

	// SurfaceDescriptor returns the platform surface descriptor for WebGPU.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil if the window is closed
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is open and no close was requested.
	IsRunning() bool

	// RequestClose asks the loop to stop after the current iteration.
	RequestClose()

	// Close destroys the window and terminates GLFW.
	//
	// Returns:
	//   - error: if the window was never created
	Close() error

	// ProcessMessages runs the event loop until the window closes, polling events and
	// calling the update callback each iteration.
	ProcessMessages()

	// SwapBuffers presents the OpenGL back buffer. It is a no-op without a GL context.
	SwapBuffers()

	// KeyDown reports whether a key is held.
	//
	// Parameters:
	//   - keyCode: a GLFW key code, see common/key_codes.go
	//
	// Returns:
	//   - bool: true if the key is pressed
	KeyDown(keyCode int) bool

	// MouseButtonDown reports whether a mouse button is held.
	//
	// Parameters:
	//   - button: a GLFW mouse button index
	//
	// Returns:
	//   - bool: true if the button is pressed
	MouseButtonDown(button int) bool

	// CursorPos returns the cursor position in screen coordinates relative to the window.
	CursorPos() (x, y float64)

	// HideCursor hides the cursor while it is over the window.
	HideCursor()

	// ShowCursor restores the normal cursor.
	ShowCursor()

	// WarpCursor moves the cursor to a window position.
	//
	// Parameters:
	//   - x, y: target position in screen coordinates relative to the window
	WarpCursor(x, y float64)

	// Time returns monotonic seconds since GLFW was initialized.
	Time() float64

	// ClientAPI returns the graphics API the window was created for.
	ClientAPI() ClientAPI

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int

	// ScreenSize returns the window size in screen coordinates. It differs from the
	// framebuffer size on high-DPI displays.
	ScreenSize() (width, height int)
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	// title is the window title bar text.
	title string

	// width and height are the current framebuffer size.
	width  int
	height int

	// screenWidth and screenHeight are the current window size in screen coordinates.
	screenWidth  int
	screenHeight int

	// clientAPI selects OpenGL context creation or none.
	clientAPI ClientAPI

	// glMajor and glMinor are the requested OpenGL context version.
	glMajor int
	glMinor int

	// vsync enables a swap interval of 1 for OpenGL.
	vsync bool

	// resizable controls whether the user can resize the window.
	resizable bool

	// internalWindow holds the platform window.
	internalWindow any

	onUpdate func()
	onResize func(width, height int)

	onScreenResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates and opens a platform window. It must be called from the main
// goroutine; the calling OS thread is locked for the process lifetime.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
//   - error: wraps common.ErrInitialization if GLFW or the window cannot be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:     "Float Arts",
		width:     1920,
		height:    1080,
		clientAPI: ClientAPIOpenGL,
		glMajor:   4,
		glMinor:   1,
		vsync:     true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScreenResizeCallback(callback func(width, height int)) {
	w.onScreenResize = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) SwapBuffers() {
	platformSwapBuffers(w)
}

func (w *engineWindow) KeyDown(keyCode int) bool {
	return platformKeyDown(w, keyCode)
}

func (w *engineWindow) MouseButtonDown(button int) bool {
	return platformMouseButtonDown(w, button)
}

func (w *engineWindow) CursorPos() (x, y float64) {
	return platformCursorPos(w)
}

func (w *engineWindow) HideCursor() {
	platformSetCursorHidden(w, true)
}

func (w *engineWindow) ShowCursor() {
	platformSetCursorHidden(w, false)
}

func (w *engineWindow) WarpCursor(x, y float64) {
	platformWarpCursor(w, x, y)
}

func (w *engineWindow) Time() float64 {
	return platformTime()
}

func (w *engineWindow) ClientAPI() ClientAPI {
	return w.clientAPI
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) ScreenSize() (width, height int) {
	return w.screenWidth, w.screenHeight
}
