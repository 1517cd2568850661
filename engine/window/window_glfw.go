package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// newPlatformWindow creates the GLFW window with a resize callback and stores it as the internal window.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: failed to initialize GLFW: %v", common.ErrInitialization, err)
	}

	glfw.WindowHint(glfw.Resizable, boolHint(w.resizable))
	switch w.clientAPI {
	case ClientAPINone:
		// WebGPU provides its own graphics API, so disable OpenGL context creation.
		// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	default:
		glfw.WindowHint(glfw.ContextVersionMajor, w.glMajor)
		glfw.WindowHint(glfw.ContextVersionMinor, w.glMinor)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("%w: failed to create GLFW window: %v", common.ErrInitialization, err)
	}

	if w.clientAPI == ClientAPIOpenGL {
		win.MakeContextCurrent()
		if w.vsync {
			glfw.SwapInterval(1)
		} else {
			glfw.SwapInterval(0)
		}
	}

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	// Use framebuffer size callback for pixel-accurate resize events.
	// On high-DPI displays (e.g., macOS Retina), framebuffer size differs from window size.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFramebufferSizeCallback
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	// Cursor positions are reported in screen coordinates, which only match the
	// framebuffer at a content scale of 1.
	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_size
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.screenWidth = width
		w.screenHeight = height
		if w.onScreenResize != nil {
			w.onScreenResize(width, height)
		}
	})

	// Update stored dimensions to reflect actual framebuffer size (may differ from requested on high-DPI).
	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width = fbWidth
	w.height = fbHeight
	w.screenWidth, w.screenHeight = win.GetSize()

	return nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// internal returns the GLFW window, or nil if it was never created or already closed.
func internal(w *engineWindow) *glfwWindow {
	if w.internalWindow == nil {
		return nil
	}
	return w.internalWindow.(*glfwWindow)
}

// platformGetSurfaceDescriptor creates a platform-appropriate wgpu.SurfaceDescriptor from the GLFW window.
// Uses the wgpuglfw bridge package which has per-platform implementations (Windows, X11, Wayland, macOS).
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	gw := internal(w)
	if gw == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

// platformIsRunningCheck returns whether the GLFW window is still active.
// Returns false if the internal window is nil, the running flag is cleared, or GLFW reports ShouldClose.
//
// Parameters:
//   - w: the engineWindow to check
//
// Returns:
//   - bool: true if the window is still running
func platformIsRunningCheck(w *engineWindow) bool {
	gw := internal(w)
	if gw == nil {
		return false
	}
	return gw.running && !gw.window.ShouldClose()
}

// platformRequestClose flags the window to close at the end of the current iteration.
func platformRequestClose(w *engineWindow) {
	if gw := internal(w); gw != nil {
		gw.running = false
		gw.window.SetShouldClose(true)
	}
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
// Returns an error if the internal window has not been initialized.
//
// Parameters:
//   - w: the engineWindow to close
//
// Returns:
//   - error: error if the window is not initialized
func platformCloseWindow(w *engineWindow) error {
	gw := internal(w)
	if gw == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	w.internalWindow = nil
	glfw.Terminate()
	return nil
}

// platformProcessMessages polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}

func platformSwapBuffers(w *engineWindow) {
	if gw := internal(w); gw != nil && w.clientAPI == ClientAPIOpenGL {
		gw.window.SwapBuffers()
	}
}

func platformKeyDown(w *engineWindow, keyCode int) bool {
	gw := internal(w)
	return gw != nil && gw.window.GetKey(glfw.Key(keyCode)) == glfw.Press
}

func platformMouseButtonDown(w *engineWindow, button int) bool {
	gw := internal(w)
	return gw != nil && gw.window.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func platformCursorPos(w *engineWindow) (x, y float64) {
	if gw := internal(w); gw != nil {
		return gw.window.GetCursorPos()
	}
	return 0, 0
}

// platformSetCursorHidden switches between the hidden and normal cursor modes.
//
// Reference: https://www.glfw.org/docs/latest/input_guide.html#cursor_mode
func platformSetCursorHidden(w *engineWindow, hidden bool) {
	gw := internal(w)
	if gw == nil {
		return
	}
	mode := glfw.CursorNormal
	if hidden {
		mode = glfw.CursorHidden
	}
	gw.window.SetInputMode(glfw.CursorMode, mode)
}

func platformWarpCursor(w *engineWindow, x, y float64) {
	if gw := internal(w); gw != nil {
		gw.window.SetCursorPos(x, y)
	}
}

func platformTime() float64 {
	return glfw.GetTime()
}
