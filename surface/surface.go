// Package surface aids in presenting an OpenGL context with little remark.
//
// Open creates the window, makes its context current and resolves the GL
// entry points for it. All calls must happen on the main OS thread; lock it
// before glfw sees anything:
//
//	func init() { runtime.LockOSThread() }
package surface

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns an OS window and its current GL context.
type Window struct {
	win *glfw.Window
}

// Open initializes the windowing system, creates a window and makes its GL
// context current, then resolves function pointers for the context. A nil
// error means the context is ready for GL calls. Errors name the stage that
// failed; the windowing system is torn back down on any failure past init.
func Open(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("surface: init windowing: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("surface: create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("surface: load GL functions: %w", err)
	}

	w, h := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))

	return &Window{win: win}, nil
}

// Loop calls draw, presents the frame and polls for input, once per
// iteration, until the window is asked to close. draw runs with the
// window's context current.
func (s *Window) Loop(draw func()) {
	for !s.win.ShouldClose() {
		draw()
		s.win.SwapBuffers()
		glfw.PollEvents()
	}
}

// Close destroys the window and shuts the windowing system down. The Window
// must not be used afterwards.
func (s *Window) Close() {
	s.win.Destroy()
	glfw.Terminate()
}

// Version reports the GL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// MaxTextureSize reports the largest texture dimension the current context
// accepts.
func MaxTextureSize() int {
	var n int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &n)
	return int(n)
}
