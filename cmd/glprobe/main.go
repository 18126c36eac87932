// Command glprobe smoke-tests the graphics stack: it opens a window, brings
// up an OpenGL context, runs one OBJ model and one PNG image through the
// loaders, then clears the screen until the window is closed.
//
// Asset paths are fixed relative to the working directory; a missing asset
// is reported and skipped, only window or context failure is fatal.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"dasa.cc/glprobe/mesh"
	"dasa.cc/glprobe/surface"
	"dasa.cc/glprobe/texture"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	width  = 800
	height = 600
	title  = "OpenGL Test"

	objPath = "src/dummy.obj"
	imgPath = "src/dummy.png"
)

func init() {
	// glfw event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	log.SetPrefix("glprobe: ")
	log.SetFlags(0)

	win, err := surface.Open(width, height, title)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("OpenGL version: %s\n", surface.Version())

	if m, err := mesh.LoadFile(objPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load OBJ: %v\n", err)
	} else {
		fmt.Printf("loaded %s: %d verts, %d tris, %d groups, texcoords=%v normals=%v\n",
			objPath, m.NumVerts(), m.NumTriangles(), m.NumGroups(), m.HasTexCoords(), m.HasNormals())
		if m.NumVerts() > 0 {
			min, max := m.Bounds()
			fmt.Printf("bounds min=%v max=%v\n", min, max)
		}
		for name := range m.Materials {
			fmt.Printf("material: %s\n", name)
		}
		for _, w := range m.Warnings {
			fmt.Printf("WARN: %s\n", w)
		}
	}

	if pix, err := texture.LoadFile(imgPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
	} else {
		fmt.Printf("loaded %s: %s %dx%d\n", imgPath, pix.Format, pix.W, pix.H)
		if max := surface.MaxTextureSize(); pix.W > max || pix.H > max {
			pix = texture.Fit(pix, max)
			fmt.Printf("scaled to fit context limit %d: %dx%d\n", max, pix.W, pix.H)
		}
		pix.Release()
	}

	win.Loop(func() {
		gl.ClearColor(0.2, 0.3, 0.4, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	})
	win.Close()
}
