// Package mesh loads Wavefront OBJ geometry.
//
// Parsing is delegated to gwob; this wraps the result with the load
// diagnostics and summary queries a caller reporting on an asset wants.
package mesh

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
)

// Mesh is decoded OBJ geometry plus whatever the parser had to say about it.
type Mesh struct {
	obj *gwob.Obj

	// Warnings are non-fatal parser and material-lib diagnostics, in the
	// order they were reported.
	Warnings []string

	// Materials maps material names from the resolved material lib. Nil when
	// the OBJ names no lib or the lib could not be read.
	Materials map[string]*gwob.Material
}

// LoadFile parses the OBJ at path. A material lib named by the file is
// resolved relative to the file's directory; failure to read it is a
// warning on the returned Mesh, not an error.
func LoadFile(path string) (*Mesh, error) {
	m := &Mesh{}
	opts := &gwob.ObjParserOptions{Logger: m.warn}

	o, err := gwob.NewObjFromFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("mesh: parse %s: %w", path, err)
	}
	m.obj = o

	if o.Mtllib != "" {
		lib, err := gwob.ReadMaterialLibFromFile(filepath.Join(filepath.Dir(path), o.Mtllib), opts)
		if err != nil {
			m.warn(fmt.Sprintf("material lib %s: %v", o.Mtllib, err))
		} else {
			m.Materials = lib.Lib
		}
	}
	return m, nil
}

// Load parses OBJ data held in memory. name labels diagnostics only. No
// material lib is resolved; a declared one is noted as a warning.
func Load(name string, data []byte) (*Mesh, error) {
	m := &Mesh{}
	opts := &gwob.ObjParserOptions{Logger: m.warn}

	o, err := gwob.NewObjFromBuf(name, data, opts)
	if err != nil {
		return nil, fmt.Errorf("mesh: parse %s: %w", name, err)
	}
	m.obj = o

	if o.Mtllib != "" {
		m.warn(fmt.Sprintf("material lib %s declared but not resolved for in-memory data", o.Mtllib))
	}
	return m, nil
}

func (m *Mesh) warn(msg string) { m.Warnings = append(m.Warnings, msg) }

// stride reports floats per vertex record; gwob strides are in bytes.
func (m *Mesh) stride() int { return m.obj.StrideSize / 4 }

// NumVerts reports the number of vertex records.
func (m *Mesh) NumVerts() int {
	if s := m.stride(); s != 0 {
		return len(m.obj.Coord) / s
	}
	return 0
}

// NumTriangles reports the number of indexed triangles.
func (m *Mesh) NumTriangles() int { return len(m.obj.Indices) / 3 }

// NumGroups reports the number of shapes in the file.
func (m *Mesh) NumGroups() int { return len(m.obj.Groups) }

// HasTexCoords reports whether the file carried texture coordinates.
func (m *Mesh) HasTexCoords() bool { return m.obj.TextCoordFound }

// HasNormals reports whether the file carried normals.
func (m *Mesh) HasNormals() bool { return m.obj.NormCoordFound }

// Mtllib reports the material lib name declared by the file, if any.
func (m *Mesh) Mtllib() string { return m.obj.Mtllib }

// Bounds reports the axis-aligned extent of the position attribute. Both
// vectors are zero for a mesh with no vertices.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	n := m.NumVerts()
	if n == 0 {
		return min, max
	}
	step := m.stride()
	off := m.obj.StrideOffsetPosition / 4
	at := func(i int) mgl32.Vec3 {
		j := i*step + off
		return mgl32.Vec3{m.obj.Coord[j], m.obj.Coord[j+1], m.obj.Coord[j+2]}
	}
	min, max = at(0), at(0)
	for i := 1; i < n; i++ {
		v := at(i)
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return min, max
}
