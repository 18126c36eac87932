package mesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const triobj = `mtllib dummy.mtl
o tri
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
usemtl white
f 1/1/1 2/2/1 3/3/1
`

const trimtl = `newmtl white
Kd 1 1 1
`

func TestLoad(t *testing.T) {
	m, err := Load("tri.obj", []byte(triobj))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if have, want := m.NumVerts(), 3; have != want {
		t.Fatalf("Unexpected vertex count, have %v, want %v", have, want)
	}
	if have, want := m.NumTriangles(), 1; have != want {
		t.Fatalf("Unexpected triangle count, have %v, want %v", have, want)
	}
	if m.NumGroups() == 0 {
		t.Fatal("Load reported zero groups.")
	}
	if !m.HasTexCoords() || !m.HasNormals() {
		t.Fatalf("Missing attributes, texcoords %v, normals %v", m.HasTexCoords(), m.HasNormals())
	}
	if have, want := m.Mtllib(), "dummy.mtl"; have != want {
		t.Fatalf("Unexpected mtllib, have %q, want %q", have, want)
	}
	// declared lib can't resolve for in-memory data
	if len(m.Warnings) == 0 {
		t.Fatal("Expected a warning for the unresolved material lib.")
	}
}

func TestBounds(t *testing.T) {
	m, err := Load("tri.obj", []byte(triobj))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	min, max := m.Bounds()
	if want := (mgl32.Vec3{0, 0, 0}); min != want {
		t.Fatalf("Unexpected min, have %v, want %v", min, want)
	}
	if want := (mgl32.Vec3{1, 1, 0}); max != want {
		t.Fatalf("Unexpected max, have %v, want %v", max, want)
	}
}

func TestLoadFileMaterials(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tri.obj"), []byte(triobj), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "dummy.mtl"), []byte(trimtl), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadFile(filepath.Join(dir, "tri.obj"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if _, ok := m.Materials["white"]; !ok {
		t.Fatalf("Material lib not resolved, have %v", m.Materials)
	}
}

func TestLoadFileMissingMaterialLib(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tri.obj"), []byte(triobj), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadFile(filepath.Join(dir, "tri.obj"))
	if err != nil {
		t.Fatalf("Missing material lib must not fail the load: %v", err)
	}
	if len(m.Warnings) == 0 {
		t.Fatal("Expected a warning for the missing material lib.")
	}
	if m.Materials != nil {
		t.Fatalf("Materials should be nil, have %v", m.Materials)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.obj")); err == nil {
		t.Fatal("Expected error for missing file.")
	}
}

func BenchmarkLoad(b *testing.B) {
	b.ReportAllocs()
	data := []byte(triobj)
	for n := 0; n < b.N; n++ {
		if _, err := Load("tri.obj", data); err != nil {
			b.Fatal(err)
		}
	}
}
