package render_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/soypat/brickrail/render"
	"gonum.org/v1/gonum/spatial/r3"
)

const cells = 20

func box(t testing.TB) sdf.SDF3 {
	t.Helper()
	b, err := sdf.Box3D(v3.Vec{X: 30, Y: 20, Z: 10}, 1)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSTLCreateWriteRead(t *testing.T) {
	s := box(t)
	path := filepath.Join(t.TempDir(), "box.stl")
	n, err := render.CreateSTL(path, render.NewMesh(s, cells))
	if err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(bfile) != 84+50*n {
		t.Fatalf("file size %d for %d triangles", len(bfile), n)
	}

	model, err := render.RenderAll(render.NewMesh(s, cells))
	if err != nil {
		t.Fatal(err)
	}
	if len(model) != n {
		t.Fatalf("RenderAll read %d triangles, CreateSTL wrote %d", len(model), n)
	}
	var b bytes.Buffer
	if err := render.WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}

	got, err := render.ReadSTL(&b)
	if err != nil && !errors.Is(err, render.ErrNormalMismatch) {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Fatalf("read %d triangles, wrote %d", len(got), len(model))
	}
	for i := range got {
		for j := range got[i].V {
			if d := r3.Norm(r3.Sub(got[i].V[j], model[i].V[j])); d > 1e-5 {
				t.Fatalf("triangle %d vertex %d moved by %g", i, j, d)
			}
		}
	}
	min, max := render.Bounds(got)
	const tol = 30. / cells
	want := r3.Vec{X: 15, Y: 10, Z: 5}
	if r3.Norm(r3.Add(min, want)) > tol || r3.Norm(r3.Sub(max, want)) > tol {
		t.Errorf("mesh bounds %v %v, want ±%v", min, max, want)
	}
}

func TestReadSTLRejects(t *testing.T) {
	header := func(count uint32) []byte {
		b := make([]byte, 84)
		binary.LittleEndian.PutUint32(b[80:], count)
		return b
	}
	triangle := func(vals ...float32) []byte {
		b := make([]byte, 50)
		for i, v := range vals {
			binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
		}
		return b
	}
	good := triangle(0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0)
	nan := triangle(0, 0, 1, float32(math.NaN()), 0, 0, 1, 0, 0, 0, 1, 0)
	collapsed := triangle(0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0)
	for _, test := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", header(1)[:40]},
		{"zero triangles", header(0)},
		{"truncated", append(header(2), good...)},
		{"nan vertex", append(header(1), nan...)},
		{"collapsed", append(header(1), collapsed...)},
	} {
		if _, err := render.ReadSTL(bytes.NewReader(test.data)); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}

	flipped := triangle(0, 0, -1, 0, 0, 0, 1, 0, 0, 0, 1, 0)
	model, err := render.ReadSTL(bytes.NewReader(append(append(header(2), good...), flipped...)))
	if !errors.Is(err, render.ErrNormalMismatch) {
		t.Errorf("want normal mismatch, got %v", err)
	}
	if len(model) != 2 {
		t.Errorf("mismatched normals should still return triangles, got %d", len(model))
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	if err := render.WriteSTL(&bytes.Buffer{}, nil); err == nil {
		t.Error("expected error writing empty model")
	}
}

func TestCells(t *testing.T) {
	s := box(t)
	for _, test := range []struct {
		size float64
		want int
	}{
		{1, 30},
		{0.7, 43},
		{30, 1},
		{100, 1},
	} {
		if got := render.Cells(s, test.size); got != test.want {
			t.Errorf("Cells(%g) = %d, want %d", test.size, got, test.want)
		}
	}
}
