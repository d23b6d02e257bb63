package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
)

// ErrNormalMismatch is returned by ReadSTL when a stored normal disagrees
// with the winding of its vertices. Marching cubes output near sharp edges
// can trigger it, so the triangles are still returned.
var ErrNormalMismatch = errors.New("stored normal differs from vertex winding")

// CreateSTL writes the triangles of r to a binary STL file at path. The
// triangle count in the header is filled in once r is drained.
func CreateSTL(path string, r Renderer) (n int, err error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err = file.Seek(stlHeaderSize, io.SeekStart); err != nil {
		return 0, err
	}
	written, err := io.CopyBuffer(file, &stlStream{r: r}, make([]byte, stlTriangleSize*trianglesInBuffer))
	if err != nil {
		return 0, err
	}
	n = int(written / stlTriangleSize)
	if n == 0 {
		return 0, errors.New("renderer produced no triangles")
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return n, binary.Write(file, binary.LittleEndian, &stlHeader{Count: uint32(n)})
}

// WriteSTL writes model to w in binary STL format.
func WriteSTL(w io.Writer, model []Triangle3) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	if err := binary.Write(w, binary.LittleEndian, &stlHeader{Count: uint32(len(model))}); err != nil {
		return err
	}
	var b [stlTriangleSize]byte
	for _, t := range model {
		toSTL(t).put(b[:])
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

// ReadSTL reads a binary STL stream and checks every face for NaN or
// infinite values, collapsed vertices and a normal that disagrees with the
// vertex winding. Only the last kind of defect is tolerated, reported as
// ErrNormalMismatch alongside the triangles.
func ReadSTL(r io.Reader) (model []Triangle3, readErr error) {
	var header stlHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errors.New("encountered EOF while reading STL header")
		}
		return nil, fmt.Errorf("STL header read failed: %w", err)
	}
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf        [stlTriangleSize]byte
		d          stlTriangle
		i          int
		mismatches int
	)
	defer func() {
		if readErr != nil && !errors.Is(readErr, ErrNormalMismatch) {
			readErr = fmt.Errorf("%d/%d STL triangles read: %w", i+1, header.Count, readErr)
		}
	}()
	model = make([]Triangle3, 0, header.Count)
	for i = 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		d.get(buf[:])
		if err := d.validate(); errors.Is(err, ErrNormalMismatch) {
			mismatches++
		} else if err != nil {
			return nil, err
		}
		model = append(model, d.toTriangle3())
	}
	if mismatches > 0 {
		return model, fmt.Errorf("%w on %d of %d triangles", ErrNormalMismatch, mismatches, header.Count)
	}
	return model, nil
}

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

const trianglesInBuffer = 1 << 10

// stlStream encodes the triangles of a Renderer as STL records.
type stlStream struct {
	r   Renderer
	buf [trianglesInBuffer]Triangle3
}

func (s *stlStream) Read(b []byte) (int, error) {
	ntMax := min(len(b)/stlTriangleSize, len(s.buf))
	if ntMax == 0 {
		return 0, errors.New("need room for at least one 50 byte STL triangle")
	}
	var (
		err error
		it  int // triangles encoded into b
		nt  int
	)
	for it < ntMax && err == nil {
		nt, err = s.r.ReadTriangles(s.buf[:ntMax-it])
		if nt > ntMax-it {
			panic("bug: ReadTriangles read more triangles than requested")
		}
		for _, t := range s.buf[:nt] {
			toSTL(t).put(b[it*stlTriangleSize:])
			it++
		}
	}
	return it * stlTriangleSize, err
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

func toSTL(t Triangle3) stlTriangle {
	return stlTriangle{
		Normal:  f32From(t.Normal()),
		Vertex1: f32From(t.V[0]),
		Vertex2: f32From(t.V[1]),
		Vertex3: f32From(t.V[2]),
	}
}

func (d stlTriangle) toTriangle3() Triangle3 {
	return Triangle3{V: [3]r3.Vec{
		r3From3F32(d.Vertex1),
		r3From3F32(d.Vertex2),
		r3From3F32(d.Vertex3),
	}}
}

func (d stlTriangle) put(b []byte) {
	_ = b[stlTriangleSize-1]
	put3F32(b, d.Normal)
	put3F32(b[12:], d.Vertex1)
	put3F32(b[24:], d.Vertex2)
	put3F32(b[36:], d.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (d *stlTriangle) get(b []byte) {
	_ = b[stlTriangleSize-1]
	get3F32(b, &d.Normal)
	get3F32(b[12:], &d.Vertex1)
	get3F32(b[24:], &d.Vertex2)
	get3F32(b[36:], &d.Vertex3)
}

func (d stlTriangle) validate() error {
	const (
		collapseTol = 0
		normalTol   = 5e-2
	)
	if bad3F32(d.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	if bad3F32(d.Vertex1) || bad3F32(d.Vertex2) || bad3F32(d.Vertex3) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	if d.degenerate(collapseTol) {
		return errors.New("triangle is degenerate")
	}
	// Small faces lose precision in float32, so the normal is recomputed at
	// a larger scale.
	calc := Triangle3{V: [3]r3.Vec{
		r3.Scale(10, r3From3F32(d.Vertex1)),
		r3.Scale(10, r3From3F32(d.Vertex2)),
		r3.Scale(10, r3From3F32(d.Vertex3)),
	}}.Normal()
	if !equalWithin3F32(f32From(calc), d.Normal, normalTol) {
		return ErrNormalMismatch
	}
	return nil
}

// degenerate reports whether two vertices are within tol of each other.
func (d stlTriangle) degenerate(tol float32) bool {
	return equalWithin3F32(d.Vertex1, d.Vertex2, tol) ||
		equalWithin3F32(d.Vertex2, d.Vertex3, tol) ||
		equalWithin3F32(d.Vertex3, d.Vertex1, tol)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

func equalWithin3F32(a, b [3]float32, tol float32) bool {
	return math32.Abs(a[0]-b[0]) <= tol &&
		math32.Abs(a[1]-b[1]) <= tol &&
		math32.Abs(a[2]-b[2]) <= tol
}

func f32From(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func r3From3F32(f [3]float32) r3.Vec {
	return r3.Vec{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}
}
