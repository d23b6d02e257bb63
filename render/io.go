package render

import "io"

// RenderAll drains r and returns every triangle read. Reaching io.EOF is
// not an error.
func RenderAll(r Renderer) ([]Triangle3, error) {
	var (
		err    error
		nt     int
		result = make([]Triangle3, 0, 1<<12)
		buf    = make([]Triangle3, trianglesInBuffer)
	)
	for err == nil {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

type triangle3Buffer struct {
	buf []Triangle3
}

// Read moves triangles out of the buffer into t.
func (b *triangle3Buffer) Read(t []Triangle3) int {
	n := copy(t, b.buf)
	b.buf = b.buf[n:]
	return n
}

// Write appends triangles to the buffer.
func (b *triangle3Buffer) Write(t []Triangle3) int {
	b.buf = append(b.buf, t...)
	return len(t)
}

func (b *triangle3Buffer) Len() int { return len(b.buf) }
