package bitmap

import (
	"fmt"
	"iter"
)

// Row is a read view of one scanline of a Bitmap.
//
// A Row does not own its pixels: it refers directly to the parent's buffer,
// so pixel writes to the parent are visible through the Row. It must not be
// used after the parent's SetWidth or SetHeight, which replace the buffer.
type Row struct {
	pix []byte
}

// Len returns the number of pixels in the row, equal to the parent's width.
func (r Row) Len() int {
	return len(r.pix) / BytesPerPixel
}

// At returns pixel x of the row. A negative x counts from the end.
func (r Row) At(x int) (RGB, error) {
	n := r.Len()
	nx, ok := normalize(x, n)
	if !ok {
		return RGB{}, fmt.Errorf("%w: x coordinate (%d) is out of bounds (%d)", ErrIndexOutOfRange, x, n)
	}
	p := r.pix[nx*BytesPerPixel : nx*BytesPerPixel+BytesPerPixel]
	return RGB{p[0], p[1], p[2]}, nil
}

// All returns an iterator over the row's pixels, left to right.
func (r Row) All() iter.Seq2[int, RGB] {
	return func(yield func(int, RGB) bool) {
		for i := 0; i+BytesPerPixel <= len(r.pix); i += BytesPerPixel {
			if !yield(i/BytesPerPixel, RGB{r.pix[i], r.pix[i+1], r.pix[i+2]}) {
				return
			}
		}
	}
}

// Bytes returns the scanline's bytes. The slice aliases the parent image.
func (r Row) Bytes() []byte {
	return r.pix
}
