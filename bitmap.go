package bitmap

import "fmt"

// BytesPerPixel is the size of one pixel in the raster: R, G and B.
const BytesPerPixel = 3

// Bitmap is an in-memory RGB raster.
//
// Pixels are stored row-major in a single contiguous buffer of
// Width()*Height()*BytesPerPixel bytes. The pixel at (x, y) starts at byte
// (y*Width() + x)*BytesPerPixel and is laid out R, G, B.
//
// Pixel and row accessors accept negative indices, which count from the end:
// -1 is the last column or row. Exactly one wraparound is applied, so an index
// below -Width() (or -Height()) is out of range.
//
// A Bitmap is not safe for concurrent mutation.
type Bitmap struct {
	width  int
	height int
	data   []byte
}

// Empty returns a 0x0 bitmap.
func Empty() *Bitmap {
	return &Bitmap{data: []byte{}}
}

// New returns a zero-filled (black) bitmap of the given size.
// Returns ErrInvalidDimension if width or height is negative.
func New(width, height int) (*Bitmap, error) {
	data, err := alloc(width, height)
	if err != nil {
		return nil, err
	}
	return &Bitmap{width: width, height: height, data: data}, nil
}

func alloc(width, height int) ([]byte, error) {
	n := bufferLen(width, height)
	if n < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return make([]byte, n), nil
}

// Width returns the image width in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// BytesPerPixel returns the number of bytes used for each pixel. It is
// always 3.
func (b *Bitmap) BytesPerPixel() int {
	return BytesPerPixel
}

// SetWidth changes the width and reallocates the pixel buffer. The new
// buffer is zero-filled; previous pixel content is discarded. Use Resample
// to scale an image while keeping its content.
//
// A negative width returns ErrInvalidDimension and leaves b unchanged.
func (b *Bitmap) SetWidth(width int) error {
	if width < 0 {
		return fmt.Errorf("%w: width %d cannot be negative", ErrInvalidDimension, width)
	}
	return b.resize(width, b.height)
}

// SetHeight changes the height and reallocates the pixel buffer. See
// SetWidth.
func (b *Bitmap) SetHeight(height int) error {
	if height < 0 {
		return fmt.Errorf("%w: height %d cannot be negative", ErrInvalidDimension, height)
	}
	return b.resize(b.width, height)
}

func (b *Bitmap) resize(width, height int) error {
	data, err := alloc(width, height)
	if err != nil {
		return err
	}
	b.width, b.height, b.data = width, height, data
	return nil
}

// Data returns the raw pixel buffer. The slice aliases the image: writes to
// it are writes to the pixels. It is invalidated by SetWidth and SetHeight.
func (b *Bitmap) Data() []byte {
	return b.data
}

// normalize applies single-wraparound to i against n and reports whether
// the result is in [0, n).
func normalize(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// offset returns the byte offset of pixel (x, y) after normalization.
func (b *Bitmap) offset(x, y int) (int, error) {
	nx, ok := normalize(x, b.width)
	if !ok {
		return 0, fmt.Errorf("%w: x coordinate (%d) is out of bounds (%d)", ErrIndexOutOfRange, x, b.width)
	}
	ny, ok := normalize(y, b.height)
	if !ok {
		return 0, fmt.Errorf("%w: y coordinate (%d) is out of bounds (%d)", ErrIndexOutOfRange, y, b.height)
	}
	return (ny*b.width + nx) * BytesPerPixel, nil
}

// Pixel returns the color at (x, y). Negative coordinates count from the
// right and bottom edges.
func (b *Bitmap) Pixel(x, y int) (RGB, error) {
	off, err := b.offset(x, y)
	if err != nil {
		return RGB{}, err
	}
	p := b.data[off : off+BytesPerPixel]
	return RGB{p[0], p[1], p[2]}, nil
}

// SetPixel sets the color at (x, y). Coordinates follow the same rules as
// Pixel; on error the image is not modified.
func (b *Bitmap) SetPixel(x, y int, c RGB) error {
	off, err := b.offset(x, y)
	if err != nil {
		return err
	}
	p := b.data[off : off+BytesPerPixel]
	p[0], p[1], p[2] = c.R, c.G, c.B
	return nil
}

// Row returns a view of scanline y. A negative y counts from the bottom.
func (b *Bitmap) Row(y int) (Row, error) {
	ny, ok := normalize(y, b.height)
	if !ok {
		return Row{}, fmt.Errorf("%w: row (%d) is out of bounds (%d)", ErrIndexOutOfRange, y, b.height)
	}
	stride := b.width * BytesPerPixel
	start := ny * stride
	return Row{pix: b.data[start : start+stride : start+stride]}, nil
}

// Clone returns a deep copy of b.
func (b *Bitmap) Clone() *Bitmap {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &Bitmap{width: b.width, height: b.height, data: data}
}

// IsEmpty reports whether the image has no pixels.
func (b *Bitmap) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}
