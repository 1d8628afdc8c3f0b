// Package bitmap reads, edits and writes 24-bit RGB BMP images.
//
// # Overview
//
// A Bitmap is an in-memory raster of RGB pixels held in one contiguous,
// row-major buffer. It can be loaded from a BMP file, created empty or
// filled with random noise, edited pixel by pixel, by row, or through the
// raw buffer, and saved back as a standard Windows BMP.
//
// # Quick Start
//
//	import "github.com/gogpu/bitmap"
//
//	img, err := bitmap.Load("mandel.bmp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Negative indices count from the end: this is the bottom-right pixel.
//	px, _ := img.Pixel(-1, -1)
//	_ = img.SetPixel(0, 0, bitmap.RGB{R: 255})
//
//	_ = img.Save("out.bmp")
//
// # Indexing
//
// Pixel, SetPixel and Row apply a single wraparound to negative indices:
// x becomes x+Width() once, then must lie in [0, Width()). So -1 is the last
// column and -Width() the first, while -Width()-1 is out of range and
// returns ErrIndexOutOfRange. The image.Image methods (At, Set) keep the
// standard library conventions instead.
//
// # Memory Layout
//
// Data returns the buffer itself. The pixel at (x, y) occupies bytes
// (y*Width()+x)*3 through +2, in R, G, B order. Row returns a view of one
// scanline that shares the same memory. Both are invalidated by SetWidth
// and SetHeight, which allocate a new zero-filled buffer.
//
// # Errors
//
// Failures are reported with wrapped sentinel errors: ErrInvalidDimension,
// ErrIndexOutOfRange, ErrFileFormat, ErrFileNotFound and ErrIO. A failed
// operation leaves the Bitmap unchanged.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package bitmap

// Version is the current version of the library.
const Version = "0.1.0"
