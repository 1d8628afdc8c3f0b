package bmpfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Image is a decoded raster. Pix holds Width*Height pixels, top row first,
// 3 bytes per pixel in R, G, B order.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// Decode reads a 24-bit uncompressed BMP from r.
//
// ErrUnsupported is returned, before any pixel data is consumed, for valid
// BMP headers that describe another bit depth or a compressed image.
func Decode(r io.Reader) (*Image, error) {
	var b [FileHeaderLen + V5InfoHeaderLen]byte

	// File header plus the info header size field.
	if err := readFull(r, b[:FileHeaderLen+4]); err != nil {
		return nil, err
	}

	var fh FileHeader
	if err := fh.Unmarshal(b[:FileHeaderLen]); err != nil {
		return nil, err
	}

	var ih InfoHeader
	ih.Size = binary.LittleEndian.Uint32(b[FileHeaderLen : FileHeaderLen+4])
	switch ih.Size {
	case InfoHeaderLen, V4InfoHeaderLen, V5InfoHeaderLen:
	default:
		return nil, fmt.Errorf("%w: info header size %d", ErrUnsupported, ih.Size)
	}

	end := FileHeaderLen + int(ih.Size)
	if err := readFull(r, b[FileHeaderLen+4:end]); err != nil {
		return nil, err
	}
	if err := ih.Unmarshal(b[FileHeaderLen:end]); err != nil {
		return nil, err
	}

	width, height, topDown, err := checkInfo(ih)
	if err != nil {
		return nil, err
	}

	if int64(fh.DataOffset) < int64(end) {
		return nil, fmt.Errorf("%w: data offset %d inside header", ErrInvalidFormat, fh.DataOffset)
	}
	if skip := int64(fh.DataOffset) - int64(end); skip > 0 {
		n, err := io.CopyN(io.Discard, r, skip)
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: skipped %d of %d bytes before pixel data: %w",
				ErrInvalidFormat, n, skip, io.ErrUnexpectedEOF)
		}
		if err != nil {
			return nil, err
		}
	}

	// Pix grows as rows arrive, so a header claiming a huge image costs
	// memory only for the pixel data actually present.
	stride := width * bytesPerPixel
	pix := make([]byte, 0, min(stride*height, maxPrealloc))
	if stride > 0 {
		row := make([]byte, RowSize(width))
		for i := range height {
			if err := readFull(r, row); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			n := len(pix)
			pix = append(pix, row[:stride]...)
			bgrToRGB(pix[n:])
		}
	}
	if !topDown {
		flipRows(pix, stride, height)
	}

	return &Image{Width: width, Height: height, Pix: pix}, nil
}

// maxPrealloc bounds the pixel buffer allocated before any row is read.
const maxPrealloc = 1 << 20

// bgrToRGB swaps the first and third byte of every pixel in p.
func bgrToRGB(p []byte) {
	for x := 0; x+2 < len(p); x += bytesPerPixel {
		p[x], p[x+2] = p[x+2], p[x]
	}
}

// flipRows reverses the order of the height rows of stride bytes in pix.
func flipRows(pix []byte, stride, height int) {
	if stride == 0 {
		return
	}
	tmp := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// checkInfo validates the fields Decode depends on and returns the raster
// dimensions and row order.
func checkInfo(ih InfoHeader) (width, height int, topDown bool, err error) {
	if ih.Planes != 1 {
		return 0, 0, false, fmt.Errorf("%w: %d planes", ErrInvalidFormat, ih.Planes)
	}
	if ih.BitCount != bitsPerPixel || ih.Compression != compressionRGB {
		return 0, 0, false, fmt.Errorf("%w: %d bits per pixel, compression %d",
			ErrUnsupported, ih.BitCount, ih.Compression)
	}

	width = int(ih.Width)
	height = int(ih.Height)
	if width < 0 {
		return 0, 0, false, fmt.Errorf("%w: negative width %d", ErrInvalidFormat, width)
	}
	if height < 0 {
		topDown = true
		height = -height
	}
	if width > MaxPixels || height > MaxPixels || (width != 0 && height > MaxPixels/width) {
		return 0, 0, false, fmt.Errorf("%w: %dx%d exceeds %d pixels",
			ErrInvalidFormat, width, height, MaxPixels)
	}
	return width, height, topDown, nil
}

func readFull(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		return err
	}
	return nil
}
