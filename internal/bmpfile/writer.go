package bmpfile

import (
	"fmt"
	"io"
	"math"
)

// Encode writes m as a 24-bit uncompressed bottom-up BMP.
func Encode(w io.Writer, m *Image) error {
	if m.Width < 0 || m.Height < 0 {
		return fmt.Errorf("bmpfile: negative dimensions %dx%d", m.Width, m.Height)
	}
	stride := m.Width * bytesPerPixel
	if len(m.Pix) != stride*m.Height {
		return fmt.Errorf("bmpfile: pixel buffer is %d bytes, want %d", len(m.Pix), stride*m.Height)
	}

	rowSize := RowSize(m.Width)
	imageSize := int64(rowSize) * int64(m.Height)
	if m.Width > math.MaxInt32 || m.Height > math.MaxInt32 || HeaderLen+imageSize > math.MaxUint32 {
		return fmt.Errorf("%w: %dx%d does not fit a BMP file", ErrUnsupported, m.Width, m.Height)
	}

	fh := FileHeader{
		FileSize:   uint32(HeaderLen + imageSize),
		DataOffset: HeaderLen,
	}
	ih := InfoHeader{
		Size:            InfoHeaderLen,
		Width:           int32(m.Width),
		Height:          int32(m.Height),
		Planes:          1,
		BitCount:        bitsPerPixel,
		Compression:     compressionRGB,
		ImageSize:       uint32(imageSize),
		XPixelsPerMeter: defaultResolution,
		YPixelsPerMeter: defaultResolution,
	}

	header := append(fh.Marshal(), ih.Marshal()...)
	if _, err := w.Write(header); err != nil {
		return err
	}

	// Padding bytes at the end of row stay zero.
	row := make([]byte, rowSize)
	for y := m.Height - 1; y >= 0; y-- {
		src := m.Pix[y*stride : (y+1)*stride]
		for x := 0; x < stride; x += bytesPerPixel {
			row[x] = src[x+2]
			row[x+1] = src[x+1]
			row[x+2] = src[x]
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
