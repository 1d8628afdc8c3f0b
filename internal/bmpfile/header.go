// Package bmpfile reads and writes the Windows BMP container for 24-bit
// uncompressed RGB rasters.
//
// Layout written by this package:
//
//	BITMAPFILEHEADER (14 bytes)
//	  signature   [2]byte  "BM"
//	  fileSize    uint32
//	  reserved1   uint16
//	  reserved2   uint16
//	  dataOffset  uint32
//	BITMAPINFOHEADER (40 bytes)
//	  size        uint32   40
//	  width       int32
//	  height      int32    positive: bottom-up rows, negative: top-down
//	  planes      uint16   1
//	  bitCount    uint16   24
//	  compression uint32   0 (BI_RGB)
//	  imageSize   uint32
//	  xPelsPerM   int32
//	  yPelsPerM   int32
//	  clrUsed     uint32
//	  clrImportant uint32
//	pixel rows, B,G,R per pixel, each row padded to 4 bytes.
//
// All integers are little-endian. The reader also accepts the larger
// BITMAPV4HEADER and BITMAPV5HEADER as long as the image itself is 24-bit
// BI_RGB.
package bmpfile

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Header sizes in bytes.
const (
	FileHeaderLen   = 14
	InfoHeaderLen   = 40
	V4InfoHeaderLen = 108
	V5InfoHeaderLen = 124

	// HeaderLen is the combined header size of files written by Encode.
	HeaderLen = FileHeaderLen + InfoHeaderLen
)

const (
	signature = "BM"

	bitsPerPixel   = 24
	bytesPerPixel  = bitsPerPixel / 8
	compressionRGB = 0

	// 72 DPI.
	defaultResolution = 2835
)

// MaxPixels bounds width*height accepted by Decode, so a forged header
// cannot request an unbounded allocation.
const MaxPixels = 1 << 28

// Errors.
var (
	// ErrInvalidFormat means the input is not a well-formed BMP file.
	ErrInvalidFormat = errors.New("bmpfile: invalid format")

	// ErrUnsupported means the input is a valid BMP that uses a feature
	// other than 24-bit uncompressed pixels.
	ErrUnsupported = errors.New("bmpfile: unsupported BMP variant")
)

// FileHeader is the BITMAPFILEHEADER.
type FileHeader struct {
	FileSize   uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32
}

// Marshal file header.
func (h FileHeader) Marshal() []byte {
	out := make([]byte, FileHeaderLen)
	copy(out[0:2], signature)
	binary.LittleEndian.PutUint32(out[2:6], h.FileSize)
	binary.LittleEndian.PutUint16(out[6:8], h.Reserved1)
	binary.LittleEndian.PutUint16(out[8:10], h.Reserved2)
	binary.LittleEndian.PutUint32(out[10:14], h.DataOffset)
	return out
}

// Unmarshal file header from b, which must hold at least FileHeaderLen bytes.
func (h *FileHeader) Unmarshal(b []byte) error {
	if len(b) < FileHeaderLen {
		return fmt.Errorf("%w: file header is %d bytes", ErrInvalidFormat, len(b))
	}
	if string(b[0:2]) != signature {
		return fmt.Errorf("%w: bad signature %q", ErrInvalidFormat, b[0:2])
	}
	h.FileSize = binary.LittleEndian.Uint32(b[2:6])
	h.Reserved1 = binary.LittleEndian.Uint16(b[6:8])
	h.Reserved2 = binary.LittleEndian.Uint16(b[8:10])
	h.DataOffset = binary.LittleEndian.Uint32(b[10:14])
	return nil
}

// InfoHeader is the BITMAPINFOHEADER. The V4 and V5 headers start with
// the same fields.
type InfoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// Marshal info header. Always produces the 40-byte form.
func (h InfoHeader) Marshal() []byte {
	out := make([]byte, InfoHeaderLen)
	binary.LittleEndian.PutUint32(out[0:4], InfoHeaderLen)
	binary.LittleEndian.PutUint32(out[4:8], uint32(h.Width))
	binary.LittleEndian.PutUint32(out[8:12], uint32(h.Height))
	binary.LittleEndian.PutUint16(out[12:14], h.Planes)
	binary.LittleEndian.PutUint16(out[14:16], h.BitCount)
	binary.LittleEndian.PutUint32(out[16:20], h.Compression)
	binary.LittleEndian.PutUint32(out[20:24], h.ImageSize)
	binary.LittleEndian.PutUint32(out[24:28], uint32(h.XPixelsPerMeter))
	binary.LittleEndian.PutUint32(out[28:32], uint32(h.YPixelsPerMeter))
	binary.LittleEndian.PutUint32(out[32:36], h.ColorsUsed)
	binary.LittleEndian.PutUint32(out[36:40], h.ColorsImportant)
	return out
}

// Unmarshal info header from b. Only the first InfoHeaderLen bytes are
// interpreted; b must hold at least that many.
func (h *InfoHeader) Unmarshal(b []byte) error {
	if len(b) < InfoHeaderLen {
		return fmt.Errorf("%w: info header is %d bytes", ErrInvalidFormat, len(b))
	}
	h.Size = binary.LittleEndian.Uint32(b[0:4])
	h.Width = int32(binary.LittleEndian.Uint32(b[4:8]))
	h.Height = int32(binary.LittleEndian.Uint32(b[8:12]))
	h.Planes = binary.LittleEndian.Uint16(b[12:14])
	h.BitCount = binary.LittleEndian.Uint16(b[14:16])
	h.Compression = binary.LittleEndian.Uint32(b[16:20])
	h.ImageSize = binary.LittleEndian.Uint32(b[20:24])
	h.XPixelsPerMeter = int32(binary.LittleEndian.Uint32(b[24:28]))
	h.YPixelsPerMeter = int32(binary.LittleEndian.Uint32(b[28:32]))
	h.ColorsUsed = binary.LittleEndian.Uint32(b[32:36])
	h.ColorsImportant = binary.LittleEndian.Uint32(b[36:40])
	return nil
}

// RowSize returns the padded on-disk size of one 24-bit row.
func RowSize(width int) int {
	return (width*bytesPerPixel + 3) &^ 3
}
