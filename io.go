package bitmap

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sergeymakinen/go-bmp"

	"github.com/gogpu/bitmap/internal/bmpfile"
)

// Load reads a BMP file.
//
// A missing path returns an error matching both ErrFileNotFound and
// fs.ErrNotExist. Content that is not a decodable BMP returns ErrFileFormat.
// The file is closed before Load returns.
func Load(path string) (*Bitmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, fmt.Errorf("%w: open file: %w", ErrIO, err)
	}
	defer func() { _ = f.Close() }()

	b, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	logger().Debug("bitmap: loaded", "path", path, sizeAttr(b.width, b.height))
	return b, nil
}

// Decode reads a BMP image from r.
//
// 24-bit uncompressed files are decoded directly into the raster. Other
// BMP variants (paletted, 16 and 32-bit, RLE, bitfields) are decoded by
// github.com/sergeymakinen/go-bmp and converted to RGB.
func Decode(r io.Reader) (*Bitmap, error) {
	rec := &headerRecorder{r: r}
	m, err := bmpfile.Decode(rec)
	switch {
	case err == nil:
		return &Bitmap{width: m.Width, height: m.Height, data: m.Pix}, nil
	case errors.Is(err, bmpfile.ErrUnsupported):
		return decodeFallback(io.MultiReader(bytes.NewReader(rec.buf), r), err)
	case errors.Is(err, bmpfile.ErrInvalidFormat):
		return nil, fmt.Errorf("%w: %w", ErrFileFormat, err)
	default:
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
}

func decodeFallback(r io.Reader, cause error) (*Bitmap, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileFormat, err)
	}

	b := FromImage(img)
	logger().Warn("bitmap: decoded with fallback decoder",
		"reason", cause.Error(), sizeAttr(b.width, b.height))
	return b, nil
}

// maxHeaderLen covers every header bmpfile.Decode reads before it can
// report ErrUnsupported.
const maxHeaderLen = bmpfile.FileHeaderLen + bmpfile.V5InfoHeaderLen

// headerRecorder keeps a copy of the first maxHeaderLen bytes read through
// it, so a stream rejected after its header can be replayed to another
// decoder.
type headerRecorder struct {
	r   io.Reader
	buf []byte
}

func (h *headerRecorder) Read(p []byte) (int, error) {
	n, err := h.r.Read(p)
	if room := maxHeaderLen - len(h.buf); room > 0 {
		h.buf = append(h.buf, p[:min(n, room)]...)
	}
	return n, err
}

// Save writes b to path as a 24-bit BMP, creating or truncating the file.
// Any failure returns ErrIO; the file is closed on every path.
func (b *Bitmap) Save(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: create file: %w", ErrIO, err)
	}

	w := bufio.NewWriter(f)
	if err := b.Encode(w); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close file: %w", ErrIO, err)
	}

	logger().Debug("bitmap: saved", "path", path, sizeAttr(b.width, b.height))
	return nil
}

// Encode writes b to w as a 24-bit uncompressed BMP.
func (b *Bitmap) Encode(w io.Writer) error {
	m := &bmpfile.Image{Width: b.width, Height: b.height, Pix: b.data}
	err := bmpfile.Encode(w, m)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bmpfile.ErrUnsupported):
		return fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	default:
		return fmt.Errorf("%w: encode: %w", ErrIO, err)
	}
}
