package bitmap

import (
	"fmt"
	"io"
)

// Metadata summarizes a bitmap's geometry.
type Metadata struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	BytesPerPixel int `yaml:"bytes_per_pixel"`
	DataSize      int `yaml:"data_size"`
}

// Metadata returns b's geometry.
func (b *Bitmap) Metadata() Metadata {
	return Metadata{
		Width:         b.width,
		Height:        b.height,
		BytesPerPixel: BytesPerPixel,
		DataSize:      len(b.data),
	}
}

// PrintMetadata loads the BMP file at path and writes its metadata to w,
// one value per line in this order:
//
//	height
//	width
//	bytes per pixel
func PrintMetadata(w io.Writer, path string) error {
	b, err := Load(path)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d\n%d\n%d\n", b.height, b.width, BytesPerPixel); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
