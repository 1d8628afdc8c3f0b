package bitmap

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Bitmap implements draw.Image so it can be used with the standard image
// packages and golang.org/x/image.
var _ draw.Image = (*Bitmap)(nil)

// ColorModel returns RGBModel.
func (b *Bitmap) ColorModel() color.Model { return RGBModel }

// Bounds returns the rectangle (0, 0)-(Width, Height).
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image. Unlike Pixel it follows the image package
// conventions: no negative wraparound, and black for points outside Bounds.
func (b *Bitmap) At(x, y int) color.Color {
	return b.RGBAt(x, y)
}

// RGBAt is At without the interface conversion.
func (b *Bitmap) RGBAt(x, y int) RGB {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return RGB{}
	}
	i := (y*b.width + x) * BytesPerPixel
	return RGB{b.data[i], b.data[i+1], b.data[i+2]}
}

// Set implements draw.Image. Points outside Bounds are ignored and alpha is
// dropped.
func (b *Bitmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	rgb := RGBModel.Convert(c).(RGB)
	i := (y*b.width + x) * BytesPerPixel
	b.data[i], b.data[i+1], b.data[i+2] = rgb.R, rgb.G, rgb.B
}

// FromImage converts img to a Bitmap. The result always starts at (0, 0);
// alpha is discarded after premultiplication, which composites translucent
// pixels over black.
func FromImage(img image.Image) *Bitmap {
	if b, ok := img.(*Bitmap); ok {
		return b.Clone()
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	b := &Bitmap{width: width, height: height, data: make([]byte, width*height*BytesPerPixel)}

	// Fast path for RGBA images.
	if rgba, ok := img.(*image.RGBA); ok {
		for y := range height {
			src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
			dst := b.data[y*width*BytesPerPixel:]
			for x := range width {
				copy(dst[x*BytesPerPixel:x*BytesPerPixel+BytesPerPixel], src[x*4:x*4+3])
			}
		}
		return b
	}

	i := 0
	for y := range height {
		for x := range width {
			r, g, bl, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			b.data[i] = uint8(r >> 8)
			b.data[i+1] = uint8(g >> 8)
			b.data[i+2] = uint8(bl >> 8)
			i += BytesPerPixel
		}
	}
	return b
}

// Resample returns a copy of b scaled to width x height with Catmull-Rom
// interpolation. It is the content-preserving counterpart of SetWidth and
// SetHeight. A zero-area source or target yields a black image.
func (b *Bitmap) Resample(width, height int) (*Bitmap, error) {
	dst, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if dst.IsEmpty() || b.IsEmpty() {
		return dst, nil
	}

	draw.CatmullRom.Scale(dst, dst.Bounds(), b, b.Bounds(), draw.Src, nil)
	return dst, nil
}
