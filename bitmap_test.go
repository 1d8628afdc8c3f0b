package bitmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradientPixel is the color stored at (x, y) in testdata/gradient.bmp.
func gradientPixel(x, y int) RGB {
	return RGB{R: uint8(x * 6), G: uint8(y * 8), B: uint8((x + y) * 3)}
}

func loadGradient(t *testing.T) *Bitmap {
	t.Helper()
	b, err := Load("testdata/gradient.bmp")
	require.NoError(t, err)
	return b
}

func TestEmpty(t *testing.T) {
	b := Empty()
	assert.Equal(t, 0, b.Width())
	assert.Equal(t, 0, b.Height())
	assert.Equal(t, 3, b.BytesPerPixel())
	assert.Empty(t, b.Data())
	assert.True(t, b.IsEmpty())

	_, err := b.Pixel(0, 0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = b.Row(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       error
	}{
		{"square", 10, 10, nil},
		{"wide", 100, 1, nil},
		{"zero width", 0, 10, nil},
		{"zero height", 10, 0, nil},
		{"negative width", -1, 10, ErrInvalidDimension},
		{"negative height", 10, -1, ErrInvalidDimension},
		{"overflow", math.MaxInt, 2, ErrInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.width, tt.height)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width, b.Width())
			assert.Equal(t, tt.height, b.Height())
			assert.Len(t, b.Data(), tt.width*tt.height*BytesPerPixel)
			for _, v := range b.Data() {
				require.Zero(t, v)
			}
		})
	}
}

func TestSetDimensions(t *testing.T) {
	b := loadGradient(t)

	require.NoError(t, b.SetWidth(b.Width()+1))
	assert.Equal(t, 42, b.Width())
	assert.Len(t, b.Data(), 42*30*BytesPerPixel)

	require.NoError(t, b.SetHeight(900))
	assert.Equal(t, 900, b.Height())
	assert.Len(t, b.Data(), 42*900*BytesPerPixel)

	require.NoError(t, b.SetWidth(0))
	assert.Empty(t, b.Data())
	assert.True(t, b.IsEmpty())
}

func TestSetDimensionsNegative(t *testing.T) {
	b := loadGradient(t)
	before := b.Clone()

	require.ErrorIs(t, b.SetWidth(-1), ErrInvalidDimension)
	require.ErrorIs(t, b.SetHeight(-1), ErrInvalidDimension)

	assert.Equal(t, before.Width(), b.Width())
	assert.Equal(t, before.Height(), b.Height())
	assert.Equal(t, before.Data(), b.Data())
}

func TestPixel(t *testing.T) {
	b := loadGradient(t)

	for _, p := range [][2]int{{0, 0}, {10, 5}, {40, 29}, {7, 13}} {
		got, err := b.Pixel(p[0], p[1])
		require.NoError(t, err)
		assert.Equal(t, gradientPixel(p[0], p[1]), got, "pixel %v", p)
	}
}

func TestPixelNegativeIndexing(t *testing.T) {
	b := loadGradient(t)
	w, h := b.Width(), b.Height()

	for x := 0; x < w; x += 3 {
		for y := 0; y < h; y += 3 {
			want, err := b.Pixel(x, y)
			require.NoError(t, err)

			for _, p := range [][2]int{{x - w, y}, {x, y - h}, {x - w, y - h}} {
				got, err := b.Pixel(p[0], p[1])
				require.NoError(t, err)
				require.Equal(t, want, got, "pixel %v", p)
			}
		}
	}

	last, err := b.Pixel(-1, -1)
	require.NoError(t, err)
	assert.Equal(t, gradientPixel(w-1, h-1), last)
}

func TestSetPixel(t *testing.T) {
	b := loadGradient(t)

	p, err := b.Pixel(20, 11)
	require.NoError(t, err)
	want := RGB{p.R + 1, p.G + 1, p.B + 1}

	require.NoError(t, b.SetPixel(20, 11, want))
	got, err := b.Pixel(20, 11)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	off := (11*b.Width() + 20) * BytesPerPixel
	assert.Equal(t, []byte{want.R, want.G, want.B}, b.Data()[off:off+3])
}

func TestSetPixelNegativeIndexing(t *testing.T) {
	b := loadGradient(t)
	w, h := b.Width(), b.Height()

	for x := 1; x < w; x += 5 {
		for y := 1; y < h; y += 5 {
			for i, p := range [][2]int{{x - w, y}, {x, y - h}, {x - w, y - h}} {
				c := RGB{uint8(x + i), uint8(y + i), uint8(i)}
				require.NoError(t, b.SetPixel(p[0], p[1], c))

				got, err := b.Pixel(x, y)
				require.NoError(t, err)
				require.Equal(t, c, got, "write at %v", p)
			}
		}
	}
}

func TestPixelOutOfRange(t *testing.T) {
	b := loadGradient(t)
	w, h := b.Width(), b.Height()

	tests := []struct {
		name string
		x, y int
	}{
		{"x equals width", w, 0},
		{"large x", w + 1, 0},
		{"y equals height", 0, h},
		{"large y", 0, h + 1},
		{"large negative x", -(w + 1), 0},
		{"large negative y", 0, -(h + 1)},
		{"far negative x", -3 * w, 0},
		{"both out", w + 10, h + 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := b.Clone()

			_, err := b.Pixel(tt.x, tt.y)
			require.ErrorIs(t, err, ErrIndexOutOfRange)

			err = b.SetPixel(tt.x, tt.y, RGB{1, 2, 3})
			require.ErrorIs(t, err, ErrIndexOutOfRange)
			require.Equal(t, before.Data(), b.Data())
		})
	}
}

func TestPixelOutOfRangeMessage(t *testing.T) {
	b, err := New(4, 3)
	require.NoError(t, err)

	_, err = b.Pixel(-5, 0)
	require.EqualError(t, err, "bitmap: index out of range: x coordinate (-5) is out of bounds (4)")

	_, err = b.Pixel(0, 3)
	require.EqualError(t, err, "bitmap: index out of range: y coordinate (3) is out of bounds (3)")
}

func TestData(t *testing.T) {
	b := loadGradient(t)
	require.Len(t, b.Data(), b.Width()*b.Height()*b.BytesPerPixel())

	// Golden offsets into testdata/gradient.bmp.
	golden := map[int]byte{
		0:    0,
		123:  0,
		645:  60,
		646:  40,
		647:  45,
		1000: 64,
		2500: 160,
		3689: 207,
	}
	for off, want := range golden {
		assert.Equal(t, want, b.Data()[off], "offset %d", off)
	}

	val := b.Data()[1337]
	b.Data()[1337] = val + 1
	assert.Equal(t, val+1, b.Data()[1337])

	// Writes through Data are visible to Pixel.
	b.Data()[0], b.Data()[1], b.Data()[2] = 9, 8, 7
	p, err := b.Pixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, RGB{9, 8, 7}, p)
}

func TestDataOutOfRangePanics(t *testing.T) {
	b, err := New(2, 2)
	require.NoError(t, err)
	data := b.Data()
	assert.Panics(t, func() { _ = data[len(b.Data())] })
}

func TestClone(t *testing.T) {
	b := loadGradient(t)
	c := b.Clone()
	require.Equal(t, b.Data(), c.Data())

	require.NoError(t, c.SetPixel(0, 0, RGB{1, 1, 1}))
	p, err := b.Pixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, gradientPixel(0, 0), p)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		i, n   int
		want   int
		wantOK bool
	}{
		{0, 5, 0, true},
		{4, 5, 4, true},
		{5, 5, 5, false},
		{-1, 5, 4, true},
		{-5, 5, 0, true},
		{-6, 5, -1, false},
		{-11, 5, -6, false},
		{0, 0, 0, false},
		{-1, 0, -1, false},
	}
	for _, tt := range tests {
		got, ok := normalize(tt.i, tt.n)
		assert.Equal(t, tt.wantOK, ok, "normalize(%d, %d)", tt.i, tt.n)
		if ok {
			assert.Equal(t, tt.want, got, "normalize(%d, %d)", tt.i, tt.n)
		}
	}
}

func TestBufferLen(t *testing.T) {
	assert.Equal(t, 0, bufferLen(0, 0))
	assert.Equal(t, 3*4*5, bufferLen(4, 5))
	assert.Equal(t, -1, bufferLen(-1, 5))
	assert.Equal(t, -1, bufferLen(math.MaxInt, math.MaxInt))
	assert.Equal(t, -1, bufferLen(math.MaxInt/2, 1))
}
