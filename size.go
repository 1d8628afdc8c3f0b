package bitmap

import "math/bits"

// bufferLen returns width*height*BytesPerPixel, or -1 if either dimension
// is negative or the product overflows int.
func bufferLen(width, height int) int {
	if width < 0 || height < 0 {
		return -1
	}
	hi, lo := bits.Mul64(uint64(width), uint64(height))
	if hi != 0 {
		return -1
	}
	hi, lo = bits.Mul64(lo, BytesPerPixel)
	if hi != 0 {
		return -1
	}
	n := int(lo)
	if n < 0 || uint64(n) != lo {
		return -1
	}
	return n
}
