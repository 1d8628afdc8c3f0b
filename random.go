package bitmap

import "encoding/binary"

// Random returns a bitmap of the given size with every byte drawn from a
// pseudo-random generator. Without options the generator is seeded
// differently on every call.
//
// Returns ErrInvalidDimension if width or height is negative.
func Random(width, height int, opts ...Option) (*Bitmap, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b, err := New(width, height)
	if err != nil {
		return nil, err
	}

	var word [8]byte
	for i := 0; i < len(b.data); i += len(word) {
		binary.LittleEndian.PutUint64(word[:], o.rng.Uint64())
		copy(b.data[i:], word[:])
	}

	logger().Debug("bitmap: random image", sizeAttr(width, height))
	return b, nil
}
