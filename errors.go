package bitmap

import "errors"

// Errors returned by Bitmap operations. Wrapped errors carry detail; test
// for the kind with errors.Is.
var (
	// ErrInvalidDimension is returned when a width or height is negative
	// or the raster it describes would not fit in memory.
	ErrInvalidDimension = errors.New("bitmap: invalid dimension")

	// ErrIndexOutOfRange is returned when a pixel or row index is outside
	// the image after negative-index normalization.
	ErrIndexOutOfRange = errors.New("bitmap: index out of range")

	// ErrFileFormat is returned when input is not a decodable BMP image.
	ErrFileFormat = errors.New("bitmap: malformed or unsupported file")

	// ErrFileNotFound is returned by Load when the path does not exist.
	// Such errors also match fs.ErrNotExist.
	ErrFileNotFound = errors.New("bitmap: file not found")

	// ErrIO is returned when reading or writing image data fails.
	ErrIO = errors.New("bitmap: i/o error")
)
