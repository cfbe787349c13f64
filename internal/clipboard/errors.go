package clipboard

import "errors"

var (
	// ErrNoImage is returned when the desktop clipboard holds no PNG.
	ErrNoImage = errors.New("clipboard does not contain image data")
	// ErrNoText is returned when the desktop clipboard holds no text.
	ErrNoText = errors.New("clipboard does not contain text data")
	// ErrUnsupported is returned on platforms without a desktop clipboard
	// backend for the requested format.
	ErrUnsupported = errors.New("clipboard format not supported on this platform")
)
