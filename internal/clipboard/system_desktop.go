//go:build darwin || windows

package clipboard

import (
	"errors"
	"image"

	atotto "github.com/atotto/clipboard"
)

var errNoDisplay = errors.New("clipboard unavailable")

func WriteImage(image.Image) error { return ErrUnsupported }

func ReadImage() (image.Image, error) { return nil, ErrUnsupported }

// WriteText places text on the system clipboard.
func WriteText(text string) error {
	if atotto.Unsupported {
		return errNoDisplay
	}
	return atotto.WriteAll(text)
}

// ReadText returns the system clipboard's text.
func ReadText() (string, error) {
	if atotto.Unsupported {
		return "", errNoDisplay
	}
	s, err := atotto.ReadAll()
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", ErrNoText
	}
	return s, nil
}

func probe() error {
	if atotto.Unsupported {
		return errNoDisplay
	}
	return nil
}
