// Package ids generates the printable identifiers attached to drawables.
package ids

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	PrefixRectangle = "rect"
	PrefixSquare    = "square"
	PrefixCircle    = "circle"
	PrefixOval      = "oval"
	PrefixTriangle  = "tri"
	PrefixPolyline  = "poly"
	PrefixSquiggle  = "squiggle"
	PrefixImage     = "img"
	PrefixOverlay   = "overlay"
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

// Prefix returns the type prefix of id.
func Prefix(id string) (string, error) {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	return parsed.Prefix(), nil
}

func Validate(id, expectedPrefix string) error {
	prefix, err := Prefix(id)
	if err != nil {
		return err
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, prefix, id)
	}
	return nil
}
