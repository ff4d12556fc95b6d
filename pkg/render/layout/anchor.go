package layout

import (
	"strings"

	"github.com/matzehuels/waffle/pkg/errors"
)

// Anchor is the compass point a chart sticks to when its blocks do not fill
// the panel.
type Anchor int

const (
	AnchorW Anchor = iota
	AnchorC
	AnchorN
	AnchorNE
	AnchorE
	AnchorSE
	AnchorS
	AnchorSW
	AnchorNW
)

var anchorNames = [...]string{"W", "C", "N", "NE", "E", "SE", "S", "SW", "NW"}

// ParseAnchor resolves a compass point (case-insensitive). An empty string
// selects W.
func ParseAnchor(s string) (Anchor, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return AnchorW, nil
	}
	for i, name := range anchorNames {
		if s == name {
			return Anchor(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput,
		"invalid plot anchor: %q (must be one of: C, N, NE, E, SE, S, SW, W, NW)", s)
}

func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return anchorNames[AnchorW]
	}
	return anchorNames[a]
}

// Fractions returns where the free space is split: 0 sticks to the left (or
// bottom) edge, 1 to the right (or top) edge.
func (a Anchor) Fractions() (fx, fy float64) {
	switch a {
	case AnchorC:
		return 0.5, 0.5
	case AnchorN:
		return 0.5, 1
	case AnchorNE:
		return 1, 1
	case AnchorE:
		return 1, 0.5
	case AnchorSE:
		return 1, 0
	case AnchorS:
		return 0.5, 0
	case AnchorSW:
		return 0, 0
	case AnchorNW:
		return 0, 1
	default:
		return 0, 0.5
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Anchor) UnmarshalText(b []byte) error {
	v, err := ParseAnchor(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
