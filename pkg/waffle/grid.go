package waffle

import (
	"strings"

	"github.com/matzehuels/waffle/pkg/errors"
)

// StartingLocation is the grid corner where traversal begins.
type StartingLocation int

const (
	SouthWest StartingLocation = iota
	NorthWest
	NorthEast
	SouthEast
)

// ParseStartingLocation resolves NW, SW, NE or SE (case-insensitive).
// An empty string selects SouthWest.
func ParseStartingLocation(s string) (StartingLocation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "SW":
		return SouthWest, nil
	case "NW":
		return NorthWest, nil
	case "NE":
		return NorthEast, nil
	case "SE":
		return SouthEast, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidLocation,
		"invalid starting location: %q (must be one of: NW, SW, NE, SE)", s)
}

// Orders returns the traversal direction of each axis. Row 0 is the bottom
// row and column 0 the left column; -1 walks an axis from its far end.
func (l StartingLocation) Orders() (rowOrder, columnOrder int) {
	switch l {
	case NorthWest:
		return -1, 1
	case NorthEast:
		return -1, -1
	case SouthEast:
		return 1, -1
	default:
		return 1, 1
	}
}

func (l StartingLocation) String() string {
	switch l {
	case NorthWest:
		return "NW"
	case NorthEast:
		return "NE"
	case SouthEast:
		return "SE"
	default:
		return "SW"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l StartingLocation) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *StartingLocation) UnmarshalText(b []byte) error {
	v, err := ParseStartingLocation(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ArrangingStyle controls how blocks follow each other along a line.
type ArrangingStyle int

const (
	// Normal restarts every line from the same side.
	Normal ArrangingStyle = iota
	// Snake alternates direction on every line.
	Snake
	// NewLine pads each category so the next one starts on a fresh line.
	NewLine
)

// ParseArrangingStyle resolves normal, snake or new-line. An empty string
// selects Normal.
func ParseArrangingStyle(s string) (ArrangingStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return Normal, nil
	case "snake":
		return Snake, nil
	case "new-line":
		return NewLine, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidArrangingStyle,
		"invalid block arranging style: %q (must be one of: normal, snake, new-line)", s)
}

func (s ArrangingStyle) String() string {
	switch s {
	case Snake:
		return "snake"
	case NewLine:
		return "new-line"
	default:
		return "normal"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ArrangingStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ArrangingStyle) UnmarshalText(b []byte) error {
	v, err := ParseArrangingStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Grid holds the grid-shaping parameters of a single chart. A zero Rows or
// Columns means the dimension is derived from the values.
type Grid struct {
	Rows     int
	Columns  int
	Rounding RoundingRule
	Style    ArrangingStyle
	Location StartingLocation
	Vertical bool
}
