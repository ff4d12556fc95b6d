package waffle

import (
	"math"
	"strings"

	"github.com/matzehuels/waffle/pkg/errors"
)

// Method selects how Divide turns a quotient into a number.
type Method int

const (
	MethodFloat Method = iota
	MethodNearest
	MethodCeil
	MethodFloor
)

var methodNames = map[string]Method{
	"float":   MethodFloat,
	"nearest": MethodNearest,
	"ceil":    MethodCeil,
	"floor":   MethodFloor,
}

// ParseMethod resolves a division method by name. Names are matched
// case-insensitively after trimming surrounding whitespace.
func ParseMethod(s string) (Method, error) {
	m, ok := methodNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidRoundingRule,
			"invalid division method: %q (must be one of: float, nearest, ceil, floor)", s)
	}
	return m, nil
}

// Divide returns x/y under the named method. "float" yields the true quotient;
// "nearest", "ceil" and "floor" yield integral values.
func Divide(x, y float64, method string) (float64, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return 0, err
	}
	return m.apply(x, y), nil
}

func (m Method) apply(x, y float64) float64 {
	q := x / y
	switch m {
	case MethodNearest:
		return math.RoundToEven(q)
	case MethodCeil:
		return math.Ceil(q)
	case MethodFloor:
		return math.Floor(q)
	default:
		return q
	}
}

// RoundingRule is the integral subset of Method used to turn category values
// into block counts.
type RoundingRule int

const (
	Nearest RoundingRule = iota
	Floor
	Ceil
)

// ParseRoundingRule resolves a rounding rule by name. An empty name selects
// Nearest.
func ParseRoundingRule(s string) (RoundingRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nearest":
		return Nearest, nil
	case "floor":
		return Floor, nil
	case "ceil":
		return Ceil, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidRoundingRule,
		"invalid rounding rule: %q (must be one of: nearest, floor, ceil)", s)
}

// Apply divides x by y and rounds the quotient to an integer.
// Nearest rounds half to even.
func (r RoundingRule) Apply(x, y float64) int {
	return int(r.method().apply(x, y))
}

func (r RoundingRule) method() Method {
	switch r {
	case Floor:
		return MethodFloor
	case Ceil:
		return MethodCeil
	default:
		return MethodNearest
	}
}

func (r RoundingRule) String() string {
	switch r {
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	default:
		return "nearest"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r RoundingRule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *RoundingRule) UnmarshalText(b []byte) error {
	v, err := ParseRoundingRule(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// RoundUpToMultiple returns the smallest multiple of base that is >= x.
func RoundUpToMultiple(x float64, base int) int {
	if base <= 0 {
		return int(math.Ceil(x))
	}
	return int(math.Ceil(x/float64(base))) * base
}

// Resize repeats s until it has exactly n elements, truncating the last
// repetition. It is used to cycle palettes over categories.
func Resize[T any](s []T, n int) []T {
	if len(s) == 0 || n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for len(out) < n {
		out = append(out, s[:min(len(s), n-len(out))]...)
	}
	return out
}
