package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

// Values is the ordered list of category values of a chart.
//
// A chart file may give values either as a plain list or as a label → value
// mapping. In the mapping form Labels holds the keys in file order; in the list
// form Labels is nil.
type Values struct {
	Labels  []string
	Numbers []float64
}

// NewValues returns unlabeled values.
func NewValues(numbers ...float64) Values {
	return Values{Numbers: slices.Clone(numbers)}
}

// Len returns the number of categories.
func (v Values) Len() int { return len(v.Numbers) }

// Labeled reports whether the values came from a mapping.
func (v Values) Labeled() bool { return v.Labels != nil }

// Clone returns a deep copy of v.
func (v Values) Clone() Values {
	return Values{Labels: slices.Clone(v.Labels), Numbers: slices.Clone(v.Numbers)}
}

// Reorder rearranges labeled values to follow keys. Labels missing from keys
// keep their relative order after the ones that were found.
func (v *Values) Reorder(keys []string) {
	if !v.Labeled() || len(keys) == 0 {
		return
	}
	byLabel := make(map[string]float64, len(v.Labels))
	for i, l := range v.Labels {
		byLabel[l] = v.Numbers[i]
	}

	labels := make([]string, 0, len(v.Labels))
	numbers := make([]float64, 0, len(v.Numbers))
	for _, k := range keys {
		if n, ok := byLabel[k]; ok {
			labels = append(labels, k)
			numbers = append(numbers, n)
			delete(byLabel, k)
		}
	}
	for i, l := range v.Labels {
		if _, ok := byLabel[l]; ok {
			labels = append(labels, l)
			numbers = append(numbers, v.Numbers[i])
		}
	}
	v.Labels, v.Numbers = labels, numbers
}

// UnmarshalJSON accepts a list of numbers or an object of label → number,
// keeping the object's key order.
func (v *Values) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch tok {
	case json.Delim('['):
		numbers := []float64{}
		for dec.More() {
			var n float64
			if err := dec.Decode(&n); err != nil {
				return fmt.Errorf("values: %w", err)
			}
			numbers = append(numbers, n)
		}
		*v = Values{Numbers: numbers}
		return nil
	case json.Delim('{'):
		out := Values{Labels: []string{}, Numbers: []float64{}}
		for dec.More() {
			key, err := dec.Token()
			if err != nil {
				return err
			}
			var n float64
			if err := dec.Decode(&n); err != nil {
				return fmt.Errorf("values[%v]: %w", key, err)
			}
			out.Labels = append(out.Labels, key.(string))
			out.Numbers = append(out.Numbers, n)
		}
		*v = out
		return nil
	case nil:
		*v = Values{}
		return nil
	}
	return fmt.Errorf("values must be a list or a mapping, got %v", tok)
}

// MarshalJSON writes a list, or an object in label order when labeled.
func (v Values) MarshalJSON() ([]byte, error) {
	if !v.Labeled() {
		if v.Numbers == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Numbers)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range v.Labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(l)
		if err != nil {
			return nil, err
		}
		n, err := json.Marshal(v.Numbers[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(n)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML accepts a sequence or a mapping node.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		numbers := make([]float64, len(node.Content))
		for i, n := range node.Content {
			if err := n.Decode(&numbers[i]); err != nil {
				return fmt.Errorf("values[%d]: %w", i, err)
			}
		}
		*v = Values{Numbers: numbers}
		return nil
	case yaml.MappingNode:
		out := Values{
			Labels:  make([]string, 0, len(node.Content)/2),
			Numbers: make([]float64, 0, len(node.Content)/2),
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			var n float64
			if err := node.Content[i+1].Decode(&n); err != nil {
				return fmt.Errorf("values[%s]: %w", node.Content[i].Value, err)
			}
			out.Labels = append(out.Labels, node.Content[i].Value)
			out.Numbers = append(out.Numbers, n)
		}
		*v = out
		return nil
	}
	return fmt.Errorf("line %d: values must be a list or a mapping", node.Line)
}

// UnmarshalTOML accepts an array or a table. Tables arrive unordered; keys are
// sorted here and put back into file order by LoadTOML.
func (v *Values) UnmarshalTOML(data any) error {
	switch d := data.(type) {
	case []any:
		numbers := make([]float64, len(d))
		for i, x := range d {
			n, err := tomlNumber(x)
			if err != nil {
				return fmt.Errorf("values[%d]: %w", i, err)
			}
			numbers[i] = n
		}
		*v = Values{Numbers: numbers}
		return nil
	case map[string]any:
		labels := make([]string, 0, len(d))
		for k := range d {
			labels = append(labels, k)
		}
		sort.Strings(labels)
		numbers := make([]float64, len(labels))
		for i, l := range labels {
			n, err := tomlNumber(d[l])
			if err != nil {
				return fmt.Errorf("values.%s: %w", l, err)
			}
			numbers[i] = n
		}
		*v = Values{Labels: labels, Numbers: numbers}
		return nil
	}
	return fmt.Errorf("values must be an array or a table, got %T", data)
}

func tomlNumber(x any) (float64, error) {
	switch n := x.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return math.NaN(), fmt.Errorf("not a number: %v", x)
}

// Characters holds the glyphs drawn instead of square blocks. A single
// character applies to every category.
type Characters []string

// For returns the glyph of category i, or "" when blocks are squares.
func (c Characters) For(i int) string {
	switch len(c) {
	case 0:
		return ""
	case 1:
		return c[0]
	}
	if i < len(c) {
		return c[i]
	}
	return ""
}

// UnmarshalJSON accepts a string or a list of strings.
func (c *Characters) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*c = Characters{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("characters must be a string or a list of strings")
	}
	*c = many
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence.
func (c *Characters) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*c = Characters{node.Value}
		return nil
	}
	var many []string
	if err := node.Decode(&many); err != nil {
		return fmt.Errorf("line %d: characters must be a string or a list of strings", node.Line)
	}
	*c = many
	return nil
}

// UnmarshalTOML accepts a string or an array of strings.
func (c *Characters) UnmarshalTOML(data any) error {
	switch d := data.(type) {
	case string:
		*c = Characters{d}
		return nil
	case []any:
		out := make(Characters, len(d))
		for i, x := range d {
			s, ok := x.(string)
			if !ok {
				return fmt.Errorf("characters[%d]: not a string", i)
			}
			out[i] = s
		}
		*c = out
		return nil
	}
	return fmt.Errorf("characters must be a string or an array of strings")
}
