package chart

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/waffle/pkg/errors"
)

// File formats understood by Decode.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists the supported chart file formats.
var Formats = []string{FormatTOML, FormatYAML, FormatJSON}

// DetectFormat maps a file extension to its format.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported chart file: %s (must be .toml, .yaml, .yml or .json)", filepath.Base(path))
}

// LoadFile reads, decodes and builds the figure stored at path.
func LoadFile(path string) (*Figure, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read chart %s", path)
	}
	return Load(data, format)
}

// Load decodes data in the given format and builds the figure.
func Load(data []byte, format string) (*Figure, error) {
	f, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return f.Build()
}

// Decode parses data without validating it.
func Decode(data []byte, format string) (File, error) {
	var (
		f   File
		err error
	)
	switch format {
	case FormatTOML:
		f, err = decodeTOML(data)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&f)
		if err == io.EOF {
			err = nil
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		return File{}, errors.New(errors.ErrCodeInvalidFormat,
			"invalid chart format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	if err != nil {
		if errors.GetCode(err) != "" {
			return File{}, err
		}
		return File{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s chart", format)
	}
	return f, nil
}

// decodeTOML decodes data and restores the file order of labeled values,
// which TOML tables do not preserve on their own.
func decodeTOML(data []byte) (File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return File{}, err
	}
	for _, k := range md.Undecoded() {
		// Labeled values are consumed by Values.UnmarshalTOML.
		if slices.Contains([]string(k), "values") {
			continue
		}
		return File{}, errors.New(errors.ErrCodeInvalidInput, "unknown chart option: %s", k)
	}

	keys := md.Keys()
	if f.Values != nil {
		f.Values.Reorder(childKeys(keys, "values"))
	}
	for name, o := range f.Panels {
		if o.Values != nil {
			o.Values.Reorder(childKeys(keys, "panels", name, "values"))
			f.Panels[name] = o
		}
	}
	return f, nil
}

// childKeys returns the direct children of parent in file order.
func childKeys(keys []toml.Key, parent ...string) []string {
	var out []string
	for _, k := range keys {
		if len(k) == len(parent)+1 && slices.Equal([]string(k[:len(parent)]), parent) {
			out = append(out, k[len(parent)])
		}
	}
	return out
}
