package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/waffle/pkg/pipeline"
)

// stdoutPath selects standard output for a single rendered format.
const stdoutPath = "-"

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or stdout for "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == stdoutPath {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

// basePath derives the base output path from the output and input file paths.
// Known format extensions, including ".layout.json", are stripped.
func basePath(output, input string) string {
	if output == "" {
		output = input
		output = strings.TrimSuffix(output, ".layout.json")
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.ValidFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to the file it is written to. A single format
// goes to output verbatim when one is given.
func outputPaths(formats []string, input, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	panels    int
	blocks    int
	cacheHit  bool
}

// writeArtifacts writes rendered outputs and reports where they went.
func writeArtifacts(p artifactWriteParams) error {
	paths := outputPaths(p.formats, p.input, p.output)
	if p.output == stdoutPath && len(p.formats) > 1 {
		return fmt.Errorf("cannot write %d formats to stdout", len(p.formats))
	}

	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return fmt.Errorf("no %s output was rendered", format)
		}
		if err := writeFile(paths[format], data); err != nil {
			return err
		}
	}
	if p.output == stdoutPath {
		return nil
	}

	printSuccess("Rendered %s", strings.Join(p.formats, ", "))
	for _, format := range p.formats {
		printFile(paths[format])
	}
	printStats(p.panels, p.blocks, p.cacheHit)
	return nil
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}
