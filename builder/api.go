// SPDX-License-Identifier: MIT
// Package: rutas/builder
//
// api.go: thin public entry-points: decode a description, load a file,
// or build the embedded reference network.

package builder

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rutas/core"
)

//go:embed madrid.yaml
var referenceYAML []byte

// Decode reads one YAML network description from r. Unknown keys are
// rejected so that typos ("distnace") do not silently become zero weights.
func Decode(r io.Reader) (*Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var n Network
	if err := dec.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidNetwork)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
	}

	return &n, nil
}

// Parse decodes a network description held in memory.
func Parse(data []byte) (*Network, error) {
	return Decode(bytes.NewReader(data))
}

// Load decodes a description from r and builds its graph.
// It returns the Network too, so callers can read Name and DistanceUnit.
func Load(r io.Reader, opts ...core.GraphOption) (*Network, *core.Graph, error) {
	n, err := Decode(r)
	if err != nil {
		return nil, nil, err
	}
	g, err := n.Graph(opts...)
	if err != nil {
		return nil, nil, err
	}

	return n, g, nil
}

// LoadFile is Load over the file at path.
func LoadFile(path string, opts ...core.GraphOption) (*Network, *core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("builder: open network: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// ReferenceNetwork returns a fresh decoded copy of the embedded reference
// description (ten localities of the Comunidad de Madrid).
func ReferenceNetwork() (*Network, error) {
	return Parse(referenceYAML)
}

// Reference builds the embedded reference network graph.
func Reference(opts ...core.GraphOption) (*core.Graph, error) {
	n, err := ReferenceNetwork()
	if err != nil {
		return nil, err
	}

	return n.Graph(opts...)
}
