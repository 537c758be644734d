// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"math"
	"strconv"
	"strings"

	"cogentcore.org/scenegraph/math32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// TransformPair is a snapshot of the two transforms of a node,
// in column-major order.
type TransformPair struct {
	Local [16]float32 `yaml:"local,flow" toml:"local"`
	Self  [16]float32 `yaml:"self,flow" toml:"self"`
}

// Transforms returns a snapshot of the node transforms.
func (n *Node) Transforms() TransformPair {
	return TransformPair{Local: n.Local, Self: n.Self}
}

// SetTransforms sets the node transforms from the given snapshot.
func (n *Node) SetTransforms(tp TransformPair) *Node {
	n.Local = math32.Matrix4(tp.Local)
	n.Self = math32.Matrix4(tp.Self)
	return n
}

// YAML returns the pair encoded as YAML.
func (tp TransformPair) YAML() ([]byte, error) {
	return yaml.Marshal(tp)
}

// MarshalYAML writes each element with a decimal point or exponent so
// that it decodes as a float, keeping the sign of negative zero.
func (tp TransformPair) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "local"},
			yamlFloats(tp.Local[:]),
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "self"},
			yamlFloats(tp.Self[:]),
		},
	}, nil
}

func yamlFloats(fs []float32) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, f := range fs {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: yamlFloat(f)})
	}
	return seq
}

func yamlFloat(f float32) string {
	switch {
	case math.IsNaN(float64(f)):
		return ".nan"
	case math.IsInf(float64(f), 1):
		return ".inf"
	case math.IsInf(float64(f), -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// TOML returns the pair encoded as TOML.
func (tp TransformPair) TOML() ([]byte, error) {
	return toml.Marshal(tp)
}

// ReadTransformYAML decodes a pair from YAML.
func ReadTransformYAML(b []byte) (TransformPair, error) {
	var tp TransformPair
	err := yaml.Unmarshal(b, &tp)
	return tp, err
}

// ReadTransformTOML decodes a pair from TOML.
func ReadTransformTOML(b []byte) (TransformPair, error) {
	var tp TransformPair
	err := toml.Unmarshal(b, &tp)
	return tp, err
}

// NamedTransforms is the transform snapshot of one node in a
// [Snapshot], identified by its slash-separated path of names.
type NamedTransforms struct {
	Path       string        `yaml:"path" toml:"path"`
	Transforms TransformPair `yaml:"transforms" toml:"transforms"`
}

// Snapshot returns the transforms of every node in the subtree in
// draw order, for debugging output.
func Snapshot(root *Node) []NamedTransforms {
	var out []NamedTransforms
	var path []string
	root.Walk(func(n *Node, depth int) bool {
		path = append(path[:depth], n.Name)
		out = append(out, NamedTransforms{Path: strings.Join(path, "/"), Transforms: n.Transforms()})
		return true
	})
	return out
}
