// Package glsl compiles descriptors of texture-backed tensors into the
// source text of a GLSL ES 1.00 fragment shader. The whole package is a pure
// transformation: identical arguments produce byte-identical text, nothing
// is retained between calls, and any number of compilations may run
// concurrently.
package glsl

import (
	"fmt"
	"strings"

	"github.com/texel-ml/texel/internal/tensor"
)

// Input names a sampler uniform and describes the texture behind it.
// Generated accessor names derive from Name; uniqueness across the input
// list is the caller's obligation.
type Input struct {
	Name   string
	Layout tensor.Layout
}

// Compile assembles one complete fragment program: the fixed prefix, the
// codec's decode and encode blocks, one sampler uniform per input, per-input
// addressing functions (plus the AtOutCoords accessor where eligible), the
// output coordinate decoder, and the caller's kernel body verbatim, in that
// order, newline-separated. The body's syntax is not checked. On error no
// partial text is returned.
func Compile(inputs []Input, output tensor.Layout, body string, broadcast bool, codec Codec) (string, error) {
	if err := checkLayout("output", output); err != nil {
		return "", err
	}
	for _, in := range inputs {
		if err := checkLayout(in.Name, in.Layout); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	b.WriteString(shaderPrefix)
	b.WriteString("\n")
	b.WriteString(codec.DecodeSnippet())
	b.WriteString("\n")
	b.WriteString(codec.EncodeSnippet())
	b.WriteString("\n")
	for _, in := range inputs {
		fmt.Fprintf(&b, "uniform sampler2D %s;\n", in.Name)
	}
	b.WriteString("\n")
	for _, in := range inputs {
		b.WriteString(samplerSource(in.Name, in.Layout))
		b.WriteString("\n")
		b.WriteString(flatSamplerSource(in.Name, in.Layout))
		b.WriteString("\n")
		if broadcast || in.Layout.Logical.Equal(output.Logical) {
			b.WriteString(broadcastSource(in.Name, in.Layout, output, broadcast))
			b.WriteString("\n")
		}
	}
	if decoder := outputCoordsSource(output); decoder != "" {
		b.WriteString(decoder)
		b.WriteString("\n")
	}
	b.WriteString(body)
	return b.String(), nil
}

// checkLayout validates a descriptor before any text is generated.
func checkLayout(name string, l tensor.Layout) error {
	if l.Logical.Rank() > tensor.MaxRank {
		return &UnsupportedRankError{Name: name, Rank: l.Logical.Rank()}
	}
	if l.Pack != tensor.PackingR {
		return &UnsupportedPackingFormatError{Name: name, Pack: l.Pack}
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
