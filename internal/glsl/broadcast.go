package glsl

import (
	"fmt"
	"strings"

	"github.com/texel-ml/texel/internal/tensor"
)

// broadcastSource emits get<Name>AtOutCoords(), the zero-argument accessor
// sampling an input at the position implied by the current fragment's own
// output-space coordinate. When broadcasting is requested the output flat
// index is reduced modulo the input's element count before addressing.
//
// The modulo reduction tiles the whole input address space uniformly across
// the output. It is not per-axis NumPy-style broadcasting: shapes whose
// broadcast pattern is anything but a uniform cycle of the full input are
// outside its contract.
func broadcastSource(name string, in, out tensor.Layout, broadcast bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "float %s() {\n", accessorName(name, suffixAtOutCoords))
	if in.Tex == out.Tex {
		// Identical physical layouts: the fragment coordinate already
		// points at the right input texel.
		fmt.Fprintf(&b, "  return sampleTexture(%s, resultUV);\n}\n", name)
		return b.String()
	}
	if classifyTexel(in) == pathSingle {
		// Single-texel input: every output position resolves to the
		// one element, no address arithmetic needed.
		fmt.Fprintf(&b, "  return sampleTexture(%s, halfTexel);\n}\n", name)
		return b.String()
	}

	fmt.Fprintf(&b, "  int outTexR = int(floor(resultUV.y * %s));\n", ftoa(out.Tex.Rows))
	fmt.Fprintf(&b, "  int outTexC = int(floor(resultUV.x * %s));\n", ftoa(out.Tex.Cols))
	fmt.Fprintf(&b, "  int index = outTexR * %d + outTexC;\n", out.Tex.Cols)
	if broadcast {
		n := in.Logical.NumElements()
		fmt.Fprintf(&b, "  index -= (index / %d) * %d;\n", n, n)
	}
	writeTexelUV(&b, in, "index")
	fmt.Fprintf(&b, "  return sampleTexture(%s, uv);\n}\n", name)
	return b.String()
}
