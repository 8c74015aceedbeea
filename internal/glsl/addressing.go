package glsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/texel-ml/texel/internal/tensor"
)

// texelPath selects how generated code turns an element address into a texel
// address. Every path is semantically equal to pathGeneric; the specialized
// ones exist to keep integer division out of the generated code.
type texelPath int

const (
	pathSingle  texelPath = iota // 1x1 texture, every access hits the one texel
	pathColumn                   // single-column texture, flat index is the row
	pathRow                      // single-row texture, flat index is the column
	pathAligned                  // texture rows coincide with the leading dimension
	pathGeneric                  // full flat-index round trip
)

// classifyTexel picks the highest-priority path applicable to a layout.
func classifyTexel(l tensor.Layout) texelPath {
	switch {
	case l.Tex.Rows == 1 && l.Tex.Cols == 1:
		return pathSingle
	case l.Tex.Cols == 1:
		return pathColumn
	case l.Tex.Rows == 1:
		return pathRow
	case l.Aligned():
		return pathAligned
	default:
		return pathGeneric
	}
}

// coordNames holds the sampler argument names per rank. Rank 1 uses the
// flat-sampler vocabulary since its only coordinate is the flat index.
var coordNames = [tensor.MaxRank + 1][]string{
	{},
	{"index"},
	{"row", "col"},
	{"row", "col", "depth"},
	{"row", "col", "depth", "depth2"},
}

// samplerSource emits the random-access sampler get<Name>(...), one int
// argument per logical dimension. Dispatch is a closed switch over the rank;
// each rank's generator is its own function.
func samplerSource(name string, l tensor.Layout) string {
	switch l.Logical.Rank() {
	case 0:
		return sampler0D(name, l)
	case 1:
		return sampler1D(name, l)
	case 2:
		return sampler2D(name, l)
	case 3:
		return sampler3D(name, l)
	default:
		return sampler4D(name, l)
	}
}

func sampler0D(name string, l tensor.Layout) string { return emitSampler(name, l, coordNames[0]) }
func sampler1D(name string, l tensor.Layout) string { return emitSampler(name, l, coordNames[1]) }
func sampler2D(name string, l tensor.Layout) string { return emitSampler(name, l, coordNames[2]) }
func sampler3D(name string, l tensor.Layout) string { return emitSampler(name, l, coordNames[3]) }
func sampler4D(name string, l tensor.Layout) string { return emitSampler(name, l, coordNames[4]) }

// emitSampler writes the shared sampler skeleton: signature, texel address
// by the layout's path, codec-decoding sample.
func emitSampler(name string, l tensor.Layout, coords []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "float %s(%s) {\n", accessorName(name, suffixNone), intArgs(coords))
	if classifyTexel(l) == pathAligned {
		// Row boundary matches the leading dimension: no flat-index
		// round trip, one multiply-accumulate for the column.
		fmt.Fprintf(&b, "  vec2 uv = (vec2(%s, %s) + halfTexel) / vec2(%s, %s);\n",
			flatExpr(l.Logical[1:], coords[1:]), coords[0], ftoa(l.Tex.Cols), ftoa(l.Tex.Rows))
	} else {
		writeTexelUV(&b, l, flatExpr(l.Logical, coords))
	}
	fmt.Fprintf(&b, "  return sampleTexture(%s, uv);\n}\n", name)
	return b.String()
}

// flatSamplerSource emits get<Name>Flat(int index), the flat-index sampler.
// Rank 0 keeps the argument and ignores it so kernels can address every
// input uniformly.
func flatSamplerSource(name string, l tensor.Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "float %s(int index) {\n", accessorName(name, suffixFlat))
	writeTexelUV(&b, l, "index")
	fmt.Fprintf(&b, "  return sampleTexture(%s, uv);\n}\n", name)
	return b.String()
}

// writeTexelUV emits statements that put the normalized sample coordinate of
// the element at flat index `flat` into `vec2 uv`, applying the half-texel
// center offset. The aligned path never reaches here (it has no flat index).
func writeTexelUV(b *strings.Builder, l tensor.Layout, flat string) {
	switch classifyTexel(l) {
	case pathSingle:
		b.WriteString("  vec2 uv = halfTexel;\n")
	case pathColumn:
		fmt.Fprintf(b, "  float texR = float(%s);\n", flat)
		fmt.Fprintf(b, "  vec2 uv = vec2(0.5, (texR + 0.5) / %s);\n", ftoa(l.Tex.Rows))
	case pathRow:
		fmt.Fprintf(b, "  float texC = float(%s);\n", flat)
		fmt.Fprintf(b, "  vec2 uv = vec2((texC + 0.5) / %s, 0.5);\n", ftoa(l.Tex.Cols))
	default:
		if flat != "index" {
			fmt.Fprintf(b, "  int index = %s;\n", flat)
		}
		fmt.Fprintf(b, "  int texR = index / %d;\n", l.Tex.Cols)
		fmt.Fprintf(b, "  int texC = index - texR * %d;\n", l.Tex.Cols)
		fmt.Fprintf(b, "  vec2 uv = (vec2(texC, texR) + halfTexel) / vec2(%s, %s);\n",
			ftoa(l.Tex.Cols), ftoa(l.Tex.Rows))
	}
}

// outputCoordsSource emits getOutputCoords(), decoding the current
// fragment's own position back into logical coordinates. A scalar output has
// no coordinates to decode, so rank 0 emits nothing.
func outputCoordsSource(l tensor.Layout) string {
	switch l.Logical.Rank() {
	case 0:
		return ""
	case 1:
		return outputCoords1D(l)
	case 2:
		return outputCoords2D(l)
	case 3:
		return outputCoords3D(l)
	default:
		return outputCoords4D(l)
	}
}

// outputCoords1D returns the flat index directly: for a rank-1 tensor the
// coordinate and the flat index coincide.
func outputCoords1D(l tensor.Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "int %s() {\n", outputCoordsName)
	switch classifyTexel(l) {
	case pathSingle:
		b.WriteString("  return 0;\n")
	case pathColumn:
		fmt.Fprintf(&b, "  return int(floor(resultUV.y * %s));\n", ftoa(l.Tex.Rows))
	case pathRow:
		fmt.Fprintf(&b, "  return int(floor(resultUV.x * %s));\n", ftoa(l.Tex.Cols))
	default:
		writeFragmentTexel(&b, l.Tex)
		fmt.Fprintf(&b, "  return texR * %d + texC;\n", l.Tex.Cols)
	}
	b.WriteString("}\n")
	return b.String()
}

func outputCoords2D(l tensor.Layout) string { return emitOutputCoordsND(l, 2) }
func outputCoords3D(l tensor.Layout) string { return emitOutputCoordsND(l, 3) }
func outputCoords4D(l tensor.Layout) string { return emitOutputCoordsND(l, 4) }

// emitOutputCoordsND writes the rank >= 2 decoder: fragment position to
// texel address, texel address to flat index, flat index to coordinates
// most-significant-first.
func emitOutputCoordsND(l tensor.Layout, rank int) string {
	names := coordNames[rank]
	var b strings.Builder
	fmt.Fprintf(&b, "ivec%d %s() {\n", rank, outputCoordsName)
	switch classifyTexel(l) {
	case pathSingle:
		fmt.Fprintf(&b, "  return ivec%d(%s);\n", rank, zeros(rank))
	case pathAligned:
		// The texel row is the leading coordinate; only the column
		// needs decomposing.
		writeFragmentTexel(&b, l.Tex)
		parts := writeDecompose(&b, l.Logical[1:], "texC", names[1:])
		fmt.Fprintf(&b, "  return ivec%d(%s);\n", rank, strings.Join(append([]string{"texR"}, parts...), ", "))
	case pathColumn:
		fmt.Fprintf(&b, "  int index = int(floor(resultUV.y * %s));\n", ftoa(l.Tex.Rows))
		parts := writeDecompose(&b, l.Logical, "index", names)
		fmt.Fprintf(&b, "  return ivec%d(%s);\n", rank, strings.Join(parts, ", "))
	case pathRow:
		fmt.Fprintf(&b, "  int index = int(floor(resultUV.x * %s));\n", ftoa(l.Tex.Cols))
		parts := writeDecompose(&b, l.Logical, "index", names)
		fmt.Fprintf(&b, "  return ivec%d(%s);\n", rank, strings.Join(parts, ", "))
	default:
		writeFragmentTexel(&b, l.Tex)
		fmt.Fprintf(&b, "  int index = texR * %d + texC;\n", l.Tex.Cols)
		parts := writeDecompose(&b, l.Logical, "index", names)
		fmt.Fprintf(&b, "  return ivec%d(%s);\n", rank, strings.Join(parts, ", "))
	}
	b.WriteString("}\n")
	return b.String()
}

// writeFragmentTexel recovers the current fragment's own texel address from
// resultUV. Sample points sit at texel centers, so flooring is exact.
func writeFragmentTexel(b *strings.Builder, tex tensor.TexShape) {
	fmt.Fprintf(b, "  int texR = int(floor(resultUV.y * %s));\n", ftoa(tex.Rows))
	fmt.Fprintf(b, "  int texC = int(floor(resultUV.x * %s));\n", ftoa(tex.Cols))
}

// writeDecompose emits the most-significant-first stride decomposition of
// the int variable v over shape, reusing v for the running remainder, and
// returns the expression list for the ivec constructor.
func writeDecompose(b *strings.Builder, shape tensor.Shape, v string, names []string) []string {
	if len(names) == 1 {
		return []string{v}
	}
	strides := shape.Strides()
	last := len(names) - 1
	parts := make([]string, len(names))
	for i := 0; i < last; i++ {
		fmt.Fprintf(b, "  int %s = %s / %d;\n", names[i], v, strides[i])
		parts[i] = names[i]
		if i == last-1 {
			fmt.Fprintf(b, "  int %s = %s - %s * %d;\n", names[last], v, names[i], strides[i])
			parts[last] = names[last]
		} else {
			fmt.Fprintf(b, "  %s -= %s * %d;\n", v, names[i], strides[i])
		}
	}
	return parts
}

// flatExpr renders the row-major flatten of the named coordinates as a GLSL
// int expression: sum of coordinate * stride terms, "0" for rank 0.
func flatExpr(shape tensor.Shape, coords []string) string {
	if len(coords) == 0 {
		return "0"
	}
	strides := shape.Strides()
	terms := make([]string, len(coords))
	for i, c := range coords {
		if strides[i] == 1 {
			terms[i] = c
		} else {
			terms[i] = c + " * " + strconv.Itoa(strides[i])
		}
	}
	return strings.Join(terms, " + ")
}

// intArgs renders a sampler parameter list: "int row, int col".
func intArgs(coords []string) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = "int " + c
	}
	return strings.Join(parts, ", ")
}

// zeros renders n comma-separated zeros for an ivec constructor.
func zeros(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "0"
	}
	return strings.Join(parts, ", ")
}

// ftoa renders an int as a GLSL float literal.
func ftoa(n int) string {
	return strconv.Itoa(n) + ".0"
}
