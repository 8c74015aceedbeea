// Copyright 2026 The Texel Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shader compiles descriptors of texture-backed tensors into GLSL
// ES 1.00 fragment-shader source.
//
// # Overview
//
// Each tensor is stored as a 2-D texture; the compiler turns a set of input
// descriptors, an output descriptor and a caller-supplied kernel body into
// one deterministic program string. The generated text contains, in order:
// a fixed prefix, the active codec's decode and encode blocks, one sampler
// uniform per input, per-input addressing functions, the output coordinate
// decoder, and the body verbatim.
//
// # Naming contract
//
// For an input named "a" the compiler emits getA(...int coords),
// getAFlat(int index) and, when the input is elementwise-compatible with
// the output, getAAtOutCoords(). The output decoder is always
// getOutputCoords(). Kernel bodies must reference these exact names.
//
// # Basic usage
//
//	layout := tensor.NewLayout(tensor.Shape{2, 3}, tensor.TexShape{Rows: 2, Cols: 3})
//	codec := shader.ChooseCodec(gpuHasFloatTextures, shader.DefaultCodecConfig())
//	src, err := shader.Compile(
//	    []shader.Input{{Name: "a", Layout: layout}, {Name: "b", Layout: layout}},
//	    layout,
//	    `void main() {
//	  ivec2 coords = getOutputCoords();
//	  setOutput(getA(coords.x, coords.y) + getB(coords.x, coords.y));
//	}`,
//	    false,
//	    codec,
//	)
//
// The compiler is a pure function: it performs no I/O, retains no state,
// and may be called from any number of goroutines. Broadcasting uses a
// single modulo over the input's element count, which tiles the whole input
// uniformly across the output; it is not per-axis NumPy-style broadcasting.
package shader
