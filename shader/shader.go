// Copyright 2026 The Texel Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package shader

import (
	"github.com/texel-ml/texel/internal/glsl"
	"github.com/texel-ml/texel/internal/tensor"
)

// Input names a sampler uniform and describes the texture behind it. The
// generated accessors get<Name>, get<Name>Flat and get<Name>AtOutCoords
// derive from Name; uniqueness across the input list is the caller's
// obligation.
type Input = glsl.Input

// Codec generates the texel read and write blocks of a program.
type Codec = glsl.Codec

// CodecConfig carries the engine-wide bounds of the quantized codec, and
// hosts the Encode/Decode mirror of the generated arithmetic.
type CodecConfig = glsl.CodecConfig

// Error kinds surfaced for malformed descriptors.
type (
	UnsupportedRankError          = glsl.UnsupportedRankError
	UnsupportedPackingFormatError = glsl.UnsupportedPackingFormatError
)

// DefaultCodecConfig is the engine-wide value range for quantized storage.
func DefaultCodecConfig() CodecConfig {
	return glsl.DefaultCodecConfig()
}

// ChooseCodec selects the codec for one compilation from the externally
// resolved float-texture capability flag.
func ChooseCodec(floatTextures bool, cfg CodecConfig) Codec {
	return glsl.ChooseCodec(floatTextures, cfg)
}

// Compile assembles one complete fragment program from the input
// descriptors, the output layout, and the caller's kernel body. See the
// package documentation for the generated structure and naming contract.
func Compile(inputs []Input, output tensor.Layout, body string, broadcast bool, codec Codec) (string, error) {
	return glsl.Compile(inputs, output, body, broadcast, codec)
}
