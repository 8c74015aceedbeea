// Copyright 2026 The Texel Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public shape and texture-layout types of the
// texel shader compiler.
//
// A tensor's logical shape is independent of its physical storage: elements
// live row-major inside a 2-D texel grid described by TexShape, and Layout
// ties the two together. Layouts are plain immutable values; the compiler
// never mutates or retains one.
package tensor

import (
	"github.com/texel-ml/texel/internal/tensor"
)

// MaxRank is the highest tensor rank the compiler understands.
const MaxRank = tensor.MaxRank

// Shape represents the logical dimensions of a tensor in row-major
// significance order.
type Shape = tensor.Shape

// TexShape is the physical 2-D texel grid backing a tensor.
type TexShape = tensor.TexShape

// Packing describes how logical elements map onto texel channels.
type Packing = tensor.Packing

// Packing formats. Only PackingR is implemented; PackingRGBA is reserved.
const (
	PackingR    Packing = tensor.PackingR
	PackingRGBA Packing = tensor.PackingRGBA
)

// Layout ties a tensor's logical shape to its physical texture storage.
type Layout = tensor.Layout

// NewLayout builds a Layout with the single-scalar-per-texel packing.
func NewLayout(logical Shape, tex TexShape) Layout {
	return tensor.NewLayout(logical, tex)
}

// TexShapeFor chooses a physical texture shape for a logical shape, bounded
// by maxSize on both sides.
func TexShapeFor(s Shape, maxSize int) (TexShape, error) {
	return tensor.TexShapeFor(s, maxSize)
}
