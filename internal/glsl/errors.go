package glsl

import (
	"fmt"

	"github.com/texel-ml/texel/internal/tensor"
)

// UnsupportedRankError reports a descriptor whose logical shape has a rank
// the generators cannot address. Fatal and non-retryable: the caller built a
// malformed descriptor.
type UnsupportedRankError struct {
	Name string // input identifier, or "output"
	Rank int
}

// Error implements the error interface.
func (e *UnsupportedRankError) Error() string {
	return fmt.Sprintf("unsupported rank %d for %q (supported: 0-%d)", e.Rank, e.Name, tensor.MaxRank)
}

// UnsupportedPackingFormatError reports a packing format other than the
// single-scalar-per-texel format. PackingRGBA is reserved but unimplemented.
type UnsupportedPackingFormatError struct {
	Name string
	Pack tensor.Packing
}

// Error implements the error interface.
func (e *UnsupportedPackingFormatError) Error() string {
	return fmt.Sprintf("unsupported packing format %s for %q (only R is implemented)", e.Pack, e.Name)
}
