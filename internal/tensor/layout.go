package tensor

import (
	"fmt"
	"math"
)

// Packing describes how logical elements map onto texel channels.
type Packing int

// Supported packing formats. Only PackingR is implemented by the addressing
// and codec logic; PackingRGBA is reserved for a future four-elements-per-
// texel layout and is rejected at compile time.
const (
	PackingR Packing = iota
	PackingRGBA
)

// String returns a human-readable packing name.
func (p Packing) String() string {
	switch p {
	case PackingR:
		return "R"
	case PackingRGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("Packing(%d)", int(p))
	}
}

// TexShape is the physical 2-D texel grid backing a tensor.
type TexShape struct {
	Rows int
	Cols int
}

// NumTexels returns the total number of texels in the grid.
func (t TexShape) NumTexels() int {
	return t.Rows * t.Cols
}

// FlatIndex linearizes a texel address in row-major order.
func (t TexShape) FlatIndex(row, col int) int {
	return row*t.Cols + col
}

// Texel recovers the texel address of a flat index.
func (t TexShape) Texel(index int) (row, col int) {
	row = index / t.Cols
	col = index - row*t.Cols
	return row, col
}

// UV returns the normalized texture coordinate of a texel's center. The
// half-texel offset keeps generated sample points away from texel edges.
func (t TexShape) UV(row, col int) (u, v float64) {
	u = (float64(col) + 0.5) / float64(t.Cols)
	v = (float64(row) + 0.5) / float64(t.Rows)
	return u, v
}

// Layout ties a tensor's logical shape to its physical texture storage.
// Layouts are immutable values: the compiler never mutates or retains one.
type Layout struct {
	Logical Shape
	Tex     TexShape
	Pack    Packing
}

// NewLayout builds a Layout with the single-scalar-per-texel packing.
func NewLayout(logical Shape, tex TexShape) Layout {
	return Layout{Logical: logical, Tex: tex, Pack: PackingR}
}

// Validate checks the layout invariants: positive dimensions and a texture
// large enough to hold every element.
func (l Layout) Validate() error {
	if err := l.Logical.Validate(); err != nil {
		return err
	}
	if l.Tex.Rows < 1 || l.Tex.Cols < 1 {
		return fmt.Errorf("invalid texture shape %dx%d (both sides must be >= 1)", l.Tex.Rows, l.Tex.Cols)
	}
	if n := l.Logical.NumElements(); l.Tex.NumTexels() < n {
		return fmt.Errorf("texture %dx%d holds %d texels but shape %v has %d elements",
			l.Tex.Rows, l.Tex.Cols, l.Tex.NumTexels(), l.Logical, n)
	}
	return nil
}

// FlatIndex linearizes logical coordinates by the row-major stride law.
// len(coords) must equal the rank.
func (l Layout) FlatIndex(coords []int) int {
	strides := l.Logical.Strides()
	index := 0
	for i, c := range coords {
		index += c * strides[i]
	}
	return index
}

// Coords decomposes a flat index into logical coordinates, most significant
// first, by repeated integer division with the row-major strides.
func (l Layout) Coords(index int) []int {
	strides := l.Logical.Strides()
	coords := make([]int, l.Logical.Rank())
	for i, stride := range strides {
		coords[i] = index / stride
		index -= coords[i] * stride
	}
	return coords
}

// Texel returns the texel address of the element at the given logical
// coordinates.
func (l Layout) Texel(coords []int) (row, col int) {
	return l.Tex.Texel(l.FlatIndex(coords))
}

// Aligned reports whether the texture's row boundary coincides with the
// tensor's most significant dimension, i.e. Tex.Cols equals the product of
// the trailing dimensions. Aligned rank >= 2 layouts admit a texel address
// without the flat-index round trip: row = c0, col by one multiply-
// accumulate.
func (l Layout) Aligned() bool {
	return l.Logical.Rank() >= 2 && l.Tex.Cols == l.Logical.InnerSize()
}

// TexShapeFor chooses a physical texture shape for a logical shape. Rank 0
// maps to a single texel, rank 1 to a single row when it fits, rank >= 2 to
// (dims[0], product of the rest) when both sides fit so the aligned fast
// path applies, and anything else to a near-square factoring. maxSize bounds
// both sides; exceeding it even when squarish is an error.
func TexShapeFor(s Shape, maxSize int) (TexShape, error) {
	if err := s.Validate(); err != nil {
		return TexShape{}, err
	}

	n := s.NumElements()
	switch {
	case s.Rank() == 0:
		return TexShape{Rows: 1, Cols: 1}, nil
	case s.Rank() == 1 && n <= maxSize:
		return TexShape{Rows: 1, Cols: n}, nil
	case s.Rank() >= 2 && s[0] <= maxSize && s.InnerSize() <= maxSize:
		return TexShape{Rows: s[0], Cols: s.InnerSize()}, nil
	}

	rows := int(math.Floor(math.Sqrt(float64(n))))
	if rows < 1 {
		rows = 1
	}
	cols := (n + rows - 1) / rows
	if rows > maxSize || cols > maxSize {
		return TexShape{}, fmt.Errorf("shape %v (%d elements) does not fit a %dx%d texture", s, n, maxSize, maxSize)
	}
	return TexShape{Rows: rows, Cols: cols}, nil
}
