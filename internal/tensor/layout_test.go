package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exactLayouts covers every supported rank with rows*cols == numel, mixing
// row, column, aligned and squarish textures.
var exactLayouts = []Layout{
	NewLayout(Shape{}, TexShape{Rows: 1, Cols: 1}),
	NewLayout(Shape{6}, TexShape{Rows: 1, Cols: 6}),
	NewLayout(Shape{6}, TexShape{Rows: 6, Cols: 1}),
	NewLayout(Shape{6}, TexShape{Rows: 2, Cols: 3}),
	NewLayout(Shape{2, 3}, TexShape{Rows: 2, Cols: 3}),
	NewLayout(Shape{2, 3}, TexShape{Rows: 3, Cols: 2}),
	NewLayout(Shape{2, 3, 4}, TexShape{Rows: 2, Cols: 12}),
	NewLayout(Shape{2, 3, 4}, TexShape{Rows: 4, Cols: 6}),
	NewLayout(Shape{2, 3, 2, 2}, TexShape{Rows: 2, Cols: 12}),
	NewLayout(Shape{2, 3, 2, 2}, TexShape{Rows: 6, Cols: 4}),
}

// TestTexelBijection checks that flat indices and texel addresses are in
// row-major bijection whenever the texture holds exactly numel texels.
func TestTexelBijection(t *testing.T) {
	for _, l := range exactLayouts {
		require.NoError(t, l.Validate())
		n := l.Logical.NumElements()
		require.Equal(t, n, l.Tex.NumTexels())

		seen := make(map[[2]int]bool, n)
		for i := 0; i < n; i++ {
			row, col := l.Tex.Texel(i)
			assert.GreaterOrEqual(t, row, 0)
			assert.Less(t, row, l.Tex.Rows)
			assert.GreaterOrEqual(t, col, 0)
			assert.Less(t, col, l.Tex.Cols)
			assert.False(t, seen[[2]int{row, col}], "texel (%d,%d) hit twice", row, col)
			seen[[2]int{row, col}] = true
			assert.Equal(t, i, l.Tex.FlatIndex(row, col))
		}
		assert.Len(t, seen, n)
	}
}

// TestCoordRoundTrip checks both directions of the stride law.
func TestCoordRoundTrip(t *testing.T) {
	for _, l := range exactLayouts {
		n := l.Logical.NumElements()
		for i := 0; i < n; i++ {
			coords := l.Coords(i)
			require.Len(t, coords, l.Logical.Rank())
			assert.Equal(t, i, l.FlatIndex(coords))
		}
	}
}

// TestAlignedFastPathEquivalence enumerates every coordinate of aligned
// layouts and checks the specialized address (row = leading coordinate,
// column by multiply-accumulate) against the generic flat-index path.
func TestAlignedFastPathEquivalence(t *testing.T) {
	layouts := []Layout{
		NewLayout(Shape{2, 3}, TexShape{Rows: 2, Cols: 3}),
		NewLayout(Shape{2, 3, 4}, TexShape{Rows: 2, Cols: 12}),
		NewLayout(Shape{3, 2, 2, 2}, TexShape{Rows: 3, Cols: 8}),
	}
	for _, l := range layouts {
		require.True(t, l.Aligned())
		inner := l.Logical[1:].Strides()
		for i := 0; i < l.Logical.NumElements(); i++ {
			coords := l.Coords(i)

			// Specialized formula, as emitted by the aligned path.
			fastRow := coords[0]
			fastCol := 0
			for k, c := range coords[1:] {
				fastCol += c * inner[k]
			}

			row, col := l.Texel(coords)
			assert.Equal(t, row, fastRow, "layout %v coords %v", l, coords)
			assert.Equal(t, col, fastCol, "layout %v coords %v", l, coords)
		}
	}
}

// TestDegenerateTexturePaths checks the single-column and single-row
// addresses the specialized paths rely on.
func TestDegenerateTexturePaths(t *testing.T) {
	column := TexShape{Rows: 6, Cols: 1}
	row := TexShape{Rows: 1, Cols: 6}
	for i := 0; i < 6; i++ {
		r, c := column.Texel(i)
		assert.Equal(t, i, r)
		assert.Equal(t, 0, c)

		r, c = row.Texel(i)
		assert.Equal(t, 0, r)
		assert.Equal(t, i, c)
	}
}

func TestTexShapeUV(t *testing.T) {
	tex := TexShape{Rows: 2, Cols: 3}
	u, v := tex.UV(1, 2)
	assert.InDelta(t, 2.5/3.0, u, 1e-12)
	assert.InDelta(t, 1.5/2.0, v, 1e-12)

	u, v = TexShape{Rows: 1, Cols: 1}.UV(0, 0)
	assert.Equal(t, 0.5, u)
	assert.Equal(t, 0.5, v)
}

func TestLayoutValidate(t *testing.T) {
	assert.NoError(t, NewLayout(Shape{2, 3}, TexShape{Rows: 2, Cols: 3}).Validate())
	assert.NoError(t, NewLayout(Shape{2, 3}, TexShape{Rows: 4, Cols: 2}).Validate())
	assert.Error(t, NewLayout(Shape{2, 3}, TexShape{Rows: 1, Cols: 5}).Validate())
	assert.Error(t, NewLayout(Shape{2, 3}, TexShape{Rows: 0, Cols: 6}).Validate())
	assert.Error(t, NewLayout(Shape{2, -3}, TexShape{Rows: 2, Cols: 3}).Validate())
}

func TestTexShapeFor(t *testing.T) {
	tex, err := TexShapeFor(Shape{}, 4096)
	require.NoError(t, err)
	assert.Equal(t, TexShape{Rows: 1, Cols: 1}, tex)

	tex, err = TexShapeFor(Shape{100}, 4096)
	require.NoError(t, err)
	assert.Equal(t, TexShape{Rows: 1, Cols: 100}, tex)

	// Aligned layout preferred for rank >= 2.
	tex, err = TexShapeFor(Shape{16, 3, 4}, 4096)
	require.NoError(t, err)
	assert.Equal(t, TexShape{Rows: 16, Cols: 12}, tex)

	// Too wide for a single row: squarish factoring, still big enough.
	tex, err = TexShapeFor(Shape{100}, 16)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, tex.NumTexels(), 100)
	assert.LessOrEqual(t, tex.Rows, 16)
	assert.LessOrEqual(t, tex.Cols, 16)

	_, err = TexShapeFor(Shape{10000}, 16)
	assert.Error(t, err)

	_, err = TexShapeFor(Shape{0}, 4096)
	assert.Error(t, err)
}
