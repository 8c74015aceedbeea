package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Shape{}, 1},
		{"vector", Shape{5}, 5},
		{"matrix", Shape{2, 3}, 6},
		{"rank4", Shape{2, 3, 4, 5}, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.NumElements())
		})
	}
}

func TestShapeStrides(t *testing.T) {
	assert.Empty(t, Shape{}.Strides())
	assert.Equal(t, []int{1}, Shape{7}.Strides())
	assert.Equal(t, []int{3, 1}, Shape{2, 3}.Strides())
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.Strides())
	assert.Equal(t, []int{60, 20, 5, 1}, Shape{2, 3, 4, 5}.Strides())
}

func TestShapeInnerSize(t *testing.T) {
	assert.Equal(t, 1, Shape{}.InnerSize())
	assert.Equal(t, 1, Shape{5}.InnerSize())
	assert.Equal(t, 3, Shape{2, 3}.InnerSize())
	assert.Equal(t, 12, Shape{2, 3, 4}.InnerSize())
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 3}.Validate())
	require.NoError(t, Shape{}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1}.Validate())
}

func TestShapeEqual(t *testing.T) {
	assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
	assert.True(t, Shape{}.Equal(Shape{}))
	assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
	assert.False(t, Shape{2, 3}.Equal(Shape{2, 3, 1}))
}

func TestShapeClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	assert.Equal(t, Shape{2, 3}, s)
}
