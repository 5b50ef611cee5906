package exposure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopWindow(t *testing.T) {
	assert.Equal(t, []int{2, 3}, topWindow(2, 10, 2))
	assert.Equal(t, []int{8, 9}, topWindow(8, 10, 5)) // clamped at the end
}

func TestBottomWindow(t *testing.T) {
	assert.Equal(t, []int{1, 2}, bottomWindow(2, 10, 2))
	assert.Equal(t, []int{0, 1}, bottomWindow(1, 10, 5)) // clamped at the start
}
