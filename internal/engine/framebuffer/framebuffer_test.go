package framebuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSize(t *testing.T) {
	tests := []struct {
		w, h         int32
		wantW, wantH int32
	}{
		{800, 600, 800, 600},
		{0, 600, 1, 600},
		{-5, -5, 1, 1},
	}
	for _, tt := range tests {
		w, h := clampSize(tt.w, tt.h)
		assert.Equal(t, tt.wantW, w)
		assert.Equal(t, tt.wantH, h)
	}
}

func TestStatusErrorWrapsIncomplete(t *testing.T) {
	err := statusError(0x8CD6)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), "0x8cd6")
}

func TestDestroyWithoutResourcesIsNoop(t *testing.T) {
	var target Target
	assert.NotPanics(t, target.Destroy)
}
