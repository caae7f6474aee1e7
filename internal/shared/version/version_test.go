package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1.4.0", "v1.4.0"},
		{"v1.4", "v1.4.0"},
		{" v2.0.1 ", "v2.0.1"},
		{"dev", "dev"},
		{"", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, canonical(tt.raw))
		})
	}
}

func TestCurrentDefaultsToDev(t *testing.T) {
	assert.Equal(t, "dev", Current())
}
