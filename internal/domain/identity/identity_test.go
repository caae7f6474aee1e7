package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		id   *Identity
		want string
	}{
		{"full name", &Identity{FirstName: "Ada", LastName: "Lovelace", Username: "ada"}, "Ada Lovelace"},
		{"first only", &Identity{FirstName: "Acme", Username: "acme"}, "Acme"},
		{"username fallback", &Identity{Username: "ghost"}, "ghost"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.DisplayName())
		})
	}
}
