package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "Zero", in: 0, want: 0},
		{name: "Arredonda para cima", in: 15.306, want: 15.31},
		{name: "Arredonda para baixo", in: 10.994, want: 10.99},
		{name: "Negativo", in: -3.456, want: -3.46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundWithTwoDecimalPlace(tt.in), 1e-9)
		})
	}
}

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, 6)
		assert.Regexp(t, `^[A-Za-z0-9]{6}$`, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 90)
}
