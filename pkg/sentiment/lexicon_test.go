package sentiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexiconBackend_Polarity(t *testing.T) {
	b := NewLexiconBackend()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"unknown words", "acme announces product", 0},
		{"single word", "good results", 0.7},
		{"mean of words", "good bad", 0},
		{"intensifier", "very good", 0.91},
		{"negation", "not good", -0.35},
		{"negation two back", "never really good", -0.42},
		{"contraction", "don t like bad news", 0.35},
		{"punctuation trimmed", "great!", 0.8},
		{"clamped", "extremely excellent", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Polarity(context.Background(), tt.text)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
