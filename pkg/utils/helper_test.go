package utils

import (
	"context"
	"testing"
	"time"

	"golang-portfolio-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "AAPL", NormalizeSymbol("  aapl "))
	assert.Equal(t, "", NormalizeSymbol("   "))
}

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString([]string{"Reuters.com", "cnbc.com"}, "reuters.com"))
	assert.False(t, ContainsString(nil, "reuters.com"))
}

func TestCleanToValidUTF8(t *testing.T) {
	assert.Equal(t, "abc", CleanToValidUTF8("a\xffbc"))
	assert.Equal(t, "héllo", CleanToValidUTF8("héllo"))
}

func TestFixedClockAdvance(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := &FixedClock{T: start}
	c.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), c.Now())
}

func TestShouldContinue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.True(t, ShouldContinue(ctx, logger.NewNop()))
	cancel()
	assert.False(t, ShouldContinue(ctx, logger.NewNop()))
}
