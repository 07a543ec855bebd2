package utils

import (
	"testing"
	"time"

	"golang-portfolio-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGoSafe_LogsRecoveredPanic(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	log := &logger.Logger{Logger: zap.New(core)}

	done := make(chan struct{})
	GoSafe(log, func() {
		defer close(done)
		panic("bad quote")
	})
	<-done

	require.Eventually(t, func() bool { return logs.Len() == 1 }, time.Second, 5*time.Millisecond)
	entry := logs.All()[0]
	assert.Equal(t, "Recovered from panic", entry.Message)
	assert.Equal(t, "bad quote", entry.ContextMap()["panic"])
	assert.Contains(t, entry.ContextMap()["stack"], "goroutine")
}
