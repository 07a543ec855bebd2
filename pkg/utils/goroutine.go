package utils

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang-portfolio-sentiment/pkg/logger"
)

// GoSafe runs fn in a goroutine, recovering and logging any panic.
func GoSafe(log *logger.Logger, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Recovered from panic",
					logger.Field("panic", r),
					logger.StringField("stack", string(debug.Stack())),
				)
			}
		}()
		fn()
	}()
}

// ShouldContinue reports whether ctx is still alive, logging when it is not.
func ShouldContinue(ctx context.Context, log *logger.Logger) bool {
	select {
	case <-ctx.Done():
		log.Warn("Context done, stop processing", logger.StringField("reason", fmt.Sprint(ctx.Err())))
		return false
	default:
		return true
	}
}
