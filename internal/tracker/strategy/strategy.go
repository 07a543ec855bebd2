package strategy

import (
	"context"
)

// JobStrategy is one kind of background job.
type JobStrategy interface {
	Execute(ctx context.Context) (string, error)
	GetType() string
}
