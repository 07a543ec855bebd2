package repository

import "errors"

var (
	ErrHoldingNotFound   = errors.New("holding not found")
	ErrSymbolNotFound    = errors.New("symbol not found")
	ErrLastPriceNotFound = errors.New("last price not found")
	ErrSnapshotNotFound  = errors.New("impact snapshot not found")
)
