package services

import (
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// nextID returns the current time in milliseconds, bumped past the previous
// value when two calls land in the same millisecond. Uniqueness matters more
// than the exact format.
func nextID() int64 {
	for {
		id := time.Now().UnixMilli()
		last := lastID.Load()
		if id <= last {
			id = last + 1
		}
		if lastID.CompareAndSwap(last, id) {
			return id
		}
	}
}
